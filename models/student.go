package models

import "fmt"

// Spreadsheet column positions in the Students sheet, 1-based as stored.
const (
	StudentFieldCount = 8

	colOrdinal     = 0
	colRegNumber   = 1
	colName        = 2
	colGender      = 3
	colFatherName  = 4
	colMotherName  = 5
	colFatherPhone = 6
	colMotherPhone = 7
)

// StudentRecord is a Students sheet row parsed once at the store boundary.
// Identity is the 1-based row index; row 1 holds headers, data starts at row 2.
type StudentRecord struct {
	RowIndex    int    `json:"row_index"`
	Ordinal     string `json:"SNo"`
	RegNumber   string `json:"RegNo"`
	Name        string `json:"Name"`
	Gender      string `json:"Gender"`
	FatherName  string `json:"FatherName"`
	MotherName  string `json:"MotherName"`
	FatherPhone string `json:"FatherPhone"`
	MotherPhone string `json:"MotherPhone"`
}

// ParseStudentRow validates and converts a raw sheet row into a StudentRecord.
// Rows with fewer than StudentFieldCount populated cells are malformed.
func ParseStudentRow(rowIndex int, cells []string) (StudentRecord, error) {
	if rowIndex < 2 {
		return StudentRecord{}, &DataError{RowIndex: rowIndex, Reason: "row index must be 2 or greater"}
	}
	if len(cells) < StudentFieldCount {
		return StudentRecord{}, &DataError{
			RowIndex: rowIndex,
			Reason:   fmt.Sprintf("expected at least %d cells, got %d", StudentFieldCount, len(cells)),
		}
	}

	return StudentRecord{
		RowIndex:    rowIndex,
		Ordinal:     cells[colOrdinal],
		RegNumber:   cells[colRegNumber],
		Name:        cells[colName],
		Gender:      cells[colGender],
		FatherName:  cells[colFatherName],
		MotherName:  cells[colMotherName],
		FatherPhone: cells[colFatherPhone],
		MotherPhone: cells[colMotherPhone],
	}, nil
}

// ParentName returns the father or mother name for the requested call target.
func (s StudentRecord) ParentName(target CallTarget) string {
	if target == TargetMother {
		return s.MotherName
	}
	return s.FatherName
}

// Phone returns the raw phone number for the requested call target.
func (s StudentRecord) Phone(target CallTarget) string {
	if target == TargetMother {
		return s.MotherPhone
	}
	return s.FatherPhone
}
