package services

import (
	"context"
	"fmt"
	"log"

	"github.com/mvrcollege/parent-call-system/models"
)

// SheetStore is the slice of the Sheets API the roster and call-log stores
// depend on. *SheetsClient satisfies it; tests substitute an in-memory fake.
type SheetStore interface {
	GetAllValues(ctx context.Context, sheetName string) ([][]string, error)
	GetRow(ctx context.Context, sheetName string, rowIndex int) ([]string, error)
	AppendRow(ctx context.Context, sheetName string, row []interface{}) error
	UpdateCell(ctx context.Context, sheetName string, rowIndex, colIndex int, value string) error
	EnsureSheetExists(ctx context.Context, sheetName string, headers []string) error
}

// RosterStore reads student records from the Students sheet. The sheet is
// owned and edited externally; this store never writes to it.
type RosterStore struct {
	Sheets    SheetStore
	SheetName string
}

func NewRosterStore(sheets SheetStore, sheetName string) *RosterStore {
	return &RosterStore{Sheets: sheets, SheetName: sheetName}
}

// GetAllRecords returns every data row in sheet order. Short rows are padded
// rather than dropped so the dashboard can still display partial entries;
// strict validation happens in GetStudent when a call is actually placed.
func (s *RosterStore) GetAllRecords(ctx context.Context) ([]models.StudentRecord, error) {
	rows, err := s.Sheets.GetAllValues(ctx, s.SheetName)
	if err != nil {
		return nil, &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}

	records := make([]models.StudentRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		rowIndex := i + 1
		padded := padRow(row, models.StudentFieldCount)
		record, err := models.ParseStudentRow(rowIndex, padded)
		if err != nil {
			log.Printf("Roster: Skipping unparseable row %d: %v", rowIndex, err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// GetStudent fetches and validates one roster row for call placement.
func (s *RosterStore) GetStudent(ctx context.Context, rowIndex int) (models.StudentRecord, error) {
	if rowIndex < 2 {
		return models.StudentRecord{}, &models.DataError{RowIndex: rowIndex, Reason: "row index must be 2 or greater"}
	}

	row, err := s.Sheets.GetRow(ctx, s.SheetName, rowIndex)
	if err != nil {
		return models.StudentRecord{}, &models.CollaboratorError{
			Service: "Google Sheets",
			Err:     fmt.Errorf("fetching row %d: %w", rowIndex, err),
		}
	}
	if len(row) == 0 {
		return models.StudentRecord{}, &models.DataError{RowIndex: rowIndex, Reason: "row is empty or absent"}
	}

	return models.ParseStudentRow(rowIndex, row)
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
