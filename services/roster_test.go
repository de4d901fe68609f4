package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mvrcollege/parent-call-system/models"
)

// --- In-memory SheetStore fake shared by the store tests ---

type cellUpdate struct {
	sheet string
	row   int
	col   int
	value string
}

type fakeSheets struct {
	rows      map[string][][]string
	readErr   error
	appendErr error
	updateErr error
	appended  map[string][][]interface{}
	updates   []cellUpdate
	ensured   []string
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{
		rows:     make(map[string][][]string),
		appended: make(map[string][][]interface{}),
	}
}

func (f *fakeSheets) GetAllValues(_ context.Context, sheetName string) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows[sheetName], nil
}

func (f *fakeSheets) GetRow(_ context.Context, sheetName string, rowIndex int) ([]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	rows := f.rows[sheetName]
	if rowIndex < 1 || rowIndex > len(rows) {
		return nil, nil
	}
	return rows[rowIndex-1], nil
}

func (f *fakeSheets) AppendRow(_ context.Context, sheetName string, row []interface{}) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended[sheetName] = append(f.appended[sheetName], row)

	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = fmt.Sprintf("%v", v)
	}
	f.rows[sheetName] = append(f.rows[sheetName], cells)
	return nil
}

func (f *fakeSheets) UpdateCell(_ context.Context, sheetName string, rowIndex, colIndex int, value string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, cellUpdate{sheet: sheetName, row: rowIndex, col: colIndex, value: value})

	rows := f.rows[sheetName]
	if rowIndex >= 1 && rowIndex <= len(rows) {
		row := rows[rowIndex-1]
		for len(row) < colIndex {
			row = append(row, "")
		}
		row[colIndex-1] = value
		rows[rowIndex-1] = row
	}
	return nil
}

func (f *fakeSheets) EnsureSheetExists(_ context.Context, sheetName string, headers []string) error {
	f.ensured = append(f.ensured, sheetName)
	if _, ok := f.rows[sheetName]; !ok && len(headers) > 0 {
		header := make([]string, len(headers))
		copy(header, headers)
		f.rows[sheetName] = [][]string{header}
	}
	return nil
}

var studentsHeader = []string{"S.No", "Reg No", "Name", "Gender", "Father Name", "Mother Name", "Father Phone", "Mother Phone"}

func rosterWith(rows ...[]string) (*RosterStore, *fakeSheets) {
	sheets := newFakeSheets()
	sheets.rows["Students"] = append([][]string{studentsHeader}, rows...)
	return NewRosterStore(sheets, "Students"), sheets
}

// --- Tests ---

func TestGetStudentParsesRow(t *testing.T) {
	store, _ := rosterWith(
		[]string{"1", "R101", "Ravi Kumar", "M", "Suresh", "Lakshmi", "9876543210", "9123456789"},
	)

	student, err := store.GetStudent(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetStudent returned error: %v", err)
	}

	if student.RowIndex != 2 {
		t.Errorf("RowIndex = %d, want 2", student.RowIndex)
	}
	if student.Name != "Ravi Kumar" {
		t.Errorf("Name = %q, want 'Ravi Kumar'", student.Name)
	}
	if student.Gender != "M" {
		t.Errorf("Gender = %q, want 'M'", student.Gender)
	}
	if got := student.Phone(models.TargetFather); got != "9876543210" {
		t.Errorf("father phone = %q, want '9876543210'", got)
	}
	if got := student.Phone(models.TargetMother); got != "9123456789" {
		t.Errorf("mother phone = %q, want '9123456789'", got)
	}
	if got := student.ParentName(models.TargetMother); got != "Lakshmi" {
		t.Errorf("mother name = %q, want 'Lakshmi'", got)
	}
}

func TestGetStudentMalformedRow(t *testing.T) {
	store, _ := rosterWith(
		[]string{"1", "R101", "Ravi"},
	)

	_, err := store.GetStudent(context.Background(), 2)
	var dataErr *models.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError for short row, got %v", err)
	}
	if dataErr.RowIndex != 2 {
		t.Errorf("DataError.RowIndex = %d, want 2", dataErr.RowIndex)
	}
}

func TestGetStudentAbsentRow(t *testing.T) {
	store, _ := rosterWith(
		[]string{"1", "R101", "Ravi Kumar", "M", "Suresh", "Lakshmi", "9876543210", "9123456789"},
	)

	_, err := store.GetStudent(context.Background(), 50)
	var dataErr *models.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError for absent row, got %v", err)
	}
}

func TestGetStudentRejectsHeaderRow(t *testing.T) {
	store, _ := rosterWith()

	for _, idx := range []int{0, 1, -3} {
		if _, err := store.GetStudent(context.Background(), idx); err == nil {
			t.Errorf("GetStudent(%d) succeeded, want validation error", idx)
		}
	}
}

func TestGetStudentCollaboratorFailure(t *testing.T) {
	store, sheets := rosterWith()
	sheets.readErr = errors.New("network unreachable")

	_, err := store.GetStudent(context.Background(), 2)
	var collabErr *models.CollaboratorError
	if !errors.As(err, &collabErr) {
		t.Fatalf("expected CollaboratorError, got %v", err)
	}
}

func TestGetAllRecordsSkipsHeaderAndPadsShortRows(t *testing.T) {
	store, _ := rosterWith(
		[]string{"1", "R101", "Ravi Kumar", "M", "Suresh", "Lakshmi", "9876543210", "9123456789"},
		[]string{"2", "R102", "Asha"},
	)

	records, err := store.GetAllRecords(context.Background())
	if err != nil {
		t.Fatalf("GetAllRecords returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].RowIndex != 2 || records[1].RowIndex != 3 {
		t.Errorf("row indices = %d, %d; want 2, 3", records[0].RowIndex, records[1].RowIndex)
	}
	if records[1].Name != "Asha" || records[1].FatherPhone != "" {
		t.Errorf("short row not padded as expected: %+v", records[1])
	}
}
