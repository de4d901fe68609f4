package services

import (
	"context"
	"fmt"
	"log"

	"github.com/mvrcollege/parent-call-system/models"
	"github.com/xuri/excelize/v2"
)

// CallLogs sheet column positions. The logCol constants index into scanned
// rows (0-based); responseColumn is 1-based A1 notation for UpdateCell.
const (
	logColStudentName = 1
	logColCallType    = 2
	logColCallSID     = 5
	logColResponse    = 6

	responseColumn = 7
)

// CallLogStore appends call history rows to the CallLogs sheet and resolves
// permission responses. Appends are best-effort at every call site: a logging
// failure is reported but never aborts the call that triggered it.
type CallLogStore struct {
	Sheets    SheetStore
	SheetName string
	Headers   []string
}

func NewCallLogStore(sheets SheetStore, sheetName string, headers []string) *CallLogStore {
	return &CallLogStore{Sheets: sheets, SheetName: sheetName, Headers: headers}
}

// Append adds one record, creating the CallLogs sheet with headers on first use.
func (s *CallLogStore) Append(ctx context.Context, record models.CallRecord) error {
	if err := s.Sheets.EnsureSheetExists(ctx, s.SheetName, s.Headers); err != nil {
		return &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}
	if err := s.Sheets.AppendRow(ctx, s.SheetName, record.Row()); err != nil {
		return &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}
	return nil
}

// All returns the raw log rows, newest last, without the header row.
func (s *CallLogStore) All(ctx context.Context) ([][]string, error) {
	rows, err := s.Sheets.GetAllValues(ctx, s.SheetName)
	if err != nil {
		return nil, &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}
	if len(rows) <= 1 {
		return [][]string{}, nil
	}
	return rows[1:], nil
}

// ResolveResponse writes the caller's decision into the matching log row.
//
// When the telephony callback carries the provider call SID the row is matched
// exactly by SID. Otherwise it falls back to scanning newest-first for the
// latest unresolved permission row for the student; with several pending
// permission calls for one student that scan can pick the wrong row, which is
// why the SID match is preferred. Returns false when no row matched; nothing
// is mutated in that case.
func (s *CallLogStore) ResolveResponse(ctx context.Context, studentName, callSID, response string) (bool, error) {
	rows, err := s.Sheets.GetAllValues(ctx, s.SheetName)
	if err != nil {
		return false, &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}

	match := -1
	if callSID != "" {
		for i := len(rows) - 1; i >= 1; i-- {
			if cellAt(rows[i], logColCallSID) == callSID {
				match = i
				break
			}
		}
	}

	if match < 0 && studentName != "" {
		for i := len(rows) - 1; i >= 1; i-- {
			row := rows[i]
			if cellAt(row, logColStudentName) == studentName &&
				cellAt(row, logColCallType) == string(models.CallTypePermission) &&
				cellAt(row, logColResponse) == "" {
				match = i
				break
			}
		}
	}

	if match < 0 {
		log.Printf("CallLog: No matching permission row for student '%s' (SID '%s'). Response '%s' not recorded.", studentName, callSID, response)
		return false, nil
	}

	sheetRow := match + 1
	if err := s.Sheets.UpdateCell(ctx, s.SheetName, sheetRow, responseColumn, response); err != nil {
		return false, &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}

	log.Printf("CallLog: Recorded response '%s' for student '%s' at row %d.", response, studentName, sheetRow)
	return true, nil
}

// ExportXLSX renders the full call log, header included, as an Excel workbook
// for download from the dashboard.
func (s *CallLogStore) ExportXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.Sheets.GetAllValues(ctx, s.SheetName)
	if err != nil {
		return nil, &models.CollaboratorError{Service: "Google Sheets", Err: err}
	}
	if len(rows) == 0 {
		headerOnly := make([]string, len(s.Headers))
		copy(headerOnly, s.Headers)
		rows = [][]string{headerOnly}
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("CallLog: Error closing xlsx builder: %v", err)
		}
	}()

	const sheet = "CallLogs"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		axis := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize xlsx export: %w", err)
	}
	return buf.Bytes(), nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
