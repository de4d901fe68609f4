package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mvrcollege/parent-call-system/models"
)

var logHeaders = []string{"Timestamp", "Student Name", "Call Type", "Target", "Phone Number", "Call SID", "Response"}

func callLogWith(rows ...[]string) (*CallLogStore, *fakeSheets) {
	sheets := newFakeSheets()
	sheets.rows["CallLogs"] = append([][]string{logHeaders}, rows...)
	return NewCallLogStore(sheets, "CallLogs", logHeaders), sheets
}

func TestAppendCreatesSheetAndWritesRow(t *testing.T) {
	sheets := newFakeSheets()
	store := NewCallLogStore(sheets, "CallLogs", logHeaders)

	record := models.CallRecord{
		Timestamp:   "2026-09-01 10:00:00",
		StudentName: "Asha",
		CallType:    models.CallTypePermission,
		Target:      models.TargetMother,
		Phone:       "+919123456780",
		CallSID:     "CA100",
	}
	if err := store.Append(context.Background(), record); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	if len(sheets.ensured) != 1 || sheets.ensured[0] != "CallLogs" {
		t.Errorf("sheet existence not ensured before append: %v", sheets.ensured)
	}
	rows := sheets.appended["CallLogs"]
	if len(rows) != 1 {
		t.Fatalf("got %d appended rows, want 1", len(rows))
	}
	if rows[0][1] != "Asha" || rows[0][2] != "permission" || rows[0][6] != "" {
		t.Errorf("appended row has wrong shape: %v", rows[0])
	}
}

func TestAppendReportsCollaboratorFailure(t *testing.T) {
	store, sheets := callLogWith()
	sheets.appendErr = errors.New("quota exceeded")

	err := store.Append(context.Background(), models.CallRecord{StudentName: "Asha"})
	var collabErr *models.CollaboratorError
	if !errors.As(err, &collabErr) {
		t.Fatalf("expected CollaboratorError, got %v", err)
	}
}

func TestResolveResponseMatchesByCallSID(t *testing.T) {
	store, sheets := callLogWith(
		[]string{"2026-09-01 09:00:00", "Asha", "permission", "father", "+919876543210", "CA100", ""},
		[]string{"2026-09-01 09:05:00", "Asha", "permission", "mother", "+919123456780", "CA200", ""},
	)

	matched, err := store.ResolveResponse(context.Background(), "Asha", "CA100", models.ResponseGranted)
	if err != nil {
		t.Fatalf("ResolveResponse returned error: %v", err)
	}
	if !matched {
		t.Fatal("expected a match by call SID")
	}

	if len(sheets.updates) != 1 {
		t.Fatalf("got %d cell updates, want 1", len(sheets.updates))
	}
	// CA100 sits in sheet row 2 (header is row 1); response is column 7.
	up := sheets.updates[0]
	if up.row != 2 || up.col != 7 || up.value != models.ResponseGranted {
		t.Errorf("update = %+v, want row 2 col 7 value Granted", up)
	}
}

func TestResolveResponseFallsBackToNewestUnresolved(t *testing.T) {
	store, sheets := callLogWith(
		[]string{"2026-09-01 09:00:00", "Asha", "permission", "father", "+919876543210", "CA100", "Denied"},
		[]string{"2026-09-01 09:05:00", "Asha", "late", "mother", "+919123456780", "CA150", ""},
		[]string{"2026-09-01 09:10:00", "Asha", "permission", "mother", "+919123456780", "CA200", ""},
	)

	matched, err := store.ResolveResponse(context.Background(), "Asha", "", models.ResponseDenied)
	if err != nil {
		t.Fatalf("ResolveResponse returned error: %v", err)
	}
	if !matched {
		t.Fatal("expected fallback match on newest unresolved permission row")
	}

	up := sheets.updates[0]
	if up.row != 4 || up.value != models.ResponseDenied {
		t.Errorf("update = %+v, want newest permission row (sheet row 4)", up)
	}
}

func TestResolveResponseNoMatchLeavesLogUntouched(t *testing.T) {
	store, sheets := callLogWith(
		[]string{"2026-09-01 09:00:00", "Ravi Kumar", "permission", "father", "+919876543210", "CA100", ""},
	)

	matched, err := store.ResolveResponse(context.Background(), "Asha", "", models.ResponseGranted)
	if err != nil {
		t.Fatalf("ResolveResponse returned error: %v", err)
	}
	if matched {
		t.Fatal("expected no match for unknown student")
	}
	if len(sheets.updates) != 0 {
		t.Errorf("log mutated without a match: %+v", sheets.updates)
	}
}

func TestResolveResponseEmptyLog(t *testing.T) {
	store, sheets := callLogWith()

	matched, err := store.ResolveResponse(context.Background(), "Asha", "CA100", models.ResponseGranted)
	if err != nil {
		t.Fatalf("ResolveResponse returned error: %v", err)
	}
	if matched || len(sheets.updates) != 0 {
		t.Error("expected no match and no mutation on empty log")
	}
}

func TestAllSkipsHeader(t *testing.T) {
	store, _ := callLogWith(
		[]string{"2026-09-01 09:00:00", "Asha", "late", "mother", "+919123456780", "CA1", ""},
	)

	rows, err := store.All(context.Background())
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(rows) != 1 || rows[0][1] != "Asha" {
		t.Errorf("unexpected log rows: %v", rows)
	}
}

func TestExportXLSXProducesWorkbook(t *testing.T) {
	store, _ := callLogWith(
		[]string{"2026-09-01 09:00:00", "Asha", "late", "mother", "+919123456780", "CA1", ""},
	)

	data, err := store.ExportXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("ExportXLSX returned empty payload")
	}
	// xlsx files are zip archives.
	if data[0] != 'P' || data[1] != 'K' {
		t.Errorf("export does not look like an xlsx archive: % x", data[:4])
	}
}
