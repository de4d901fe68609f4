package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient wraps the Google Sheets API for the roster and call-log tabs.
// All state lives in the spreadsheet; this client is safe for concurrent use.
type SheetsClient struct {
	sheetsService    *sheets.Service
	spreadsheetID    string
	retryMaxAttempts int
	retryDelay       time.Duration
}

// NewSheetsClient builds a client from the service-account credentials JSON
// blob provided through the environment.
func NewSheetsClient(spreadsheetID string, credentialsJSON string, retryMaxAttempts int, retryDelay time.Duration) (*SheetsClient, error) {
	ctx := context.Background()

	config, err := google.JWTConfigFromJSON([]byte(credentialsJSON), sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to configure JWT from credentials: %w", err)
	}

	client := config.Client(ctx)
	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Sheets API client: %w", err)
	}

	return &SheetsClient{
		sheetsService:    sheetsService,
		spreadsheetID:    spreadsheetID,
		retryMaxAttempts: retryMaxAttempts,
		retryDelay:       retryDelay,
	}, nil
}

// GetAllValues returns every populated row of the given sheet as strings,
// including the header row.
func (w *SheetsClient) GetAllValues(ctx context.Context, sheetName string) ([][]string, error) {
	readRange := fmt.Sprintf("'%s'!A:Z", sheetName)

	var resp *sheets.ValueRange
	readCallFunc := func() error {
		var err error
		resp, err = w.sheetsService.Spreadsheets.Values.Get(w.spreadsheetID, readRange).Context(ctx).Do()
		return err
	}

	if err := w.executeSheetsCall(ctx, readCallFunc, fmt.Sprintf("read range '%s'", readRange)); err != nil {
		return nil, fmt.Errorf("failed to read values from sheet '%s': %w", sheetName, err)
	}

	return stringRows(resp.Values), nil
}

// GetRow returns the raw cell values of a single 1-based row. A row beyond the
// populated range comes back empty, not as an error.
func (w *SheetsClient) GetRow(ctx context.Context, sheetName string, rowIndex int) ([]string, error) {
	readRange := fmt.Sprintf("'%s'!A%d:Z%d", sheetName, rowIndex, rowIndex)

	var resp *sheets.ValueRange
	readCallFunc := func() error {
		var err error
		resp, err = w.sheetsService.Spreadsheets.Values.Get(w.spreadsheetID, readRange).Context(ctx).Do()
		return err
	}

	if err := w.executeSheetsCall(ctx, readCallFunc, fmt.Sprintf("read row %d of '%s'", rowIndex, sheetName)); err != nil {
		return nil, fmt.Errorf("failed to read row %d from sheet '%s': %w", rowIndex, sheetName, err)
	}

	rows := stringRows(resp.Values)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// AppendRow adds a single row after the last populated row of the sheet.
func (w *SheetsClient) AppendRow(ctx context.Context, sheetName string, row []interface{}) error {
	appendRange := fmt.Sprintf("'%s'", sheetName)
	valueInputOption := "USER_ENTERED"
	insertDataOption := "INSERT_ROWS"

	appendCallFunc := func() error {
		_, err := w.sheetsService.Spreadsheets.Values.Append(
			w.spreadsheetID, appendRange,
			&sheets.ValueRange{Values: [][]interface{}{row}},
		).ValueInputOption(valueInputOption).InsertDataOption(insertDataOption).Context(ctx).Do()
		return err
	}

	if err := w.executeSheetsCall(ctx, appendCallFunc, fmt.Sprintf("append row to '%s'", sheetName)); err != nil {
		return fmt.Errorf("failed to append row to sheet '%s' in spreadsheet '%s': %w", sheetName, w.spreadsheetID, err)
	}

	log.Printf("API Sheets: Row appended successfully to sheet '%s'.", sheetName)
	return nil
}

// UpdateCell overwrites exactly one cell, addressed by 1-based row and column.
func (w *SheetsClient) UpdateCell(ctx context.Context, sheetName string, rowIndex, colIndex int, value string) error {
	cell := fmt.Sprintf("'%s'!%s%d", sheetName, columnLetter(colIndex), rowIndex)

	updateCallFunc := func() error {
		_, err := w.sheetsService.Spreadsheets.Values.Update(
			w.spreadsheetID, cell,
			&sheets.ValueRange{Values: [][]interface{}{{value}}},
		).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		return err
	}

	if err := w.executeSheetsCall(ctx, updateCallFunc, fmt.Sprintf("update cell %s", cell)); err != nil {
		return fmt.Errorf("failed to update cell %s in spreadsheet '%s': %w", cell, w.spreadsheetID, err)
	}

	log.Printf("API Sheets: Cell %s updated successfully.", cell)
	return nil
}

// EnsureSheetExists creates the named sheet with a header row when missing.
func (w *SheetsClient) EnsureSheetExists(ctx context.Context, sheetName string, headers []string) error {
	log.Printf("API Sheets: Checking if sheet '%s' exists in spreadsheet '%s'...", sheetName, w.spreadsheetID)
	spreadsheet, err := w.sheetsService.Spreadsheets.Get(w.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet details for '%s' to check for sheet '%s': %w", w.spreadsheetID, sheetName, err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == sheetName {
			return nil
		}
	}

	log.Printf("API Sheets: Sheet '%s' doesn't exist in spreadsheet '%s'. Creating...", sheetName, w.spreadsheetID)
	batchUpdateRequest := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: sheetName,
				},
			},
		}},
	}

	batchUpdateCallFunc := func() error {
		_, err := w.sheetsService.Spreadsheets.BatchUpdate(w.spreadsheetID, batchUpdateRequest).Context(ctx).Do()
		return err
	}

	if err := w.executeSheetsCall(ctx, batchUpdateCallFunc, fmt.Sprintf("create sheet '%s' via BatchUpdate", sheetName)); err != nil {
		return fmt.Errorf("failed to create sheet '%s' in spreadsheet '%s': %w", sheetName, w.spreadsheetID, err)
	}

	if len(headers) > 0 {
		headerRow := make([]interface{}, len(headers))
		for i, h := range headers {
			headerRow[i] = h
		}
		if err := w.AppendRow(ctx, sheetName, headerRow); err != nil {
			return fmt.Errorf("failed to write header row to new sheet '%s': %w", sheetName, err)
		}
	}

	log.Printf("API Sheets: Sheet '%s' created successfully in spreadsheet '%s'.", sheetName, w.spreadsheetID)
	return nil
}

// Title returns the spreadsheet's own title, used by the debug endpoint as a
// connectivity probe.
func (w *SheetsClient) Title(ctx context.Context) (string, error) {
	spreadsheet, err := w.sheetsService.Spreadsheets.Get(w.spreadsheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get spreadsheet title for '%s': %w", w.spreadsheetID, err)
	}
	return spreadsheet.Properties.Title, nil
}

func isRetryableSheetsError(err error) bool {
	if err == nil {
		return false
	}

	apiErr, ok := err.(*googleapi.Error)
	if !ok {
		return false
	}

	if apiErr.Code >= 500 && apiErr.Code < 600 {
		log.Printf("Google API 5xx error (%d): %s. Retrying...", apiErr.Code, apiErr.Message)
		return true
	}

	if apiErr.Code == 429 {
		log.Printf("Google API 429 error (Quota Limit). Retrying...")
		return true
	}

	if apiErr.Code == 403 && strings.Contains(strings.ToLower(apiErr.Message), "ratelimitexceeded") {
		log.Printf("Google API 403 error (Forbidden / Quota Exceeded). Retrying...")
		return true
	}

	return false
}

func (w *SheetsClient) executeSheetsCall(ctx context.Context, callFunc func() error, operationDesc string) error {
	baseDelay := w.retryDelay
	maxAttempts := w.retryMaxAttempts

	for attempt := 0; attempt <= maxAttempts; attempt++ {

		select {
		case <-ctx.Done():
			log.Printf("Sheets API operation '%s' cancelled via context before attempt %d: %v", operationDesc, attempt+1, ctx.Err())
			return fmt.Errorf("operation '%s' cancelled via context: %w", operationDesc, ctx.Err())
		default:
		}

		err := callFunc()
		if err == nil {
			return nil
		}

		if isRetryableSheetsError(err) && attempt < maxAttempts {
			delay := baseDelay * time.Duration(1<<attempt)

			log.Printf("Sheets API operation '%s' failed (attempt %d/%d): %v. Waiting %s before retrying...", operationDesc, attempt+1, maxAttempts+1, err, delay)

			select {
			case <-time.After(delay):

			case <-ctx.Done():
				log.Printf("Sheets API operation '%s' cancelled via context during wait: %v", operationDesc, ctx.Err())
				return fmt.Errorf("operation '%s' cancelled via context during retry wait: %w", operationDesc, ctx.Err())
			}
		} else {

			return fmt.Errorf("fatal Sheets API operation '%s' failure after %d attempts: %w", operationDesc, attempt+1, err)
		}
	}

	return fmt.Errorf("executeSheetsCall reached unexpected state for operation: %s", operationDesc)
}

func stringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, raw := range values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, strings.TrimSpace(fmt.Sprintf("%v", cell)))
		}
		rows = append(rows, row)
	}
	return rows
}

// columnLetter converts a 1-based column index to its A1-notation letter.
// The call log has 7 columns, so single letters cover everything in use.
func columnLetter(colIndex int) string {
	letters := ""
	for colIndex > 0 {
		colIndex--
		letters = string(rune('A'+colIndex%26)) + letters
		colIndex /= 26
	}
	return letters
}
