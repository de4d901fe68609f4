package services

import (
	"context"

	"github.com/mvrcollege/parent-call-system/models"
)

// UnconfiguredSheets stands in for the Sheets client when the spreadsheet
// credentials are absent. Every operation reports the missing configuration,
// so the stores and orchestrator stay constructed and the process never
// crashes on a nil client.
type UnconfiguredSheets struct{}

func (UnconfiguredSheets) GetAllValues(context.Context, string) ([][]string, error) {
	return nil, models.ErrSheetsNotConfigured
}

func (UnconfiguredSheets) GetRow(context.Context, string, int) ([]string, error) {
	return nil, models.ErrSheetsNotConfigured
}

func (UnconfiguredSheets) AppendRow(context.Context, string, []interface{}) error {
	return models.ErrSheetsNotConfigured
}

func (UnconfiguredSheets) UpdateCell(context.Context, string, int, int, string) error {
	return models.ErrSheetsNotConfigured
}

func (UnconfiguredSheets) EnsureSheetExists(context.Context, string, []string) error {
	return models.ErrSheetsNotConfigured
}
