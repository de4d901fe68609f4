package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/mvrcollege/parent-call-system/config"
	"github.com/mvrcollege/parent-call-system/utils"
)

// SheetsProbe is the connectivity check the debug endpoint performs against
// the spreadsheet collaborator.
type SheetsProbe interface {
	Title(ctx context.Context) (string, error)
	GetAllValues(ctx context.Context, sheetName string) ([][]string, error)
}

// CreateDebugHandler serves GET /debug: configuration introspection with
// secrets masked, plus a live probe of the spreadsheet connection.
func CreateDebugHandler(cfg *config.Config, probe SheetsProbe) fiber.Handler {
	return func(c fiber.Ctx) error {
		debugInfo := fiber.Map{
			"twilio_configured": cfg.TwilioConfigured(),
			"twilio_sid":        utils.MaskSecret(cfg.TwilioAccountSID, 10),
			"twilio_number":     utils.ValueOrNotSet(cfg.TwilioPhoneNumber),
			"sheets_configured": cfg.SheetsConfigured(),
			"spreadsheet_id":    utils.ValueOrNotSet(cfg.SpreadsheetID),
			"creds_length":      len(cfg.GoogleSheetsCreds),
		}

		if probe == nil {
			debugInfo["sheets_connection"] = "FAILED"
			return c.JSON(debugInfo)
		}

		title, err := probe.Title(c.Context())
		if err != nil {
			debugInfo["sheets_connection"] = "ERROR: " + err.Error()
			return c.JSON(debugInfo)
		}
		debugInfo["sheets_connection"] = "SUCCESS"
		debugInfo["spreadsheet_title"] = title

		rows, err := probe.GetAllValues(c.Context(), cfg.StudentsSheet)
		if err != nil {
			debugInfo["headers"] = "Could not read"
			return c.JSON(debugInfo)
		}
		if len(rows) > 0 {
			debugInfo["headers"] = rows[0]
			debugInfo["data_rows"] = len(rows) - 1
		} else {
			debugInfo["headers"] = []string{}
			debugInfo["data_rows"] = 0
		}

		return c.JSON(debugInfo)
	}
}
