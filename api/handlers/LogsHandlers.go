package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
)

// LogSource is the call-log slice the log endpoints depend on.
type LogSource interface {
	All(ctx context.Context) ([][]string, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

// CreateLogsHandler serves GET /api/logs with the raw log rows, header skipped.
func CreateLogsHandler(callLog LogSource) fiber.Handler {
	return func(c fiber.Ctx) error {
		if callLog == nil {
			return c.JSON(fiber.Map{"logs": [][]string{}})
		}

		rows, err := callLog.All(c.Context())
		if err != nil {
			log.Printf("Handler: Failed to fetch call logs: %v", err)
			return c.JSON(fiber.Map{"logs": [][]string{}})
		}

		return c.JSON(fiber.Map{"logs": rows})
	}
}

// CreateLogsExportHandler serves GET /api/logs/export as an xlsx download.
func CreateLogsExportHandler(callLog LogSource) fiber.Handler {
	return func(c fiber.Ctx) error {
		if callLog == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Google Sheets not configured",
			})
		}

		data, err := callLog.ExportXLSX(c.Context())
		if err != nil {
			log.Printf("Handler: Failed to export call logs: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to export call logs",
			})
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="call_logs.xlsx"`)
		return c.Send(data)
	}
}
