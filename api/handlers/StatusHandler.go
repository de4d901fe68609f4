package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/mvrcollege/parent-call-system/config"
)

// CreateStatusHandler serves GET /api/status with the configuration flags the
// dashboard uses to enable or grey out its call buttons.
func CreateStatusHandler(cfg *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"twilio_configured": cfg.TwilioConfigured(),
			"sheets_configured": cfg.SheetsConfigured(),
		})
	}
}
