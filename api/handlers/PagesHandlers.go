package handlers

import (
	"embed"

	"github.com/gofiber/fiber/v3"
)

//go:embed views/dashboard.html views/logs.html
var views embed.FS

func servePage(c fiber.Ctx, name string) error {
	page, err := views.ReadFile("views/" + name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Server error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

// HandleDashboard serves the main dashboard page.
func HandleDashboard(c fiber.Ctx) error {
	return servePage(c, "dashboard.html")
}

// HandleLogsPage serves the call-log viewer page.
func HandleLogsPage(c fiber.Ctx) error {
	return servePage(c, "logs.html")
}
