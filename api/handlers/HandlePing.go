package handlers

import (
	"github.com/gofiber/fiber/v3"
)

func HandlePing(c fiber.Ctx) error {
	response := fiber.Map{
		"status":  "ok",
		"service": "parent-call-system",
	}

	return c.JSON(response)
}
