package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/mvrcollege/parent-call-system/models"
)

// StudentLister is the roster slice the students endpoint depends on.
type StudentLister interface {
	GetAllRecords(ctx context.Context) ([]models.StudentRecord, error)
}

// CreateStudentsHandler serves GET /api/students. Collaborator failures come
// back as {error, students: []} with HTTP 200 so the dashboard can render a
// message instead of breaking.
func CreateStudentsHandler(roster StudentLister) fiber.Handler {
	return func(c fiber.Ctx) error {
		if roster == nil {
			return c.JSON(fiber.Map{
				"error":    "Cannot connect to Google Sheets",
				"students": []models.StudentRecord{},
			})
		}

		records, err := roster.GetAllRecords(c.Context())
		if err != nil {
			log.Printf("Handler: Failed to fetch students: %v", err)
			return c.JSON(fiber.Map{
				"error":    err.Error(),
				"students": []models.StudentRecord{},
			})
		}

		return c.JSON(fiber.Map{"students": records})
	}
}
