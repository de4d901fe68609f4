package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	requests "github.com/mvrcollege/parent-call-system/api/requests"
	"github.com/mvrcollege/parent-call-system/models"
)

// Orchestrator is the slice of the call workflow the HTTP layer depends on.
type Orchestrator interface {
	InitiateCall(ctx context.Context, rowIndex int, target models.CallTarget, callType models.CallType) (models.CallResult, error)
	LateScript(ctx context.Context, rowIndex int, target models.CallTarget) string
	PermissionScript(ctx context.Context, rowIndex int, target models.CallTarget) string
	HandleKeypress(ctx context.Context, rowIndex int, target models.CallTarget, callSID, digit string) string
}

// CreateCallHandler serves POST /api/call/late and /api/call/permission. Every
// failure becomes a structured JSON body with HTTP 200, matching what the
// dashboard's fetch handler expects.
func CreateCallHandler(orchestrator Orchestrator, callType models.CallType) fiber.Handler {
	return func(c fiber.Ctx) error {
		if orchestrator == nil {
			return c.JSON(fiber.Map{"success": false, "error": models.ErrTwilioNotConfigured.Error()})
		}

		params := new(requests.CallRequest)
		if err := c.Bind().Body(params); err != nil {
			log.Printf("Handler: Error parsing %s call request body: %v", callType, err)
			return c.JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}
		params.ApplyDefaults()

		target, err := models.ParseCallTarget(params.Target)
		if err != nil {
			return c.JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		result, err := orchestrator.InitiateCall(c.Context(), params.RowIndex, target, callType)
		if err != nil {
			log.Printf("Handler: %s call for row %d failed: %v", callType, params.RowIndex, err)
			return c.JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		return c.JSON(fiber.Map{"success": true, "call_sid": result.CallSID})
	}
}
