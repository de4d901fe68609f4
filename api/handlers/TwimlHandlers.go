package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/mvrcollege/parent-call-system/models"
	"github.com/mvrcollege/parent-call-system/services"
)

const twimlContentType = "text/xml; charset=utf-8"

func sendTwiML(c fiber.Ctx, doc string) error {
	c.Set(fiber.HeaderContentType, twimlContentType)
	return c.SendString(doc)
}

// callbackParams parses the row index and target baked into the callback URL.
// Invalid values yield ok=false; the caller must still answer with valid TwiML.
func callbackParams(c fiber.Ctx) (int, models.CallTarget, bool) {
	rowIndex, err := strconv.Atoi(c.Params("row_index"))
	if err != nil {
		log.Printf("TwiML: Invalid row_index '%s' in callback URL: %v", c.Params("row_index"), err)
		return 0, "", false
	}

	target, err := models.ParseCallTarget(c.Params("target"))
	if err != nil {
		log.Printf("TwiML: Invalid target '%s' in callback URL: %v", c.Params("target"), err)
		return 0, "", false
	}

	return rowIndex, target, true
}

// CreateLateTwimlHandler serves GET /twiml/late/:row_index/:target.
func CreateLateTwimlHandler(orchestrator Orchestrator) fiber.Handler {
	return func(c fiber.Ctx) error {
		rowIndex, target, ok := callbackParams(c)
		if !ok || orchestrator == nil {
			return sendTwiML(c, services.ErrorTwiML())
		}
		return sendTwiML(c, orchestrator.LateScript(c.Context(), rowIndex, target))
	}
}

// CreatePermissionTwimlHandler serves GET /twiml/permission/:row_index/:target,
// the document Twilio fetches when the permission call connects.
func CreatePermissionTwimlHandler(orchestrator Orchestrator) fiber.Handler {
	return func(c fiber.Ctx) error {
		rowIndex, target, ok := callbackParams(c)
		if !ok || orchestrator == nil {
			return sendTwiML(c, services.ErrorTwiML())
		}
		return sendTwiML(c, orchestrator.PermissionScript(c.Context(), rowIndex, target))
	}
}

// CreatePermissionResponseHandler serves the gather action POST carrying the
// parent's keypress in the Digits form field. Twilio also reports the call SID,
// which lets the log update match the exact originating call.
func CreatePermissionResponseHandler(orchestrator Orchestrator) fiber.Handler {
	return func(c fiber.Ctx) error {
		rowIndex, target, ok := callbackParams(c)
		if !ok || orchestrator == nil {
			return sendTwiML(c, services.ErrorTwiML())
		}

		digit := c.FormValue("Digits")
		callSID := c.FormValue("CallSid")
		return sendTwiML(c, orchestrator.HandleKeypress(c.Context(), rowIndex, target, callSID, digit))
	}
}
