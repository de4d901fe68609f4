package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/mvrcollege/parent-call-system/api/handlers"
	"github.com/mvrcollege/parent-call-system/config"
	"github.com/mvrcollege/parent-call-system/models"
)

// Collaborators carries the constructed service clients. Any of the store or
// orchestrator fields may be nil when the matching configuration is absent;
// handlers then answer with a "not configured" error instead of crashing.
type Collaborators struct {
	Orchestrator handlers.Orchestrator
	Roster       handlers.StudentLister
	CallLog      handlers.LogSource
	SheetsProbe  handlers.SheetsProbe
}

func SetupRouter(collab *Collaborators, appConfig *config.Config) *fiber.App {

	r := fiber.New()

	r.Get("/", handlers.HandleDashboard)
	r.Get("/logs", handlers.HandleLogsPage)
	r.Get("/debug", handlers.CreateDebugHandler(appConfig, collab.SheetsProbe))

	api := r.Group("/api")
	api.Get("/ping", handlers.HandlePing)
	api.Get("/status", handlers.CreateStatusHandler(appConfig))
	api.Get("/students", handlers.CreateStudentsHandler(collab.Roster))
	api.Get("/logs", handlers.CreateLogsHandler(collab.CallLog))
	api.Get("/logs/export", handlers.CreateLogsExportHandler(collab.CallLog))
	api.Post("/call/late", handlers.CreateCallHandler(collab.Orchestrator, models.CallTypeLate))
	api.Post("/call/permission", handlers.CreateCallHandler(collab.Orchestrator, models.CallTypePermission))

	twimlGroup := r.Group("/twiml")
	twimlGroup.Get("/late/:row_index/:target", handlers.CreateLateTwimlHandler(collab.Orchestrator))
	twimlGroup.Get("/permission/:row_index/:target", handlers.CreatePermissionTwimlHandler(collab.Orchestrator))
	twimlGroup.Post("/permission/response/:row_index/:target", handlers.CreatePermissionResponseHandler(collab.Orchestrator))

	return r
}
