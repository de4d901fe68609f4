package main

import (
	"log"

	"github.com/mvrcollege/parent-call-system/api"
	"github.com/mvrcollege/parent-call-system/api/handlers"
	"github.com/mvrcollege/parent-call-system/config"
	"github.com/mvrcollege/parent-call-system/services"
)

func main() {
	config.Init()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var sheetStore services.SheetStore = services.UnconfiguredSheets{}
	var sheetsProbe handlers.SheetsProbe

	if config.AppConfig.SheetsConfigured() {
		sheetsClient, err := services.NewSheetsClient(
			config.AppConfig.SpreadsheetID,
			config.AppConfig.GoogleSheetsCreds,
			config.AppConfig.MaxRetries,
			config.AppConfig.RetryDelay,
		)
		if err != nil {
			log.Printf("Error creating Google Sheets client: %v. Sheet-backed features disabled.", err)
		} else {
			sheetStore = sheetsClient
			sheetsProbe = sheetsClient
			log.Println("Google Sheets client initialized successfully")
		}
	} else {
		log.Println("Google Sheets not configured")
	}

	roster := services.NewRosterStore(sheetStore, config.AppConfig.StudentsSheet)
	callLog := services.NewCallLogStore(sheetStore, config.AppConfig.CallLogsSheet, config.AppConfig.CallLogHeaders)

	var placer services.CallPlacer
	if config.AppConfig.TwilioConfigured() {
		placer = services.NewTwilioService(
			config.AppConfig.TwilioAccountSID,
			config.AppConfig.TwilioAuthToken,
			config.AppConfig.TwilioPhoneNumber,
		)
		log.Println("Twilio initialized successfully")
	} else {
		log.Println("Twilio not configured")
	}

	orchestrator := services.NewCallOrchestrator(&config.AppConfig, roster, callLog, placer)

	app := api.SetupRouter(&api.Collaborators{
		Orchestrator: orchestrator,
		Roster:       roster,
		CallLog:      callLog,
		SheetsProbe:  sheetsProbe,
	}, &config.AppConfig)

	listenAddr := ":" + config.AppConfig.Port

	log.Printf("Starting Fiber server on %s...", listenAddr)

	if err := app.Listen(listenAddr); err != nil {
		log.Fatalf("Fatal error starting Fiber server: %v", err)
	}
}
