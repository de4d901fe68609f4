package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded (%v). Falling back to process environment.", err)
	} else {
		log.Println("Loaded .env file successfully")
	}

	AppConfig.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	AppConfig.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	AppConfig.TwilioPhoneNumber = os.Getenv("TWILIO_PHONE_NUMBER")
	AppConfig.GoogleSheetsCreds = os.Getenv("GOOGLE_SHEETS_CREDS")
	AppConfig.SpreadsheetID = os.Getenv("SPREADSHEET_ID")

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		AppConfig.BaseURL = baseURL
	}
	if port := os.Getenv("PORT"); port != "" {
		AppConfig.Port = port
	}
	if cc := os.Getenv("COUNTRY_CODE"); cc != "" {
		AppConfig.CountryCode = cc
	}
}

type Config struct {
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	GoogleSheetsCreds string
	SpreadsheetID     string
	BaseURL           string
	Port              string
	CountryCode       string
	StudentsSheet     string
	CallLogsSheet     string
	CallLogHeaders    []string
	MaxRetries        int
	RetryDelay        time.Duration
}

var AppConfig = Config{
	BaseURL:       "http://localhost:3000",
	Port:          "3000",
	CountryCode:   "+91",
	StudentsSheet: "Students",
	CallLogsSheet: "CallLogs",
	CallLogHeaders: []string{
		"Timestamp", "Student Name", "Call Type", "Target",
		"Phone Number", "Call SID", "Response",
	},
	MaxRetries: 3,
	RetryDelay: 2 * time.Second,
}

// TwilioConfigured reports whether all Twilio credentials are present. Call
// placement must refuse with a "not configured" error instead of panicking on
// a nil client when any of them is missing.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}

// SheetsConfigured reports whether the spreadsheet collaborator can be reached.
func (c *Config) SheetsConfigured() bool {
	return c.GoogleSheetsCreds != "" && c.SpreadsheetID != ""
}
