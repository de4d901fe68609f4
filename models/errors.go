package models

import (
	"errors"
	"fmt"
)

// Configuration errors: a required collaborator was never configured. These are
// reported to the dashboard as a plain message, never as a crash.
var (
	ErrTwilioNotConfigured = errors.New("Twilio not configured")
	ErrSheetsNotConfigured = errors.New("Google Sheets not configured")
)

// DataError reports an absent or malformed roster row.
type DataError struct {
	RowIndex int
	Reason   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid student data at row %d: %s", e.RowIndex, e.Reason)
}

// MissingPhoneError reports that the requested parent has no number on file.
type MissingPhoneError struct {
	Target CallTarget
}

func (e *MissingPhoneError) Error() string {
	return fmt.Sprintf("phone number not available for %s", e.Target)
}

// CollaboratorError wraps a network or API failure from an external service
// (spreadsheet or telephony provider).
type CollaboratorError struct {
	Service string
	Err     error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Service, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
