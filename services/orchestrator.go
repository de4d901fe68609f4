package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvrcollege/parent-call-system/config"
	"github.com/mvrcollege/parent-call-system/models"
)

// StudentSource is the roster contract the orchestrator depends on.
type StudentSource interface {
	GetStudent(ctx context.Context, rowIndex int) (models.StudentRecord, error)
}

// CallLogger is the call-log contract: best-effort append plus one-shot
// response resolution.
type CallLogger interface {
	Append(ctx context.Context, record models.CallRecord) error
	ResolveResponse(ctx context.Context, studentName, callSID, response string) (bool, error)
}

// CallOrchestrator drives the whole call workflow: roster lookup, phone
// selection and normalization, call placement, and call-log bookkeeping.
// It is stateless per request; every invocation re-reads the spreadsheet.
type CallOrchestrator struct {
	Config *config.Config
	Roster StudentSource
	Log    CallLogger
	Placer CallPlacer
}

func NewCallOrchestrator(cfg *config.Config, roster StudentSource, callLog CallLogger, placer CallPlacer) *CallOrchestrator {
	return &CallOrchestrator{Config: cfg, Roster: roster, Log: callLog, Placer: placer}
}

// InitiateCall places one real outbound call for the given roster row. There is
// no idempotency: the dashboard confirms with the operator before submitting.
func (o *CallOrchestrator) InitiateCall(ctx context.Context, rowIndex int, target models.CallTarget, callType models.CallType) (models.CallResult, error) {
	requestID := uuid.NewString()

	if o.Placer == nil || !o.Config.TwilioConfigured() {
		log.Printf("Call %s: Rejected %s call for row %d: Twilio not configured.", requestID, callType, rowIndex)
		return models.CallResult{}, models.ErrTwilioNotConfigured
	}

	student, err := o.Roster.GetStudent(ctx, rowIndex)
	if err != nil {
		log.Printf("Call %s: Roster lookup for row %d failed: %v", requestID, rowIndex, err)
		return models.CallResult{}, err
	}

	rawPhone := student.Phone(target)
	if rawPhone == "" {
		log.Printf("Call %s: No %s phone on file for student '%s' (row %d).", requestID, target, student.Name, rowIndex)
		return models.CallResult{}, &models.MissingPhoneError{Target: target}
	}
	phone := NormalizePhone(rawPhone, o.Config.CountryCode)

	log.Printf("Call %s: Placing %s call to %s of student '%s' (row %d) at %s...", requestID, callType, target, student.Name, rowIndex, phone)

	var callSID string
	switch callType {
	case models.CallTypeLate:
		message := LateMessage(student.Name, student.Gender, student.ParentName(target))
		callSID, err = o.Placer.PlaceCallWithTwiML(ctx, phone, LateTwiML(message))
	case models.CallTypePermission:
		callSID, err = o.Placer.PlaceCallWithURL(ctx, phone, o.permissionCallbackURL(rowIndex, target))
	default:
		return models.CallResult{}, fmt.Errorf("unknown call type '%s'", callType)
	}
	if err != nil {
		return models.CallResult{}, &models.CollaboratorError{Service: "Twilio", Err: err}
	}

	record := models.CallRecord{
		Timestamp:   time.Now().Format(models.CallLogTimestampLayout),
		StudentName: student.Name,
		CallType:    callType,
		Target:      target,
		Phone:       phone,
		CallSID:     callSID,
	}
	if logErr := o.Log.Append(ctx, record); logErr != nil {
		// Logging is a non-fatal side effect: the call has already been placed.
		log.Printf("Call %s: Failed to append call log entry (call SID %s still placed): %v", requestID, callSID, logErr)
	}

	log.Printf("Call %s: %s call placed (SID %s).", requestID, callType, callSID)
	return models.CallResult{Success: true, CallSID: callSID}, nil
}

// PermissionScript builds the interactive voice document served to the provider
// when it fetches the permission call's script.
func (o *CallOrchestrator) PermissionScript(ctx context.Context, rowIndex int, target models.CallTarget) string {
	student, err := o.Roster.GetStudent(ctx, rowIndex)
	if err != nil {
		log.Printf("TwiML: Roster lookup for permission script (row %d) failed: %v", rowIndex, err)
		return ErrorTwiML()
	}

	message := PermissionMessage(student.Name, student.Gender, student.ParentName(target))
	return PermissionTwiML(message, o.permissionResponseURL(rowIndex, target))
}

// LateScript builds the late-notice voice document for callback fetches.
func (o *CallOrchestrator) LateScript(ctx context.Context, rowIndex int, target models.CallTarget) string {
	student, err := o.Roster.GetStudent(ctx, rowIndex)
	if err != nil {
		log.Printf("TwiML: Roster lookup for late script (row %d) failed: %v", rowIndex, err)
		return ErrorTwiML()
	}

	return LateTwiML(LateMessage(student.Name, student.Gender, student.ParentName(target)))
}

// HandleKeypress records the parent's decision and returns the spoken
// acknowledgment. It never fails: whatever goes wrong internally, the live
// call still receives a valid voice document.
func (o *CallOrchestrator) HandleKeypress(ctx context.Context, rowIndex int, target models.CallTarget, callSID, digit string) string {
	var response, ack string
	switch digit {
	case "1":
		response, ack = models.ResponseGranted, ackGrantedLine
	case "2":
		response, ack = models.ResponseDenied, ackDeniedLine
	default:
		// Includes empty digits on gather timeout. No log mutation.
		log.Printf("IVR: Non-decision digit '%s' for row %d (%s). Leaving log untouched.", digit, rowIndex, target)
		return AckTwiML(ackInvalidLine)
	}

	studentName := ""
	if student, err := o.Roster.GetStudent(ctx, rowIndex); err != nil {
		log.Printf("IVR: Roster lookup for row %d failed while recording response: %v", rowIndex, err)
	} else {
		studentName = student.Name
	}

	if matched, err := o.Log.ResolveResponse(ctx, studentName, callSID, response); err != nil {
		log.Printf("IVR: Failed to record '%s' response for row %d: %v", response, rowIndex, err)
	} else if !matched {
		log.Printf("IVR: No pending permission log entry matched row %d (%s).", rowIndex, target)
	}

	return AckTwiML(ack)
}

func (o *CallOrchestrator) permissionCallbackURL(rowIndex int, target models.CallTarget) string {
	return fmt.Sprintf("%s/twiml/permission/%d/%s", strings.TrimRight(o.Config.BaseURL, "/"), rowIndex, target)
}

func (o *CallOrchestrator) permissionResponseURL(rowIndex int, target models.CallTarget) string {
	return fmt.Sprintf("/twiml/permission/response/%d/%s", rowIndex, target)
}
