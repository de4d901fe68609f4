package models

import "fmt"

type CallType string

const (
	CallTypeLate       CallType = "late"
	CallTypePermission CallType = "permission"
)

type CallTarget string

const (
	TargetFather CallTarget = "father"
	TargetMother CallTarget = "mother"
)

// ParseCallTarget validates a dashboard-supplied target string.
func ParseCallTarget(s string) (CallTarget, error) {
	switch CallTarget(s) {
	case TargetFather, TargetMother:
		return CallTarget(s), nil
	default:
		return "", fmt.Errorf("invalid call target '%s': must be 'father' or 'mother'", s)
	}
}

// Permission call outcomes as written to the Response column.
const (
	ResponseGranted = "Granted"
	ResponseDenied  = "Denied"
)

const CallLogTimestampLayout = "2006-01-02 15:04:05"

// CallRecord is one row of the CallLogs sheet. Append-only; Response is the
// single mutable field, set at most once for permission calls.
type CallRecord struct {
	Timestamp   string     `json:"timestamp"`
	StudentName string     `json:"student_name"`
	CallType    CallType   `json:"call_type"`
	Target      CallTarget `json:"target"`
	Phone       string     `json:"phone"`
	CallSID     string     `json:"call_sid"`
	Response    string     `json:"response"`
}

// Row renders the record in CallLogs column order.
func (r CallRecord) Row() []interface{} {
	return []interface{}{
		r.Timestamp, r.StudentName, string(r.CallType),
		string(r.Target), r.Phone, r.CallSID, r.Response,
	}
}

// CallResult is returned to the dashboard after a call has been placed.
type CallResult struct {
	Success bool   `json:"success"`
	CallSID string `json:"call_sid"`
}
