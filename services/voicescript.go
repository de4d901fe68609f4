package services

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go/twiml"
)

// Calls are spoken in transliterated Telugu through Polly's Aditi voice.
const (
	scriptVoice    = "Polly.Aditi"
	scriptLanguage = "hi-IN"

	gatherPrompt     = "Anumati ivvadaniki okati nokkandi. Voddu anadaniki rendu nokkandi."
	noResponseLine   = "Response pondaledu. Dhanyavadamulu!"
	ackGrantedLine   = "Anumati ivvabadindi. Dhanyavadamulu!"
	ackDeniedLine    = "Anumati nirakarinchbadindi. Dhanyavadamulu!"
	ackInvalidLine   = "Invalid input. Dhanyavadamulu!"
	genericErrorLine = "Error occurred"
)

// fallbackTwiML is returned when even TwiML serialization fails. The provider
// must always receive a valid voice document or the live call hangs.
const fallbackTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response><Say>` + genericErrorLine + `</Say></Response>`

// ChildTerm maps the roster's single-letter gender to the spoken term for the
// parent's child. 'M' in any case means son; every other value means daughter.
func ChildTerm(gender string) string {
	if strings.EqualFold(strings.TrimSpace(gender), "M") {
		return "mee abbai"
	}
	return "mee ammai"
}

// LateMessage builds the one-way late-arrival notice.
func LateMessage(studentName, gender, parentName string) string {
	return fmt.Sprintf(
		"Namaskaram %s garu! Memu MVR Engineering College nunchi matladutunnamu. %s %s college ki late ga vachinanduku absent veyabadutundi. Dhanyavadamulu!",
		parentName, ChildTerm(gender), studentName,
	)
}

// PermissionMessage builds the opening line of the two-way permission request.
func PermissionMessage(studentName, gender, parentName string) string {
	return fmt.Sprintf(
		"Namaskaram %s garu! Memu MVR Engineering College nunchi matladutunnamu. %s %s hostel nunchi bayataki velladaniki anumati adugutunnaru.",
		parentName, ChildTerm(gender), studentName,
	)
}

func say(message string) *twiml.VoiceSay {
	return &twiml.VoiceSay{
		Message:  message,
		Voice:    scriptVoice,
		Language: scriptLanguage,
	}
}

// LateTwiML renders the late-notice voice document. Message text is escaped by
// the TwiML serializer, so names from the roster cannot break the markup.
func LateTwiML(message string) string {
	doc, err := twiml.Voice([]twiml.Element{say(message)})
	if err != nil {
		return fallbackTwiML
	}
	return doc
}

// PermissionTwiML renders the permission request: the announcement, a one-digit
// gather posting to actionURL, and a no-response line reached on timeout.
func PermissionTwiML(message, actionURL string) string {
	gather := &twiml.VoiceGather{
		NumDigits:     "1",
		Action:        actionURL,
		Method:        "POST",
		InnerElements: []twiml.Element{say(gatherPrompt)},
	}

	doc, err := twiml.Voice([]twiml.Element{say(message), gather, say(noResponseLine)})
	if err != nil {
		return fallbackTwiML
	}
	return doc
}

// AckTwiML renders a single spoken acknowledgment line.
func AckTwiML(message string) string {
	doc, err := twiml.Voice([]twiml.Element{say(message)})
	if err != nil {
		return fallbackTwiML
	}
	return doc
}

// ErrorTwiML is the generic document served when script generation itself
// failed; the call still gets a valid response.
func ErrorTwiML() string {
	doc, err := twiml.Voice([]twiml.Element{&twiml.VoiceSay{Message: genericErrorLine}})
	if err != nil {
		return fallbackTwiML
	}
	return doc
}
