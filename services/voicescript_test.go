package services

import (
	"strings"
	"testing"
)

func TestChildTerm(t *testing.T) {
	tests := []struct {
		gender string
		want   string
	}{
		{"M", "mee abbai"},
		{"m", "mee abbai"},
		{" M ", "mee abbai"},
		{"F", "mee ammai"},
		{"f", "mee ammai"},
		{"", "mee ammai"},
		{"X", "mee ammai"},
	}

	for _, tt := range tests {
		if got := ChildTerm(tt.gender); got != tt.want {
			t.Errorf("ChildTerm(%q) = %q, want %q", tt.gender, got, tt.want)
		}
	}
}

func TestLateMessage(t *testing.T) {
	msg := LateMessage("Asha", "F", "Sita")

	for _, want := range []string{"Asha", "Sita", "mee ammai", "absent"} {
		if !strings.Contains(msg, want) {
			t.Errorf("late message missing %q: %s", want, msg)
		}
	}

	male := LateMessage("Ravi Kumar", "M", "Ravi")
	if !strings.Contains(male, "mee abbai") {
		t.Errorf("late message for gender M missing male term: %s", male)
	}
}

func TestPermissionMessage(t *testing.T) {
	msg := PermissionMessage("Asha", "F", "Sita")

	for _, want := range []string{"Asha", "Sita", "mee ammai", "anumati"} {
		if !strings.Contains(msg, want) {
			t.Errorf("permission message missing %q: %s", want, msg)
		}
	}
}

func TestLateTwiMLEscapesMarkup(t *testing.T) {
	doc := LateTwiML(LateMessage("A & B <Test>", "M", "O'Brien & Sons"))

	if strings.Contains(doc, "& B") || strings.Contains(doc, "<Test>") {
		t.Errorf("TwiML contains unescaped markup characters: %s", doc)
	}
	if !strings.Contains(doc, "&amp;") {
		t.Errorf("TwiML did not escape ampersand: %s", doc)
	}
	if !strings.Contains(doc, "<Say") || !strings.Contains(doc, "<Response>") {
		t.Errorf("TwiML missing expected verbs: %s", doc)
	}
}

func TestPermissionTwiMLStructure(t *testing.T) {
	doc := PermissionTwiML(PermissionMessage("Asha", "F", "Sita"), "/twiml/permission/response/5/mother")

	for _, want := range []string{
		"<Gather",
		"/twiml/permission/response/5/mother",
		"Anumati ivvadaniki okati nokkandi",
		"Response pondaledu",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("permission TwiML missing %q: %s", want, doc)
		}
	}
}

func TestAckTwiMLAlwaysValid(t *testing.T) {
	for _, msg := range []string{ackGrantedLine, ackDeniedLine, ackInvalidLine, ""} {
		doc := AckTwiML(msg)
		if !strings.Contains(doc, "<Response>") {
			t.Errorf("ack TwiML for %q is not a valid voice document: %s", msg, doc)
		}
	}

	if !strings.Contains(ErrorTwiML(), "<Response>") {
		t.Errorf("error TwiML is not a valid voice document: %s", ErrorTwiML())
	}
}
