package services

import "strings"

// NormalizePhone strips spaces and hyphens and forces an international prefix.
// Numbers already starting with '+' pass through after stripping. Otherwise the
// last 10 digits get the configured country code prepended. This is the
// best-effort heuristic the roster data requires, not E.164 validation: inputs
// shorter than 10 digits keep whatever is left and will fail at the provider.
func NormalizePhone(raw, countryCode string) string {
	phone := strings.ReplaceAll(raw, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if len(phone) > 10 {
		phone = phone[len(phone)-10:]
	}
	return countryCode + phone
}
