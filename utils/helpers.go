package utils

// MaskSecret keeps the first visible characters of a credential and replaces
// the rest with an ellipsis, for debug output.
func MaskSecret(s string, visible int) string {
	if s == "" {
		return "Not set"
	}
	if len(s) <= visible {
		return s
	}
	return s[:visible] + "..."
}

// ValueOrNotSet substitutes a placeholder for empty configuration values.
func ValueOrNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}
