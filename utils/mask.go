package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ============================================================================
// SAFE LOGGING
// Masks personal and financial data before it reaches the logs.
// ============================================================================

var (
	emailRegex  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	amountRegex = regexp.MustCompile(`\b\d+([.,]\d{1,2})?\s*(R\$|€|EUR|USD|\$)\b`)
)

// MaskString masks emails and currency amounts in a string.
func MaskString(input string) string {
	result := emailRegex.ReplaceAllString(input, "***@***.***")
	result = amountRegex.ReplaceAllString(result, "***")
	return result
}

// MaskEmail keeps the first character and the domain TLD.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	return fmt.Sprintf("%c***@***", email[0])
}

// MaskToken keeps the first 6 characters of an opaque credential.
func MaskToken(token string) string {
	if len(token) <= 6 {
		return "***"
	}
	return token[:6] + "..."
}
