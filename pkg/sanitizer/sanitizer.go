// Package sanitizer normalizes free-text input before validation and
// persistence. Sanitization never rejects input, it only canonicalizes
// it; rejection is the validator's job.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims surrounding whitespace and collapses interior
// whitespace runs to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeCompanyName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeCity(city string) string {
	return TrimAndNormalize(city)
}

func NormalizeMessage(message string) string {
	return TrimAndNormalize(message)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
