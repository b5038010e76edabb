// utils/validation.go
package utils

import (
	"strings"
	"unicode"
)

// PhoneDigits strips every non-digit character from a phone number.
// Formatting punctuation (spaces, dashes, parentheses, +) is ignored,
// never rejected.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks that a phone number carries at least 10 digits
// once formatting characters are stripped.
func ValidatePhone(phone string) bool {
	return len(PhoneDigits(phone)) >= 10
}
