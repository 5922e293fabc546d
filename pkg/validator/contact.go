package validator

import (
	"regexp"
	"strings"
)

// emailRegex is intentionally loose: local@domain.tld with no spaces
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address looks like a deliverable email
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// SanitizePhone removes spaces, dashes, parentheses, dots, and a leading plus
func SanitizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "", ".", "")
	return replacer.Replace(phone)
}

var digitsRegex = regexp.MustCompile(`^\d+$`)

// IsValidPhone reports whether the number sanitises to at least 10 digits
func IsValidPhone(phone string) bool {
	sanitized := SanitizePhone(phone)
	return len(sanitized) >= 10 && digitsRegex.MatchString(sanitized)
}
