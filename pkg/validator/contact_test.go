package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid email", "john.doe@example.com", true},
		{"valid with plus", "john+tag@example.co.uk", true},
		{"missing at", "john.example.com", false},
		{"missing domain", "john@", false},
		{"missing tld", "john@example", false},
		{"contains space", "john doe@example.com", false},
		{"empty", "", false},
		{"surrounding whitespace", "  john@example.com  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"plain 10 digits", "2125550123", true},
		{"formatted", "(212) 555-0123", true},
		{"international", "+1 212 555 0123", true},
		{"too short", "555-0123", false},
		{"letters", "212555012a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "12125550123", SanitizePhone("+1 (212) 555-0123"))
	assert.Equal(t, "2125550123", SanitizePhone("212.555.0123"))
}
