package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGiftCard(t *testing.T) {
	s := NewGiftCardStore()

	issue, err := s.Generate(250, "buyer@example.com", "friend@example.com", "happy travels")
	require.NoError(t, err)

	assert.Regexp(t, `^GC[A-Z0-9]{12}$`, issue.Code)
	assert.Equal(t, 250.0, issue.Amount)
	assert.Equal(t, "friend@example.com", issue.RecipientEmail)
	assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), issue.ExpiryDate, time.Minute)
}

func TestGenerateGiftCard_RecipientDefaultsToPurchaser(t *testing.T) {
	s := NewGiftCardStore()

	issue, err := s.Generate(100, "buyer@example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", issue.RecipientEmail)
}

func TestValidateGiftCard(t *testing.T) {
	s := NewGiftCardStore()
	issue, err := s.Generate(100, "buyer@example.com", "", "")
	require.NoError(t, err)

	balance, err := s.Validate(issue.Code)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance.Balance)
	assert.Equal(t, 100.0, balance.OriginalAmount)
}

func TestValidateGiftCard_UnknownCode(t *testing.T) {
	s := NewGiftCardStore()

	_, err := s.Validate("GCDOESNOTEXIST")
	assert.EqualError(t, err, "Invalid gift card code")
}

func TestApplyGiftCard(t *testing.T) {
	s := NewGiftCardStore()
	issue, err := s.Generate(200, "buyer@example.com", "", "")
	require.NoError(t, err)

	result, err := s.Apply(issue.Code, "booking-1", 75)
	require.NoError(t, err)
	assert.Equal(t, 75.0, result.AmountApplied)
	assert.Equal(t, 125.0, result.RemainingBalance)
	assert.Equal(t, "booking-1", result.Usage.BookingID)

	balance, err := s.Balance(issue.Code)
	require.NoError(t, err)
	assert.Equal(t, 125.0, balance.Balance)
}

func TestApplyGiftCard_PartialCoverage(t *testing.T) {
	s := NewGiftCardStore()
	issue, err := s.Generate(50, "buyer@example.com", "", "")
	require.NoError(t, err)

	// The booking costs more than the card holds; only the balance applies.
	result, err := s.Apply(issue.Code, "booking-1", 300)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.AmountApplied)
	assert.Equal(t, 0.0, result.RemainingBalance)

	// A drained card cannot be used again.
	_, err = s.Apply(issue.Code, "booking-2", 10)
	assert.EqualError(t, err, "Gift card has no remaining balance")
}

func TestApplyGiftCard_CaseInsensitiveCode(t *testing.T) {
	s := NewGiftCardStore()
	issue, err := s.Generate(100, "buyer@example.com", "", "")
	require.NoError(t, err)

	result, err := s.Apply(strings.ToLower(issue.Code), "booking-1", 40)
	require.NoError(t, err)
	assert.Equal(t, 40.0, result.AmountApplied)
}

func TestGiftCardDeactivateExpired(t *testing.T) {
	s := NewGiftCardStore()
	issue, err := s.Generate(100, "buyer@example.com", "", "")
	require.NoError(t, err)

	assert.Equal(t, 0, s.DeactivateExpired(time.Now()))
	assert.Equal(t, 1, s.DeactivateExpired(time.Now().Add(366*24*time.Hour)))

	_, err = s.Validate(issue.Code)
	assert.EqualError(t, err, "Gift card is not active")
}
