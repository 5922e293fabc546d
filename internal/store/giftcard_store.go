package store

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/utils"
)

// giftCardCodeLength is the random part after the "GC" prefix
const giftCardCodeLength = 12

// giftCardValidity is how long a freshly issued card stays redeemable
const giftCardValidity = 365 * 24 * time.Hour

// GiftCardStore is the stored-value side of the ledger. Balance draw-downs
// happen under the lock so a card can never go negative.
type GiftCardStore struct {
	mu    sync.Mutex
	cards map[string]*models.GiftCard
}

// NewGiftCardStore creates an empty gift card store
func NewGiftCardStore() *GiftCardStore {
	return &GiftCardStore{cards: make(map[string]*models.GiftCard)}
}

// Generate issues a new card. The recipient defaults to the purchaser.
func (s *GiftCardStore) Generate(amount float64, purchaserEmail, recipientEmail, message string) (models.GiftCardIssue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, err := s.uniqueCode()
	if err != nil {
		return models.GiftCardIssue{}, err
	}

	if recipientEmail == "" {
		recipientEmail = purchaserEmail
	}
	now := time.Now()
	card := &models.GiftCard{
		Code:           code,
		OriginalAmount: amount,
		CurrentBalance: amount,
		PurchaserEmail: purchaserEmail,
		RecipientEmail: recipientEmail,
		Message:        message,
		IsActive:       true,
		PurchaseDate:   now,
		ExpiryDate:     now.Add(giftCardValidity),
	}
	s.cards[code] = card

	return models.GiftCardIssue{
		Code:           code,
		Amount:         amount,
		RecipientEmail: recipientEmail,
		ExpiryDate:     card.ExpiryDate,
	}, nil
}

// uniqueCode draws "GC" + 12 random alphanumerics until it misses the
// existing set; the keyspace makes more than a couple of draws unheard of
func (s *GiftCardStore) uniqueCode() (string, error) {
	for i := 0; i < 10; i++ {
		suffix, err := utils.RandomAlphanumeric(giftCardCodeLength)
		if err != nil {
			return "", err
		}
		code := "GC" + suffix
		if _, taken := s.cards[code]; !taken {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// Validate reports whether the card can currently be redeemed
func (s *GiftCardStore) Validate(code string) (models.GiftCardBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked(code)
}

func (s *GiftCardStore) validateLocked(code string) (models.GiftCardBalance, error) {
	card, ok := s.cards[strings.ToUpper(code)]
	if !ok {
		return models.GiftCardBalance{}, &models.PromoError{Reason: "Invalid gift card code"}
	}
	if err := card.Redeemable(time.Now()); err != nil {
		return models.GiftCardBalance{}, err
	}
	return models.GiftCardBalance{
		Balance:        card.CurrentBalance,
		OriginalAmount: card.OriginalAmount,
		ExpiryDate:     card.ExpiryDate,
	}, nil
}

// Apply draws down the card against a booking. When the balance cannot cover
// the full amount the remainder of the balance is applied instead; the
// balance floors at zero
func (s *GiftCardStore) Apply(code, bookingID string, amount float64) (models.GiftCardApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.validateLocked(code); err != nil {
		return models.GiftCardApplication{}, err
	}

	card := s.cards[strings.ToUpper(code)]
	applied := math.Min(amount, card.CurrentBalance)
	card.CurrentBalance -= applied

	usage := models.GiftCardUsage{
		BookingID:        bookingID,
		AmountUsed:       applied,
		UsedAt:           time.Now(),
		RemainingBalance: card.CurrentBalance,
	}
	card.UsageHistory = append(card.UsageHistory, usage)

	return models.GiftCardApplication{
		AmountApplied:    applied,
		RemainingBalance: card.CurrentBalance,
		Usage:            usage,
	}, nil
}

// Balance returns the live balance of a redeemable card
func (s *GiftCardStore) Balance(code string) (models.GiftCardBalance, error) {
	return s.Validate(code)
}

// DeactivateExpired turns off active cards past their expiry date, returning
// how many were touched
func (s *GiftCardStore) DeactivateExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, card := range s.cards {
		if card.IsActive && now.After(card.ExpiryDate) {
			card.IsActive = false
			count++
		}
	}
	return count
}
