package store

import (
	"strings"
	"sync"
	"time"

	"github.com/skylux/booking-backend/internal/models"
)

// PromoStore is the promotion ledger: promo codes, their usage counters, and
// the per-booking usage history. Validation and redemption of a code happen
// under one lock so a code can never be consumed past its usage limit.
type PromoStore struct {
	mu    sync.Mutex
	codes map[string]*models.PromoCode
	usage map[string][]models.PromoUsage // booking id -> applications
}

// NewPromoStore creates a ledger seeded with the given codes
func NewPromoStore(seed []*models.PromoCode) *PromoStore {
	s := &PromoStore{
		codes: make(map[string]*models.PromoCode, len(seed)),
		usage: make(map[string][]models.PromoUsage),
	}
	for _, p := range seed {
		s.codes[p.Code] = p
	}
	return s
}

// SeedPromoCodes returns the standing promotional campaign, valid for the
// whole given year
func SeedPromoCodes(year int) []*models.PromoCode {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return []*models.PromoCode{
		{
			Code: "WELCOME10", Type: models.DiscountPercentage, Value: 10,
			MinAmount: 100, MaxDiscount: 200, Description: "Welcome 10% off",
			ValidFrom: from, ValidUntil: until, UsageLimit: 1000, IsActive: true,
			ApplicableClasses: []string{"economy", "premium", "business", "first"},
			ApplicableRoutes:  []string{"all"},
		},
		{
			Code: "SAVE50", Type: models.DiscountFixed, Value: 50,
			MinAmount: 200, MaxDiscount: 50, Description: "Save $50",
			ValidFrom: from, ValidUntil: until, UsageLimit: 500, IsActive: true,
			ApplicableClasses: []string{"economy", "premium"},
			ApplicableRoutes:  []string{"all"},
		},
		{
			Code: "LUXURY20", Type: models.DiscountPercentage, Value: 20,
			MinAmount: 1000, MaxDiscount: 500, Description: "Luxury 20% off",
			ValidFrom: from, ValidUntil: until, UsageLimit: 100, IsActive: true,
			ApplicableClasses: []string{"business", "first"},
			ApplicableRoutes:  []string{"all"},
		},
		{
			Code: "FIRSTCLASS", Type: models.DiscountPercentage, Value: 15,
			MinAmount: 2000, MaxDiscount: 1000, Description: "First Class 15% off",
			ValidFrom: from, ValidUntil: until, UsageLimit: 50, IsActive: true,
			ApplicableClasses: []string{"first"},
			ApplicableRoutes:  []string{"all"},
		},
	}
}

// Validate checks a code against booking details without consuming a use.
// The returned summary is safe to hand to clients.
func (s *PromoStore) Validate(code string, ctx models.PromoContext) (models.PromoSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.codes[strings.ToUpper(code)]
	if !ok {
		return models.PromoSummary{}, &models.PromoError{Reason: "Invalid promo code"}
	}
	if err := promo.ValidateFor(ctx, time.Now()); err != nil {
		return models.PromoSummary{}, err
	}
	return promo.Summary(), nil
}

// Discount validates and computes the discount for an amount without
// consuming a use. Quotes use this; only Apply moves the usage counter.
func (s *PromoStore) Discount(code string, amount float64, ctx models.PromoContext) (float64, models.PromoSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.codes[strings.ToUpper(code)]
	if !ok {
		return 0, models.PromoSummary{}, &models.PromoError{Reason: "Invalid promo code"}
	}
	ctx.TotalAmount = amount
	if err := promo.ValidateFor(ctx, time.Now()); err != nil {
		return 0, models.PromoSummary{}, err
	}

	discount := promo.DiscountFor(amount)
	summary := promo.Summary()
	summary.AppliedDiscount = discount
	return discount, summary, nil
}

// Apply validates the code, computes the discount, increments the usage
// counter, and records the application — all as one atomic step.
func (s *PromoStore) Apply(code, bookingID string, amount float64) (models.PromoUsage, models.PromoSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.codes[strings.ToUpper(code)]
	if !ok {
		return models.PromoUsage{}, models.PromoSummary{}, &models.PromoError{Reason: "Invalid promo code"}
	}
	if err := promo.ValidateFor(models.PromoContext{TotalAmount: amount}, time.Now()); err != nil {
		return models.PromoUsage{}, models.PromoSummary{}, err
	}

	discount := promo.DiscountFor(amount)
	promo.UsedCount++

	usage := models.PromoUsage{
		Code:           promo.Code,
		BookingID:      bookingID,
		Discount:       discount,
		OriginalAmount: amount,
		FinalAmount:    amount - discount,
		AppliedAt:      time.Now(),
	}
	s.usage[bookingID] = append(s.usage[bookingID], usage)

	summary := promo.Summary()
	summary.AppliedDiscount = discount
	return usage, summary, nil
}

// Create registers a new promo code, rejecting duplicates
func (s *PromoStore) Create(promo *models.PromoCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.codes[promo.Code]; exists {
		return ErrPromoExists
	}
	s.codes[promo.Code] = promo
	return nil
}

// Deactivate turns a code off; it stays in the ledger for stats
func (s *PromoStore) Deactivate(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.codes[strings.ToUpper(code)]
	if !ok {
		return ErrPromoNotFound
	}
	now := time.Now()
	promo.IsActive = false
	promo.DeactivatedAt = &now
	return nil
}

// Stats reports consumption of one code
func (s *PromoStore) Stats(code string) (models.PromoStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.codes[strings.ToUpper(code)]
	if !ok {
		return models.PromoStats{}, ErrPromoNotFound
	}
	return models.PromoStats{
		Code:            promo.Code,
		Description:     promo.Description,
		UsedCount:       promo.UsedCount,
		UsageLimit:      promo.UsageLimit,
		RemainingUses:   promo.UsageLimit - promo.UsedCount,
		UsagePercentage: float64(promo.UsedCount) / float64(promo.UsageLimit) * 100,
		IsActive:        promo.IsActive,
		ValidFrom:       promo.ValidFrom,
		ValidUntil:      promo.ValidUntil,
	}, nil
}

// ActiveCodes lists every code currently redeemable
func (s *PromoStore) ActiveCodes() []models.ActivePromo {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	active := []models.ActivePromo{}
	for _, promo := range s.codes {
		if !promo.IsActive || now.Before(promo.ValidFrom) || now.After(promo.ValidUntil) {
			continue
		}
		if promo.UsedCount >= promo.UsageLimit {
			continue
		}
		active = append(active, models.ActivePromo{
			Code:          promo.Code,
			Description:   promo.Description,
			Type:          promo.Type,
			Value:         promo.Value,
			MinAmount:     promo.MinAmount,
			MaxDiscount:   promo.MaxDiscount,
			ValidUntil:    promo.ValidUntil,
			RemainingUses: promo.UsageLimit - promo.UsedCount,
		})
	}
	return active
}

// UsageHistory returns every promo application recorded for a booking
func (s *PromoStore) UsageHistory(bookingID string) []models.PromoUsage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.usage[bookingID]
	out := make([]models.PromoUsage, len(history))
	copy(out, history)
	return out
}

// DeactivateExpired turns off every active code whose validity window has
// passed, returning how many were touched. The maintenance job calls this.
func (s *PromoStore) DeactivateExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, promo := range s.codes {
		if promo.IsActive && promo.IsExpired(now) {
			at := now
			promo.IsActive = false
			promo.DeactivatedAt = &at
			count++
		}
	}
	return count
}
