package models

import (
	"fmt"
	"math"
	"time"
)

// ============================================================================
// PROMO CODES
// ============================================================================

// DiscountType represents how a promo code discounts the fare
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoError reports why a promo code could not be validated or applied.
// The message is surfaced to the client as-is.
type PromoError struct {
	Reason string
}

func (e *PromoError) Error() string {
	return e.Reason
}

// PromoCode is a discount voucher with validity and usage constraints
type PromoCode struct {
	Code              string       `json:"code"`
	Type              DiscountType `json:"type"`
	Value             float64      `json:"value"`
	MinAmount         float64      `json:"minAmount"`
	MaxDiscount       float64      `json:"maxDiscount"`
	Description       string       `json:"description"`
	ValidFrom         time.Time    `json:"validFrom"`
	ValidUntil        time.Time    `json:"validUntil"`
	UsageLimit        int          `json:"usageLimit"`
	UsedCount         int          `json:"usedCount"`
	IsActive          bool         `json:"isActive"`
	ApplicableClasses []string     `json:"applicableClasses"`
	ApplicableRoutes  []string     `json:"applicableRoutes"`
	CreatedAt         time.Time    `json:"createdAt,omitempty"`
	DeactivatedAt     *time.Time   `json:"deactivatedAt,omitempty"`
}

// PromoContext carries the booking details a promo code is checked against.
// Zero-valued fields skip their check.
type PromoContext struct {
	TotalAmount float64 `json:"totalAmount"`
	TravelClass string  `json:"travelClass,omitempty"`
	Route       string  `json:"route,omitempty"` // "JFK-LAX"
}

// ValidateFor runs the eligibility checks in order: active, validity window,
// usage limit, minimum amount, travel class, route. The code-exists check is
// the caller's, since only the ledger knows the code set.
func (p *PromoCode) ValidateFor(ctx PromoContext, now time.Time) error {
	if !p.IsActive {
		return &PromoError{Reason: "Promo code is not active"}
	}
	if now.Before(p.ValidFrom) || now.After(p.ValidUntil) {
		return &PromoError{Reason: "Promo code has expired or is not yet valid"}
	}
	if p.UsedCount >= p.UsageLimit {
		return &PromoError{Reason: "Promo code usage limit exceeded"}
	}
	if ctx.TotalAmount > 0 && ctx.TotalAmount < p.MinAmount {
		return &PromoError{Reason: fmt.Sprintf("Minimum amount of $%g required for this promo code", p.MinAmount)}
	}
	if ctx.TravelClass != "" && !contains(p.ApplicableClasses, "all") && !contains(p.ApplicableClasses, ctx.TravelClass) {
		return &PromoError{Reason: fmt.Sprintf("Promo code not applicable for %s class", ctx.TravelClass)}
	}
	if ctx.Route != "" && !contains(p.ApplicableRoutes, "all") && !contains(p.ApplicableRoutes, ctx.Route) {
		return &PromoError{Reason: "Promo code not applicable for this route"}
	}
	return nil
}

// DiscountFor computes the discount against an amount, capped at MaxDiscount
// and rounded to cents
func (p *PromoCode) DiscountFor(amount float64) float64 {
	var discount float64
	switch p.Type {
	case DiscountPercentage:
		discount = math.Min(amount*p.Value/100, p.MaxDiscount)
	case DiscountFixed:
		discount = math.Min(p.Value, p.MaxDiscount)
	}
	return math.Round(discount*100) / 100
}

// IsExpired reports whether the validity window has passed
func (p *PromoCode) IsExpired(now time.Time) bool {
	return now.After(p.ValidUntil)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// PromoSummary is the public shape of a promo code returned on validation
type PromoSummary struct {
	Code            string       `json:"code"`
	Description     string       `json:"description"`
	Type            DiscountType `json:"type"`
	Value           float64      `json:"value"`
	MinAmount       float64      `json:"minAmount"`
	MaxDiscount     float64      `json:"maxDiscount"`
	AppliedDiscount float64      `json:"appliedDiscount,omitempty"`
}

// Summary builds the public view of the promo code
func (p *PromoCode) Summary() PromoSummary {
	return PromoSummary{
		Code:        p.Code,
		Description: p.Description,
		Type:        p.Type,
		Value:       p.Value,
		MinAmount:   p.MinAmount,
		MaxDiscount: p.MaxDiscount,
	}
}

// PromoUsage is one recorded application of a promo code to a booking
type PromoUsage struct {
	Code           string    `json:"code"`
	BookingID      string    `json:"bookingId"`
	Discount       float64   `json:"discount"`
	OriginalAmount float64   `json:"originalAmount"`
	FinalAmount    float64   `json:"finalAmount"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// PromoStats reports consumption of a promo code
type PromoStats struct {
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	UsedCount       int       `json:"usedCount"`
	UsageLimit      int       `json:"usageLimit"`
	RemainingUses   int       `json:"remainingUses"`
	UsagePercentage float64   `json:"usagePercentage"`
	IsActive        bool      `json:"isActive"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidUntil      time.Time `json:"validUntil"`
}

// ActivePromo is the listing shape for currently redeemable codes
type ActivePromo struct {
	Code          string       `json:"code"`
	Description   string       `json:"description"`
	Type          DiscountType `json:"type"`
	Value         float64      `json:"value"`
	MinAmount     float64      `json:"minAmount"`
	MaxDiscount   float64      `json:"maxDiscount"`
	ValidUntil    time.Time    `json:"validUntil"`
	RemainingUses int          `json:"remainingUses"`
}
