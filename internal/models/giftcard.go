package models

import "time"

// ============================================================================
// GIFT CARDS
// ============================================================================

// GiftCard is a stored-value voucher with a draw-down balance
type GiftCard struct {
	Code           string          `json:"code"`
	OriginalAmount float64         `json:"originalAmount"`
	CurrentBalance float64         `json:"currentBalance"`
	PurchaserEmail string          `json:"purchaserEmail"`
	RecipientEmail string          `json:"recipientEmail"`
	Message        string          `json:"message,omitempty"`
	IsActive       bool            `json:"isActive"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
	ExpiryDate     time.Time       `json:"expiryDate"`
	UsageHistory   []GiftCardUsage `json:"usageHistory,omitempty"`
}

// GiftCardUsage is one redemption against a booking
type GiftCardUsage struct {
	BookingID        string    `json:"bookingId"`
	AmountUsed       float64   `json:"amountUsed"`
	UsedAt           time.Time `json:"usedAt"`
	RemainingBalance float64   `json:"remainingBalance"`
}

// Redeemable reports why the card cannot be used, nil when it can
func (g *GiftCard) Redeemable(now time.Time) error {
	if !g.IsActive {
		return &PromoError{Reason: "Gift card is not active"}
	}
	if now.After(g.ExpiryDate) {
		return &PromoError{Reason: "Gift card has expired"}
	}
	if g.CurrentBalance <= 0 {
		return &PromoError{Reason: "Gift card has no remaining balance"}
	}
	return nil
}

// GiftCardIssue is returned when a card is generated
type GiftCardIssue struct {
	Code           string    `json:"code"`
	Amount         float64   `json:"amount"`
	RecipientEmail string    `json:"recipientEmail"`
	ExpiryDate     time.Time `json:"expiryDate"`
}

// GiftCardApplication is the result of drawing down a card
type GiftCardApplication struct {
	AmountApplied    float64       `json:"amountApplied"`
	RemainingBalance float64       `json:"remainingBalance"`
	Usage            GiftCardUsage `json:"usage"`
}

// GiftCardBalance reports the current state of a card
type GiftCardBalance struct {
	Balance        float64   `json:"balance"`
	OriginalAmount float64   `json:"originalAmount"`
	ExpiryDate     time.Time `json:"expiryDate"`
}
