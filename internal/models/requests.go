package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/skylux/booking-backend/pkg/validator"
)

// ============================================================================
// VALIDATION ERROR
// ============================================================================

// ValidationError aggregates every field problem found in a request so the
// client sees the full list in one round trip
type ValidationError struct {
	Errors []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, ", ")
}

// ============================================================================
// SEARCH REQUESTS
// ============================================================================

// TripType categorises a search
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripMultiCity TripType = "multi-city"
)

// SearchRequest is a one-way or round-trip flight search
type SearchRequest struct {
	Origin        string      `json:"origin" binding:"required"`
	Destination   string      `json:"destination" binding:"required"`
	DepartureDate string      `json:"departureDate" binding:"required"`
	ReturnDate    string      `json:"returnDate,omitempty"`
	Passengers    int         `json:"passengers" binding:"required"`
	TravelClass   TravelClass `json:"travelClass" binding:"required"`
	TripType      TripType    `json:"tripType" binding:"required"`
}

// Validate collects every problem with the search parameters
func (r *SearchRequest) Validate() error {
	var errs []string

	if len(r.Origin) < 3 {
		errs = append(errs, "Valid origin airport code is required")
	}
	if len(r.Destination) < 3 {
		errs = append(errs, "Valid destination airport code is required")
	}
	if r.Origin == r.Destination {
		errs = append(errs, "Origin and destination cannot be the same")
	}
	if r.DepartureDate == "" {
		errs = append(errs, "Departure date is required")
	}
	if r.TripType == TripRoundTrip && r.ReturnDate != "" && r.ReturnDate <= r.DepartureDate {
		errs = append(errs, "Return date must be after departure date")
	}
	if r.Passengers < 1 || r.Passengers > 9 {
		errs = append(errs, "Number of passengers must be between 1 and 9")
	}
	if !r.TravelClass.IsValid() {
		errs = append(errs, "Invalid travel class")
	}
	switch r.TripType {
	case TripOneWay, TripRoundTrip, TripMultiCity:
	default:
		errs = append(errs, "Invalid trip type")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// MultiCitySegment is one leg of a multi-city itinerary request
type MultiCitySegment struct {
	Origin      string      `json:"origin" binding:"required"`
	Destination string      `json:"destination" binding:"required"`
	Date        string      `json:"date" binding:"required"`
	Passengers  int         `json:"passengers" binding:"required"`
	TravelClass TravelClass `json:"travelClass" binding:"required"`
}

// MultiCityRequest asks for a full multi-city itinerary
type MultiCityRequest struct {
	Segments []MultiCitySegment `json:"segments" binding:"required"`
}

// Validate checks segment count, per-segment fields, date ordering, and that
// each leg departs from where the previous one landed
func (r *MultiCityRequest) Validate(now time.Time) error {
	var errs []string

	if len(r.Segments) < 2 {
		return &ValidationError{Errors: []string{"At least 2 segments are required for multi-city travel"}}
	}
	if len(r.Segments) > 6 {
		errs = append(errs, "Maximum 6 segments allowed for multi-city travel")
	}

	today := now.Format("2006-01-02")
	for i, seg := range r.Segments {
		n := i + 1
		if len(seg.Origin) < 3 {
			errs = append(errs, fmt.Sprintf("Segment %d: Valid origin airport code is required", n))
		}
		if len(seg.Destination) < 3 {
			errs = append(errs, fmt.Sprintf("Segment %d: Valid destination airport code is required", n))
		}
		if seg.Origin == seg.Destination {
			errs = append(errs, fmt.Sprintf("Segment %d: Origin and destination cannot be the same", n))
		}
		if seg.Date == "" {
			errs = append(errs, fmt.Sprintf("Segment %d: Date is required", n))
		} else {
			if seg.Date < today {
				errs = append(errs, fmt.Sprintf("Segment %d: Date cannot be in the past", n))
			}
			if i > 0 && r.Segments[i-1].Date != "" && seg.Date <= r.Segments[i-1].Date {
				errs = append(errs, fmt.Sprintf("Segment %d: Date must be after previous segment date", n))
			}
		}
		if seg.Passengers < 1 || seg.Passengers > 9 {
			errs = append(errs, fmt.Sprintf("Segment %d: Number of passengers must be between 1 and 9", n))
		}
		if !seg.TravelClass.IsValid() {
			errs = append(errs, fmt.Sprintf("Segment %d: Invalid travel class", n))
		}
	}

	for i := 0; i < len(r.Segments)-1; i++ {
		if r.Segments[i].Destination != r.Segments[i+1].Origin {
			errs = append(errs, fmt.Sprintf(
				"Segments %d and %d: Destination of segment %d (%s) must match origin of segment %d (%s)",
				i+1, i+2, i+1, r.Segments[i].Destination, i+2, r.Segments[i+1].Origin))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ============================================================================
// SEAT REQUESTS
// ============================================================================

// AssignSeatRequest binds one passenger to one seat
type AssignSeatRequest struct {
	FlightID    string    `json:"flightId" binding:"required"`
	PassengerID string    `json:"passengerId" binding:"required"`
	SeatID      string    `json:"seatId" binding:"required"`
	Passenger   Passenger `json:"passengerInfo"`
}

// SwapSeatRequest moves a passenger to a different seat
type SwapSeatRequest struct {
	FlightID    string    `json:"flightId" binding:"required"`
	PassengerID string    `json:"passengerId" binding:"required"`
	NewSeatID   string    `json:"newSeatId" binding:"required"`
	Passenger   Passenger `json:"passengerInfo"`
}

// SeatPreferences steers auto-assignment
type SeatPreferences struct {
	SeatType SeatType `json:"seatType,omitempty"`
}

// AutoAssignRequest asks for seats for a whole party
type AutoAssignRequest struct {
	FlightID    string          `json:"flightId" binding:"required"`
	Passengers  []Passenger     `json:"passengers" binding:"required,min=1"`
	TravelClass TravelClass     `json:"travelClass" binding:"required"`
	Preferences SeatPreferences `json:"preferences"`
}

// ============================================================================
// FARE REQUESTS
// ============================================================================

// SeatSelection identifies one chosen seat within a fare or booking request
type SeatSelection struct {
	PassengerID string      `json:"passengerId"`
	FlightID    string      `json:"flightId"`
	SeatID      string      `json:"seatId" binding:"required"`
	TravelClass TravelClass `json:"travelClass,omitempty"`
}

// FareRequest asks for a full quote for one flight
type FareRequest struct {
	FlightID      string          `json:"flightId" binding:"required"`
	Passengers    []Passenger     `json:"passengers" binding:"required,min=1"`
	SelectedSeats []SeatSelection `json:"selectedSeats"`
	PromoCode     string          `json:"promoCode,omitempty"`
}

// BaseFareRequest asks for the base fare component only
type BaseFareRequest struct {
	FlightID    string      `json:"flightId" binding:"required"`
	TravelClass TravelClass `json:"travelClass" binding:"required"`
	Passengers  int         `json:"passengers" binding:"required,min=1"`
}

// SeatUpgradeFareRequest asks for the upgrade fee of one seat
type SeatUpgradeFareRequest struct {
	FlightID    string      `json:"flightId" binding:"required"`
	SeatID      string      `json:"seatId" binding:"required"`
	TravelClass TravelClass `json:"travelClass,omitempty"`
}

// MultiFlightFareRequest quotes several legs together
type MultiFlightFareRequest struct {
	Flights       []FlightSelection `json:"flights" binding:"required,min=1"`
	Passengers    []Passenger       `json:"passengers" binding:"required,min=1"`
	SelectedSeats []SeatSelection   `json:"selectedSeats"`
	PromoCode     string            `json:"promoCode,omitempty"`
}

// ============================================================================
// BOOKING REQUESTS
// ============================================================================

// FlightSelection names a flight and cabin being booked
type FlightSelection struct {
	FlightID    string      `json:"flightId" binding:"required"`
	TravelClass TravelClass `json:"travelClass" binding:"required"`
}

// PaymentInfo is the payment detail submitted with a booking. Only the method
// and card last-4 survive onto the stored booking.
type PaymentInfo struct {
	Method         string `json:"method" binding:"required"`
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpiryMonth    string `json:"expiryMonth,omitempty"`
	ExpiryYear     string `json:"expiryYear,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
}

// ConfirmBookingRequest is the full booking submission
type ConfirmBookingRequest struct {
	Passengers    []Passenger       `json:"passengers" binding:"required"`
	Flights       []FlightSelection `json:"flights" binding:"required"`
	SelectedSeats []SeatSelection   `json:"selectedSeats"`
	Payment       PaymentInfo       `json:"payment" binding:"required"`
	PromoCode     string            `json:"promoCode,omitempty"`
}

// Validate collects every passenger, flight, and payment problem at once
func (r *ConfirmBookingRequest) Validate() error {
	var errs []string

	if len(r.Passengers) == 0 {
		errs = append(errs, "At least one passenger is required")
	}
	for i, p := range r.Passengers {
		n := i + 1
		if len(strings.TrimSpace(p.FirstName)) < 2 {
			errs = append(errs, fmt.Sprintf("Passenger %d: First name is required (minimum 2 characters)", n))
		}
		if len(strings.TrimSpace(p.LastName)) < 2 {
			errs = append(errs, fmt.Sprintf("Passenger %d: Last name is required (minimum 2 characters)", n))
		}
		if p.DateOfBirth == "" {
			errs = append(errs, fmt.Sprintf("Passenger %d: Date of birth is required", n))
		}
		if !validator.IsValidEmail(p.Email) {
			errs = append(errs, fmt.Sprintf("Passenger %d: Valid email is required", n))
		}
		if !validator.IsValidPhone(p.Phone) {
			errs = append(errs, fmt.Sprintf("Passenger %d: Valid phone number is required", n))
		}
	}

	if len(r.Flights) == 0 {
		errs = append(errs, "At least one flight is required")
	}
	for i, f := range r.Flights {
		n := i + 1
		if f.FlightID == "" {
			errs = append(errs, fmt.Sprintf("Flight %d: Flight ID is required", n))
		}
		if f.TravelClass == "" {
			errs = append(errs, fmt.Sprintf("Flight %d: Travel class is required", n))
		}
	}

	if r.Payment.Method == "" {
		errs = append(errs, "Payment method is required")
	}
	if r.Payment.Method == "card" {
		if len(r.Payment.CardNumber) < 13 {
			errs = append(errs, "Valid card number is required")
		}
		if r.Payment.ExpiryMonth == "" || r.Payment.ExpiryYear == "" {
			errs = append(errs, "Card expiry date is required")
		}
		if len(r.Payment.CVV) < 3 {
			errs = append(errs, "Valid CVV is required")
		}
		if len(strings.TrimSpace(r.Payment.CardholderName)) < 2 {
			errs = append(errs, "Cardholder name is required")
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBookingRequest carries the fields a booking holder may change
type UpdateBookingRequest struct {
	ContactInfo     *ContactInfo      `json:"contactInfo,omitempty"`
	SpecialRequests map[string]string `json:"specialRequests,omitempty"`
}

// ============================================================================
// PROMO & GIFT CARD REQUESTS
// ============================================================================

// ValidatePromoRequest checks a code against booking details without using it
type ValidatePromoRequest struct {
	Code           string       `json:"code" binding:"required"`
	BookingDetails PromoContext `json:"bookingDetails"`
}

// ApplyPromoRequest redeems a code against a booking amount
type ApplyPromoRequest struct {
	Code        string  `json:"code" binding:"required"`
	BookingID   string  `json:"bookingId" binding:"required"`
	TotalAmount float64 `json:"totalAmount" binding:"required"`
}

// CreatePromoRequest defines a new promo code (admin)
type CreatePromoRequest struct {
	Code              string       `json:"code" binding:"required"`
	Type              DiscountType `json:"type" binding:"required"`
	Value             float64      `json:"value" binding:"required"`
	MinAmount         float64      `json:"minAmount"`
	MaxDiscount       float64      `json:"maxDiscount"`
	Description       string       `json:"description" binding:"required"`
	ValidFrom         time.Time    `json:"validFrom" binding:"required"`
	ValidUntil        time.Time    `json:"validUntil" binding:"required"`
	UsageLimit        int          `json:"usageLimit"`
	ApplicableClasses []string     `json:"applicableClasses"`
	ApplicableRoutes  []string     `json:"applicableRoutes"`
}

// ToPromoCode builds the stored promo with the original defaulting rules:
// unset max discount caps fixed codes at their value and percentage codes at
// ten times the percentage
func (r *CreatePromoRequest) ToPromoCode(now time.Time) *PromoCode {
	maxDiscount := r.MaxDiscount
	if maxDiscount == 0 {
		if r.Type == DiscountFixed {
			maxDiscount = r.Value
		} else {
			maxDiscount = r.Value * 10
		}
	}
	usageLimit := r.UsageLimit
	if usageLimit == 0 {
		usageLimit = 1000
	}
	classes := r.ApplicableClasses
	if len(classes) == 0 {
		classes = []string{"all"}
	}
	routes := r.ApplicableRoutes
	if len(routes) == 0 {
		routes = []string{"all"}
	}
	return &PromoCode{
		Code:              strings.ToUpper(r.Code),
		Type:              r.Type,
		Value:             r.Value,
		MinAmount:         r.MinAmount,
		MaxDiscount:       maxDiscount,
		Description:       r.Description,
		ValidFrom:         r.ValidFrom,
		ValidUntil:        r.ValidUntil,
		UsageLimit:        usageLimit,
		IsActive:          true,
		ApplicableClasses: classes,
		ApplicableRoutes:  routes,
		CreatedAt:         now,
	}
}

// GenerateGiftCardRequest purchases a new gift card
type GenerateGiftCardRequest struct {
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	PurchaserEmail string  `json:"purchaserEmail" binding:"required,email"`
	RecipientEmail string  `json:"recipientEmail,omitempty"`
	Message        string  `json:"message,omitempty"`
}

// ApplyGiftCardRequest draws down a card against a booking
type ApplyGiftCardRequest struct {
	Code      string  `json:"code" binding:"required"`
	BookingID string  `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// GiftCardCodeRequest names a card by code
type GiftCardCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ============================================================================
// E-TICKET REQUESTS
// ============================================================================

// EmailTicketRequest asks for an issued ticket to be mailed
type EmailTicketRequest struct {
	Email     string `json:"email" binding:"required,email"`
	BookingID string `json:"bookingId" binding:"required"`
}
