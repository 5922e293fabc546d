package models

import "time"

// ============================================================================
// BOOKING STATUSES
// ============================================================================

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ============================================================================
// BOOKING MODEL
// ============================================================================

// Passenger holds the traveller details captured at booking time
type Passenger struct {
	ID               string `json:"id"`
	Title            string `json:"title,omitempty"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	PassportNumber   string `json:"passportNumber,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
}

// FullName returns "Title First Last" trimmed of missing parts
func (p *Passenger) FullName() string {
	name := p.FirstName + " " + p.LastName
	if p.Title != "" {
		name = p.Title + " " + name
	}
	return name
}

// FlightSegment is the snapshot of one booked flight leg
type FlightSegment struct {
	FlightID      string      `json:"flightId"`
	FlightNumber  string      `json:"flightNumber"`
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	Date          string      `json:"date"`
	DepartureTime string      `json:"departureTime"`
	ArrivalTime   string      `json:"arrivalTime"`
	TravelClass   TravelClass `json:"travelClass"`
	BaseFare      float64     `json:"baseFare"`
}

// BookedSeat links a passenger to an assigned seat with its upgrade fee
type BookedSeat struct {
	PassengerID string   `json:"passengerId"`
	FlightID    string   `json:"flightId"`
	SeatNumber  string   `json:"seatNumber"`
	SeatType    SeatType `json:"seatType"`
	UpgradeFee  float64  `json:"upgradeFee"`
}

// FareBreakdown itemises the charges of a quote or booking
type FareBreakdown struct {
	BaseFare     float64 `json:"baseFare"`
	Taxes        float64 `json:"taxes"`
	Surcharges   float64 `json:"surcharges"`
	SeatUpgrades float64 `json:"seatUpgrades"`
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	TotalFare    float64 `json:"totalFare"`
}

// PaymentSummary is what the booking keeps of the payment: never the full card
type PaymentSummary struct {
	Method        string    `json:"method"`
	Last4         string    `json:"last4,omitempty"`
	TransactionID string    `json:"transactionId"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// ContactInfo is the booking-level contact detail, taken from the lead passenger
type ContactInfo struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
}

// Booking is a confirmed (or cancelled) reservation
type Booking struct {
	ID               string            `json:"id"`
	PNR              string            `json:"pnr"`
	Status           BookingStatus     `json:"status"`
	Passengers       []Passenger       `json:"passengers"`
	Flights          []FlightSegment   `json:"flights"`
	Seats            []BookedSeat      `json:"seats"`
	FareBreakdown    FareBreakdown     `json:"fareBreakdown"`
	TotalFare        float64           `json:"totalFare"`
	PromoCode        string            `json:"promoCode,omitempty"`
	Discount         float64           `json:"discount"`
	Payment          PaymentSummary    `json:"payment"`
	ContactInfo      ContactInfo       `json:"contactInfo"`
	SpecialRequests  map[string]string `json:"specialRequests,omitempty"`
	BookingDate      time.Time         `json:"bookingDate"`
	CancelledAt      *time.Time        `json:"cancelledAt,omitempty"`
	ETicketGenerated bool              `json:"eTicketGenerated"`
	ETicketPath      string            `json:"eTicketPath,omitempty"`
}

// Confirm moves the booking into the confirmed state
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
}

// Cancel moves the booking into the cancelled state
func (b *Booking) Cancel() {
	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
}

// IsCancelled reports whether the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// BookingSummary is the condensed view returned by the summary endpoint
type BookingSummary struct {
	PNR              string        `json:"pnr"`
	Status           BookingStatus `json:"status"`
	BookingDate      time.Time     `json:"bookingDate"`
	TotalFare        float64       `json:"totalFare"`
	Currency         string        `json:"currency"`
	PassengerCount   int           `json:"passengerCount"`
	FlightCount      int           `json:"flightCount"`
	SeatCount        int           `json:"seatCount"`
	ContactEmail     string        `json:"contactEmail"`
	ETicketGenerated bool          `json:"eTicketGenerated"`
}

// CancellationResult carries the outcome of a cancellation
type CancellationResult struct {
	PNR          string  `json:"pnr"`
	RefundAmount float64 `json:"refundAmount"`
}
