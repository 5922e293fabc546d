package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/config"
	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
	"github.com/skylux/booking-backend/internal/utils"
)

// BookingService runs the confirmation pipeline and the lifecycle operations
// on stored bookings. Confirmation is all-or-nothing: when a step fails after
// seats or availability were taken, everything taken so far is handed back
// before the error is returned.
type BookingService struct {
	mu       sync.Mutex
	bookings *store.BookingStore
	flights  *store.FlightStore
	promos   *store.PromoStore
	seats    *SeatService
	fares    *FareService
	tickets  *ETicketService
	cfg      config.BookingConfig
	log      *logrus.Logger
}

// NewBookingService wires the booking orchestrator
func NewBookingService(
	bookings *store.BookingStore,
	flights *store.FlightStore,
	promos *store.PromoStore,
	seats *SeatService,
	fares *FareService,
	tickets *ETicketService,
	cfg config.BookingConfig,
	log *logrus.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		flights:  flights,
		promos:   promos,
		seats:    seats,
		fares:    fares,
		tickets:  tickets,
		cfg:      cfg,
		log:      log,
	}
}

// Confirm validates and books the whole itinerary, returning the stored
// booking. The first flight is the pricing basis; further legs are carried
// on the booking at their snapshot fares.
func (s *BookingService) Confirm(req *models.ConfirmBookingRequest) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	passengers := normalizePassengerIDs(req.Passengers)
	byID := make(map[string]models.Passenger, len(passengers))
	for _, p := range passengers {
		byID[p.ID] = p
	}

	// Snapshot every leg up front so a dud flight id fails before anything
	// is taken.
	segments := make([]models.FlightSegment, 0, len(req.Flights))
	for _, sel := range req.Flights {
		flight, err := s.flights.GetByID(sel.FlightID)
		if err != nil {
			return nil, err
		}
		if !flight.HasAvailableSeats(sel.TravelClass, len(passengers)) {
			return nil, fmt.Errorf("%w: %s on flight %s", store.ErrNotEnoughSeats, sel.TravelClass, sel.FlightID)
		}
		segments = append(segments, models.FlightSegment{
			FlightID:      flight.ID,
			FlightNumber:  flight.FlightNumber,
			Origin:        flight.Origin,
			Destination:   flight.Destination,
			Date:          flight.Date,
			DepartureTime: flight.DepartureTime,
			ArrivalTime:   flight.ArrivalTime,
			TravelClass:   sel.TravelClass,
			BaseFare:      flight.BaseFare(sel.TravelClass),
		})
	}

	bookingID := uuid.NewString()
	pnr, err := s.generatePNR()
	if err != nil {
		return nil, err
	}

	// Seat assignment with compensation. In lenient mode a taken seat is
	// skipped and the passenger travels unseated; strict mode unwinds and
	// fails the booking.
	bookedSeats := []models.BookedSeat{}
	assigned := []models.SeatAssignment{}
	unwindSeats := func() {
		for _, a := range assigned {
			s.seats.ReleaseSeat(a.FlightID, a.PassengerID)
		}
	}
	quotedSeats := make([]models.SeatSelection, 0, len(req.SelectedSeats))
	for _, sel := range req.SelectedSeats {
		passenger := byID[sel.PassengerID]
		assignment, err := s.seats.AssignSeat(sel.FlightID, sel.PassengerID, sel.SeatID, passenger)
		if err != nil {
			if s.cfg.StrictSeating {
				unwindSeats()
				return nil, fmt.Errorf("seat %s on flight %s: %w", sel.SeatID, sel.FlightID, err)
			}
			s.log.WithFields(logrus.Fields{
				"flight_id": sel.FlightID,
				"seat_id":   sel.SeatID,
			}).WithError(err).Warn("Seat skipped during booking")
			continue
		}
		assigned = append(assigned, *assignment)
		quotedSeats = append(quotedSeats, sel)

		upgrade, err := s.fares.SeatUpgradeFare(sel.FlightID, sel.SeatID)
		if err != nil {
			unwindSeats()
			return nil, err
		}
		bookedSeats = append(bookedSeats, models.BookedSeat{
			PassengerID: sel.PassengerID,
			FlightID:    sel.FlightID,
			SeatNumber:  sel.SeatID,
			SeatType:    upgrade.SeatType,
			UpgradeFee:  upgrade.UpgradeFee,
		})
	}

	// Quote without the promo; redemption is atomic and happens once
	// everything else has succeeded.
	quote, err := s.fares.TotalFare(segments[0].FlightID, passengers, quotedSeats, "")
	if err != nil {
		unwindSeats()
		return nil, err
	}

	decremented := []models.FlightSegment{}
	unwindAvailability := func() {
		for _, seg := range decremented {
			if err := s.flights.IncrementAvailability(seg.FlightID, seg.TravelClass, len(passengers)); err != nil {
				s.log.WithError(err).WithField("flight_id", seg.FlightID).Error("Availability rollback failed")
			}
		}
	}
	for _, seg := range segments {
		if err := s.flights.DecrementAvailability(seg.FlightID, seg.TravelClass, len(passengers)); err != nil {
			unwindAvailability()
			unwindSeats()
			return nil, err
		}
		decremented = append(decremented, seg)
	}

	breakdown := quote.FareBreakdown
	if req.PromoCode != "" {
		usage, _, err := s.promos.Apply(req.PromoCode, bookingID, breakdown.Subtotal)
		if err != nil {
			unwindAvailability()
			unwindSeats()
			return nil, err
		}
		breakdown.Discount = usage.Discount
		breakdown.TotalFare = math.Max(0, breakdown.Subtotal-breakdown.Discount)
	}

	booking := &models.Booking{
		ID:            bookingID,
		PNR:           pnr,
		Passengers:    passengers,
		Flights:       segments,
		Seats:         bookedSeats,
		FareBreakdown: breakdown,
		TotalFare:     breakdown.TotalFare,
		PromoCode:     req.PromoCode,
		Discount:      breakdown.Discount,
		Payment:       paymentSummary(req.Payment),
		ContactInfo: models.ContactInfo{
			Email:            passengers[0].Email,
			Phone:            passengers[0].Phone,
			EmergencyContact: passengers[0].EmergencyContact,
		},
		BookingDate: time.Now(),
	}
	booking.Confirm()
	s.bookings.Insert(booking)

	// Ticket generation is best effort; the booking stands either way.
	if ticket, err := s.tickets.Generate(booking, "pdf"); err != nil {
		s.log.WithError(err).WithField("pnr", pnr).Warn("E-ticket generation failed")
	} else {
		booking.ETicketGenerated = true
		booking.ETicketPath = ticket.FilePath
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"pnr":        pnr,
		"passengers": len(passengers),
		"flights":    len(segments),
		"total_fare": booking.TotalFare,
	}).Info("Booking confirmed")

	return booking, nil
}

// Retrieve finds a booking by PNR or booking id
func (s *BookingService) Retrieve(ref string) (*models.Booking, error) {
	return s.bookings.Get(ref)
}

// Cancel cancels a booking, hands its seats and availability back, and
// computes the refund. Cancelling twice fails.
func (s *BookingService) Cancel(ref string) (*models.CancellationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.Get(ref)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, store.ErrAlreadyCancelled
	}

	for _, seat := range booking.Seats {
		s.seats.ReleaseSeat(seat.FlightID, seat.PassengerID)
	}
	for _, seg := range booking.Flights {
		if err := s.flights.IncrementAvailability(seg.FlightID, seg.TravelClass, len(booking.Passengers)); err != nil {
			s.log.WithError(err).WithField("flight_id", seg.FlightID).Error("Availability restore failed")
		}
	}

	booking.Cancel()
	refund := round2(booking.TotalFare * s.cfg.RefundRate)

	s.log.WithFields(logrus.Fields{
		"pnr":    booking.PNR,
		"refund": refund,
	}).Info("Booking cancelled")

	return &models.CancellationResult{PNR: booking.PNR, RefundAmount: refund}, nil
}

// Update changes the booking's contact info and special requests. Nothing
// else on a confirmed booking is editable. Updates are patches: only the
// fields the request carries change, everything already on the booking stays.
func (s *BookingService) Update(ref string, req *models.UpdateBookingRequest) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.Get(ref)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, store.ErrBookingCancelled
	}

	if req.ContactInfo != nil {
		if req.ContactInfo.Email != "" {
			booking.ContactInfo.Email = req.ContactInfo.Email
		}
		if req.ContactInfo.Phone != "" {
			booking.ContactInfo.Phone = req.ContactInfo.Phone
		}
		if req.ContactInfo.EmergencyContact != "" {
			booking.ContactInfo.EmergencyContact = req.ContactInfo.EmergencyContact
		}
	}
	if req.SpecialRequests != nil {
		if booking.SpecialRequests == nil {
			booking.SpecialRequests = make(map[string]string, len(req.SpecialRequests))
		}
		for k, v := range req.SpecialRequests {
			booking.SpecialRequests[k] = v
		}
	}
	return booking, nil
}

// Summary condenses a booking for listings
func (s *BookingService) Summary(ref string) (*models.BookingSummary, error) {
	booking, err := s.bookings.Get(ref)
	if err != nil {
		return nil, err
	}
	return &models.BookingSummary{
		PNR:              booking.PNR,
		Status:           booking.Status,
		BookingDate:      booking.BookingDate,
		TotalFare:        booking.TotalFare,
		Currency:         models.Currency,
		PassengerCount:   len(booking.Passengers),
		FlightCount:      len(booking.Flights),
		SeatCount:        len(booking.Seats),
		ContactEmail:     booking.ContactInfo.Email,
		ETicketGenerated: booking.ETicketGenerated,
	}, nil
}

// generatePNR draws record locators until one is unused, giving up after the
// configured number of collisions
func (s *BookingService) generatePNR() (string, error) {
	for attempt := 0; attempt < s.cfg.PNRMaxAttempts; attempt++ {
		pnr, err := utils.RandomAlphanumeric(s.cfg.PNRLength)
		if err != nil {
			return "", err
		}
		if !s.bookings.PNRExists(pnr) {
			return pnr, nil
		}
	}
	return "", store.ErrPNRExhausted
}

// normalizePassengerIDs fills in positional ids for passengers submitted
// without one, matching the ids seat selections use
func normalizePassengerIDs(passengers []models.Passenger) []models.Passenger {
	out := make([]models.Passenger, len(passengers))
	copy(out, passengers)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = fmt.Sprintf("passenger_%d", i+1)
		}
	}
	return out
}

// paymentSummary strips the payment down to what a booking may keep
func paymentSummary(p models.PaymentInfo) models.PaymentSummary {
	last4 := ""
	if n := len(p.CardNumber); n >= 4 {
		last4 = p.CardNumber[n-4:]
	}
	return models.PaymentSummary{
		Method:        p.Method,
		Last4:         last4,
		TransactionID: "TXN-" + uuid.NewString(),
		ProcessedAt:   time.Now(),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
