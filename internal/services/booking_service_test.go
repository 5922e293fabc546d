package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylux/booking-backend/internal/config"
	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

type bookingEnv struct {
	svc      *BookingService
	flights  *store.FlightStore
	seats    *SeatService
	bookings *store.BookingStore
}

func newBookingEnv(t *testing.T, cfg config.BookingConfig) bookingEnv {
	t.Helper()
	log := testLogger()
	flights := store.NewFlightStore([]*models.Flight{testFlight()})
	promos := store.NewPromoStore(store.SeedPromoCodes(time.Now().Year()))
	seats := NewSeatService(flights, log)
	fares := NewFareService(flights, promos, log)
	tickets := NewETicketService(config.TicketConfig{Dir: t.TempDir()}, log)
	bookings := store.NewBookingStore()
	svc := NewBookingService(bookings, flights, promos, seats, fares, tickets, cfg, log)
	return bookingEnv{svc: svc, flights: flights, seats: seats, bookings: bookings}
}

func defaultBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		RefundRate:     0.8,
		PNRLength:      6,
		PNRMaxAttempts: 5,
	}
}

func confirmRequest(passengers int) *models.ConfirmBookingRequest {
	return &models.ConfirmBookingRequest{
		Passengers: testPassengers(passengers),
		Flights: []models.FlightSelection{
			{FlightID: "SL001", TravelClass: models.ClassEconomy},
		},
		Payment: models.PaymentInfo{
			Method:         "card",
			CardNumber:     "4111111111111111",
			ExpiryMonth:    "12",
			ExpiryYear:     "2028",
			CVV:            "123",
			CardholderName: "Alice Traveller",
		},
	}
}

func availableEconomy(t *testing.T, flights *store.FlightStore) int {
	t.Helper()
	flight, err := flights.GetByID("SL001")
	require.NoError(t, err)
	return flight.AvailableSeats[models.ClassEconomy]
}

func TestConfirm(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12A"},
		{PassengerID: "passenger_2", FlightID: "SL001", SeatID: "12B"},
	}

	booking, err := env.svc.Confirm(req)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), booking.PNR)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Len(t, booking.Seats, 2)

	// 299*2 base + 50*2 taxes + 25*2 surcharges + 25 window upgrade.
	assert.InDelta(t, 773.0, booking.TotalFare, 0.001)
	assert.Equal(t, "1111", booking.Payment.Last4)
	assert.Contains(t, booking.Payment.TransactionID, "TXN-")
	assert.Equal(t, "traveller@example.com", booking.ContactInfo.Email)

	assert.Equal(t, 28, availableEconomy(t, env.flights))
	assert.True(t, booking.ETicketGenerated)
	assert.NotEmpty(t, booking.ETicketPath)
}

func TestConfirm_WithPromo(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12A"},
	}
	req.PromoCode = "WELCOME10"

	booking, err := env.svc.Confirm(req)
	require.NoError(t, err)

	// Subtotal 773; 10% off below the 200 cap.
	assert.InDelta(t, 77.30, booking.Discount, 0.001)
	assert.InDelta(t, 695.70, booking.TotalFare, 0.001)
	assert.Equal(t, "WELCOME10", booking.PromoCode)
}

func TestConfirm_InvalidRequest(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(1)
	req.Payment.Method = ""

	_, err := env.svc.Confirm(req)

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "Payment method is required")
	assert.Equal(t, 30, availableEconomy(t, env.flights))
}

func TestConfirm_NotEnoughSeats(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(5)
	req.Flights = []models.FlightSelection{
		{FlightID: "SL001", TravelClass: models.ClassFirst}, // only 4 seats
	}

	_, err := env.svc.Confirm(req)
	assert.ErrorIs(t, err, store.ErrNotEnoughSeats)
}

func TestConfirm_TakenSeatSkipped(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	other := testPassengers(1)[0]
	other.ID = "someone_else"
	_, err := env.seats.AssignSeat("SL001", other.ID, "12A", other)
	require.NoError(t, err)

	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12A"},
		{PassengerID: "passenger_2", FlightID: "SL001", SeatID: "12B"},
	}

	booking, err := env.svc.Confirm(req)
	require.NoError(t, err)

	// The taken seat is dropped; the rest of the booking proceeds.
	require.Len(t, booking.Seats, 1)
	assert.Equal(t, "12B", booking.Seats[0].SeatNumber)
}

func TestConfirm_StrictSeating(t *testing.T) {
	cfg := defaultBookingConfig()
	cfg.StrictSeating = true
	env := newBookingEnv(t, cfg)

	other := testPassengers(1)[0]
	other.ID = "someone_else"
	_, err := env.seats.AssignSeat("SL001", other.ID, "12A", other)
	require.NoError(t, err)

	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12B"},
		{PassengerID: "passenger_2", FlightID: "SL001", SeatID: "12A"},
	}

	_, err = env.svc.Confirm(req)
	require.ErrorIs(t, err, store.ErrSeatUnavailable)

	// The seat taken before the failure is handed back.
	status, err := env.seats.SeatStatus("SL001", "12B")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusAvailable, status.Status)
	assert.Equal(t, 30, availableEconomy(t, env.flights))
}

func TestConfirm_FailedPromoCompensates(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12A"},
	}
	req.PromoCode = "NOSUCHCODE"

	_, err := env.svc.Confirm(req)
	require.Error(t, err)

	assert.Equal(t, 30, availableEconomy(t, env.flights))
	status, err := env.seats.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusAvailable, status.Status)
}

func TestRetrieve(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	booking, err := env.svc.Confirm(confirmRequest(1))
	require.NoError(t, err)

	byPNR, err := env.svc.Retrieve(booking.PNR)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, byPNR.ID)

	byID, err := env.svc.Retrieve(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.PNR, byID.PNR)

	_, err = env.svc.Retrieve("NOPE99")
	assert.ErrorIs(t, err, store.ErrBookingNotFound)
}

// pnrAlphabet mirrors the character set record locators are drawn from.
const pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func TestGeneratePNR_RegeneratesOnCollision(t *testing.T) {
	cfg := defaultBookingConfig()
	cfg.PNRLength = 1
	cfg.PNRMaxAttempts = 2000
	env := newBookingEnv(t, cfg)

	// Every single-character locator except "Z" is taken, so the generator
	// has to keep drawing past collisions until it lands on the free one.
	for i, ch := range pnrAlphabet {
		if ch == 'Z' {
			continue
		}
		env.bookings.Insert(&models.Booking{ID: fmt.Sprintf("seed_%d", i), PNR: string(ch)})
	}

	pnr, err := env.svc.generatePNR()
	require.NoError(t, err)
	assert.Equal(t, "Z", pnr)
}

func TestGeneratePNR_ExhaustsAttemptBudget(t *testing.T) {
	cfg := defaultBookingConfig()
	cfg.PNRLength = 1
	env := newBookingEnv(t, cfg)

	// With the whole single-character space taken every draw collides.
	for i, ch := range pnrAlphabet {
		env.bookings.Insert(&models.Booking{ID: fmt.Sprintf("seed_%d", i), PNR: string(ch)})
	}

	_, err := env.svc.generatePNR()
	assert.ErrorIs(t, err, store.ErrPNRExhausted)
}

func TestConfirm_DistinctPNRs(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())

	pnrs := map[string]bool{}
	for i := 0; i < 5; i++ {
		booking, err := env.svc.Confirm(confirmRequest(1))
		require.NoError(t, err)
		pnrs[booking.PNR] = true
	}
	assert.Len(t, pnrs, 5)
}

func TestCancel(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12A"},
	}
	booking, err := env.svc.Confirm(req)
	require.NoError(t, err)
	require.Equal(t, 28, availableEconomy(t, env.flights))

	result, err := env.svc.Cancel(booking.PNR)
	require.NoError(t, err)

	assert.Equal(t, booking.PNR, result.PNR)
	assert.InDelta(t, 618.40, result.RefundAmount, 0.001) // 80% of 773

	assert.Equal(t, 30, availableEconomy(t, env.flights))
	status, err := env.seats.SeatStatus("SL001", "12A")
	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusAvailable, status.Status)

	_, err = env.svc.Cancel(booking.PNR)
	assert.ErrorIs(t, err, store.ErrAlreadyCancelled)
}

func TestUpdate(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	booking, err := env.svc.Confirm(confirmRequest(1))
	require.NoError(t, err)

	updated, err := env.svc.Update(booking.PNR, &models.UpdateBookingRequest{
		ContactInfo: &models.ContactInfo{
			Email: "new@example.com",
			Phone: "12025550999",
		},
		SpecialRequests: map[string]string{"meal": "vegetarian"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.ContactInfo.Email)
	assert.Equal(t, "vegetarian", updated.SpecialRequests["meal"])
}

func TestUpdate_PartialContactPatchKeepsOtherFields(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	booking, err := env.svc.Confirm(confirmRequest(1))
	require.NoError(t, err)
	require.Equal(t, "12025550123", booking.ContactInfo.Phone)

	updated, err := env.svc.Update(booking.PNR, &models.UpdateBookingRequest{
		ContactInfo: &models.ContactInfo{Email: "patched@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "patched@example.com", updated.ContactInfo.Email)
	assert.Equal(t, "12025550123", updated.ContactInfo.Phone)
}

func TestUpdate_SpecialRequestsMergeByKey(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	booking, err := env.svc.Confirm(confirmRequest(1))
	require.NoError(t, err)

	_, err = env.svc.Update(booking.PNR, &models.UpdateBookingRequest{
		SpecialRequests: map[string]string{"meal": "vegetarian"},
	})
	require.NoError(t, err)

	updated, err := env.svc.Update(booking.PNR, &models.UpdateBookingRequest{
		SpecialRequests: map[string]string{"assistance": "wheelchair"},
	})
	require.NoError(t, err)

	assert.Equal(t, "vegetarian", updated.SpecialRequests["meal"])
	assert.Equal(t, "wheelchair", updated.SpecialRequests["assistance"])
}

func TestUpdate_CancelledBooking(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	booking, err := env.svc.Confirm(confirmRequest(1))
	require.NoError(t, err)
	_, err = env.svc.Cancel(booking.PNR)
	require.NoError(t, err)

	_, err = env.svc.Update(booking.PNR, &models.UpdateBookingRequest{
		SpecialRequests: map[string]string{"meal": "vegetarian"},
	})
	assert.ErrorIs(t, err, store.ErrBookingCancelled)
}

func TestBookingSummary(t *testing.T) {
	env := newBookingEnv(t, defaultBookingConfig())
	req := confirmRequest(2)
	req.SelectedSeats = []models.SeatSelection{
		{PassengerID: "passenger_1", FlightID: "SL001", SeatID: "12B"},
	}
	booking, err := env.svc.Confirm(req)
	require.NoError(t, err)

	summary, err := env.svc.Summary(booking.PNR)
	require.NoError(t, err)
	assert.Equal(t, booking.PNR, summary.PNR)
	assert.Equal(t, models.BookingStatusConfirmed, summary.Status)
	assert.Equal(t, 2, summary.PassengerCount)
	assert.Equal(t, 1, summary.FlightCount)
	assert.Equal(t, 1, summary.SeatCount)
	assert.InDelta(t, booking.TotalFare, summary.TotalFare, 0.001)
}
