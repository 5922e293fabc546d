package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylux/booking-backend/internal/config"
	"github.com/skylux/booking-backend/internal/models"
)

func ticketBooking() *models.Booking {
	return &models.Booking{
		ID:         "b-1",
		PNR:        "AB12CD",
		Status:     models.BookingStatusConfirmed,
		Passengers: testPassengers(1),
		Flights: []models.FlightSegment{
			{
				FlightID:      "SL001",
				FlightNumber:  "SL 001",
				Origin:        "JFK",
				Destination:   "LAX",
				Date:          "2026-10-05",
				DepartureTime: "08:00",
				ArrivalTime:   "11:30",
				TravelClass:   models.ClassEconomy,
			},
		},
		Seats: []models.BookedSeat{
			{PassengerID: "passenger_1", FlightID: "SL001", SeatNumber: "12A", SeatType: models.SeatTypeWindow},
		},
		TotalFare:   374,
		BookingDate: time.Now(),
	}
}

func TestGenerateETicket(t *testing.T) {
	dir := t.TempDir()
	svc := NewETicketService(config.TicketConfig{Dir: dir}, testLogger())

	ticket, err := svc.Generate(ticketBooking(), "")
	require.NoError(t, err)

	assert.Equal(t, "pdf", ticket.Format)
	assert.Regexp(t, `^eticket_AB12CD_\d+\.pdf$`, ticket.FileName)
	assert.Regexp(t, `^SKYLUX:AB12CD:\d+$`, ticket.QRCode)
	assert.Regexp(t, `^\*AB12CD\*\d{6}\*$`, ticket.Barcode)

	content, err := os.ReadFile(ticket.FilePath)
	require.NoError(t, err)
	body := string(content)
	assert.Contains(t, body, "SKYLUX AIRLINES E-TICKET")
	assert.Contains(t, body, "PNR: AB12CD")
	assert.Contains(t, body, "SL 001")
	assert.Contains(t, body, "seat 12A")
	assert.Contains(t, body, ticket.QRCode)
}

func TestGenerateETicket_CustomFormat(t *testing.T) {
	svc := NewETicketService(config.TicketConfig{Dir: t.TempDir()}, testLogger())

	ticket, err := svc.Generate(ticketBooking(), "html")
	require.NoError(t, err)
	assert.Equal(t, "html", ticket.Format)
	assert.Regexp(t, `\.html$`, ticket.FileName)
}

func TestEmailTicket(t *testing.T) {
	svc := NewETicketService(config.TicketConfig{Dir: t.TempDir()}, testLogger())

	assert.NoError(t, svc.EmailTicket(ticketBooking(), "alice@example.com"))
}

func TestBarcodeData_ShortTimestamp(t *testing.T) {
	assert.Equal(t, "*AB12CD*123*", BarcodeData("AB12CD", 123))
}
