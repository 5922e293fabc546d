package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/config"
	"github.com/skylux/booking-backend/internal/models"
)

// ETicketService writes ticket artifacts to disk and mails them. Tickets are
// plain-text renderings whatever the requested extension; the QR and barcode
// payloads are embedded so scanners resolve back to the PNR.
type ETicketService struct {
	cfg config.TicketConfig
	log *logrus.Logger
}

// NewETicketService creates an e-ticket service writing into cfg.Dir
func NewETicketService(cfg config.TicketConfig, log *logrus.Logger) *ETicketService {
	return &ETicketService{cfg: cfg, log: log}
}

// Generate renders the booking's ticket and writes it under the ticket
// directory. Format defaults to pdf.
func (s *ETicketService) Generate(booking *models.Booking, format string) (*models.ETicket, error) {
	if format == "" {
		format = "pdf"
	}

	now := time.Now()
	ts := now.UnixMilli()
	fileName := fmt.Sprintf("eticket_%s_%d.%s", booking.PNR, ts, format)

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create ticket directory: %w", err)
	}

	ticket := &models.ETicket{
		BookingID:   booking.ID,
		PNR:         booking.PNR,
		FileName:    fileName,
		FilePath:    filepath.Join(s.cfg.Dir, fileName),
		Format:      format,
		QRCode:      QRData(booking.PNR, ts),
		Barcode:     BarcodeData(booking.PNR, ts),
		GeneratedAt: now,
	}

	if err := os.WriteFile(ticket.FilePath, []byte(s.render(booking, ticket)), 0o644); err != nil {
		return nil, fmt.Errorf("write ticket: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"pnr":  booking.PNR,
		"file": ticket.FilePath,
	}).Info("E-ticket generated")

	return ticket, nil
}

// EmailTicket pretends to mail the ticket. There is no mail gateway in this
// demo backend, so delivery is a log line.
func (s *ETicketService) EmailTicket(booking *models.Booking, email string) error {
	s.log.WithFields(logrus.Fields{
		"pnr":   booking.PNR,
		"email": email,
	}).Info("E-ticket emailed")
	return nil
}

// QRData returns the scannable payload encoded into ticket QR codes
func QRData(pnr string, ts int64) string {
	return fmt.Sprintf("SKYLUX:%s:%d", pnr, ts)
}

// BarcodeData returns the Code 39 style payload printed on tickets. Only the
// trailing six digits of the timestamp fit the strip.
func BarcodeData(pnr string, ts int64) string {
	digits := fmt.Sprintf("%d", ts)
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	return fmt.Sprintf("*%s*%s*", pnr, digits)
}

func (s *ETicketService) render(booking *models.Booking, ticket *models.ETicket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SKYLUX AIRLINES E-TICKET\n")
	fmt.Fprintf(&b, "========================\n\n")
	fmt.Fprintf(&b, "PNR: %s\n", booking.PNR)
	fmt.Fprintf(&b, "Status: %s\n", booking.Status)
	fmt.Fprintf(&b, "Issued: %s\n\n", ticket.GeneratedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "PASSENGERS\n")
	for i, p := range booking.Passengers {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p.FullName())
	}

	fmt.Fprintf(&b, "\nFLIGHTS\n")
	for _, f := range booking.Flights {
		fmt.Fprintf(&b, "  %s  %s %s -> %s  dep %s arr %s  (%s)\n",
			f.FlightNumber, f.Date, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime, f.TravelClass)
	}

	if len(booking.Seats) > 0 {
		fmt.Fprintf(&b, "\nSEATS\n")
		for _, seat := range booking.Seats {
			fmt.Fprintf(&b, "  %s  flight %s  seat %s (%s)\n", seat.PassengerID, seat.FlightID, seat.SeatNumber, seat.SeatType)
		}
	}

	fmt.Fprintf(&b, "\nTOTAL FARE: %.2f %s\n", booking.TotalFare, models.Currency)
	fmt.Fprintf(&b, "\nQR: %s\nBARCODE: %s\n", ticket.QRCode, ticket.Barcode)

	return b.String()
}
