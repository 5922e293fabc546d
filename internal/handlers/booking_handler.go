package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/services"
)

// BookingHandler handles HTTP requests for the booking lifecycle
type BookingHandler struct {
	bookings *services.BookingService
	tickets  *services.ETicketService
	logger   *logrus.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *services.BookingService, tickets *services.ETicketService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		tickets:  tickets,
		logger:   logger,
	}
}

// ConfirmBooking handles POST /api/bookings/confirm
// @Summary Confirm a booking
// @Description Validate, assign seats, price, redeem any promo, and store the booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body models.ConfirmBookingRequest true "Booking submission"
// @Success 200 {object} models.Booking
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Router /api/bookings/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req models.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	booking, err := h.bookings.Confirm(&req)
	if err != nil {
		h.logger.WithError(err).Warn("Booking confirmation failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// GetBooking handles GET /api/bookings/booking/:pnr
// @Summary Retrieve a booking
// @Description Look up a booking by PNR or booking id
// @Tags Bookings
// @Produce json
// @Param pnr path string true "PNR or booking ID"
// @Success 200 {object} models.Booking
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /api/bookings/booking/{pnr} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookings.Retrieve(c.Param("pnr"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// GetBookingSummary handles GET /api/bookings/booking/:pnr/summary
// @Summary Get a condensed booking view
// @Tags Bookings
// @Produce json
// @Param pnr path string true "PNR or booking ID"
// @Success 200 {object} models.BookingSummary
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /api/bookings/booking/{pnr}/summary [get]
func (h *BookingHandler) GetBookingSummary(c *gin.Context) {
	summary, err := h.bookings.Summary(c.Param("pnr"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": summary,
	})
}

// CancelBooking handles POST /api/bookings/booking/:pnr/cancel
// @Summary Cancel a booking
// @Description Release seats, restore availability, and compute the refund
// @Tags Bookings
// @Produce json
// @Param pnr path string true "PNR or booking ID"
// @Success 200 {object} models.CancellationResult
// @Failure 409 {object} map[string]interface{} "Already cancelled"
// @Router /api/bookings/booking/{pnr}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	result, err := h.bookings.Cancel(c.Param("pnr"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"cancellation": result,
	})
}

// UpdateBooking handles PUT /api/bookings/booking/:pnr
// @Summary Update a booking
// @Description Change contact info and special requests; nothing else is editable
// @Tags Bookings
// @Accept json
// @Produce json
// @Param pnr path string true "PNR or booking ID"
// @Param updates body models.UpdateBookingRequest true "Updates"
// @Success 200 {object} models.Booking
// @Failure 409 {object} map[string]interface{} "Booking cancelled"
// @Router /api/bookings/booking/{pnr} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	booking, err := h.bookings.Update(c.Param("pnr"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// GenerateETicket handles POST /api/bookings/eticket/generate/:bookingId
// @Summary Generate an e-ticket
// @Description Write the ticket artifact for a booking; format via ?format=
// @Tags Bookings
// @Produce json
// @Param bookingId path string true "PNR or booking ID"
// @Param format query string false "Ticket format" default(pdf)
// @Success 200 {object} models.ETicket
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /api/bookings/eticket/generate/{bookingId} [post]
func (h *BookingHandler) GenerateETicket(c *gin.Context) {
	booking, err := h.bookings.Retrieve(c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	ticket, err := h.tickets.Generate(booking, c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"eticket": ticket,
	})
}

// EmailETicket handles POST /api/bookings/eticket/email
// @Summary Email an e-ticket
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body models.EmailTicketRequest true "Recipient and booking"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /api/bookings/eticket/email [post]
func (h *BookingHandler) EmailETicket(c *gin.Context) {
	var req models.EmailTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Valid email is required",
		})
		return
	}

	booking, err := h.bookings.Retrieve(req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.tickets.EmailTicket(booking, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "E-ticket sent to " + req.Email,
	})
}
