package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/services"
)

// SeatHandler handles HTTP requests for seat maps and seat assignment
type SeatHandler struct {
	seats  *services.SeatService
	logger *logrus.Logger
}

// NewSeatHandler creates a new seat handler
func NewSeatHandler(seats *services.SeatService, logger *logrus.Logger) *SeatHandler {
	return &SeatHandler{
		seats:  seats,
		logger: logger,
	}
}

// GetSeatMap handles GET /api/bookings/seat-map/:flightId
// @Summary Get a flight's seat map
// @Description Return the cabin layouts with live statuses and upgrade prices
// @Tags Seats
// @Produce json
// @Param flightId path string true "Flight ID"
// @Success 200 {object} models.SeatMapView
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Router /api/bookings/seat-map/{flightId} [get]
func (h *SeatHandler) GetSeatMap(c *gin.Context) {
	view, err := h.seats.SeatMap(c.Param("flightId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"seatMap": view,
	})
}

// AssignSeat handles POST /api/bookings/seat/assign
// @Summary Assign a seat
// @Description Book a seat for a passenger, moving them if they already hold one
// @Tags Seats
// @Accept json
// @Produce json
// @Param assignment body models.AssignSeatRequest true "Assignment"
// @Success 200 {object} models.SeatAssignment
// @Failure 409 {object} map[string]interface{} "Seat not available"
// @Router /api/bookings/seat/assign [post]
func (h *SeatHandler) AssignSeat(c *gin.Context) {
	var req models.AssignSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	assignment, err := h.seats.AssignSeat(req.FlightID, req.PassengerID, req.SeatID, req.Passenger)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"assignment": assignment,
	})
}

// SwapSeat handles POST /api/bookings/seat/swap
// @Summary Swap a passenger to another seat
// @Tags Seats
// @Accept json
// @Produce json
// @Param swap body models.SwapSeatRequest true "Swap"
// @Success 200 {object} models.SeatAssignment
// @Failure 409 {object} map[string]interface{} "Seat not available"
// @Router /api/bookings/seat/swap [post]
func (h *SeatHandler) SwapSeat(c *gin.Context) {
	var req models.SwapSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	assignment, err := h.seats.SwapSeat(req.FlightID, req.PassengerID, req.NewSeatID, req.Passenger)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"assignment": assignment,
	})
}

// GetSeatStatus handles GET /api/bookings/seat/status/:flightId/:seatId
// @Summary Get one seat's live status
// @Tags Seats
// @Produce json
// @Param flightId path string true "Flight ID"
// @Param seatId path string true "Seat ID"
// @Success 200 {object} models.SeatStatusInfo
// @Failure 404 {object} map[string]interface{} "Seat not found"
// @Router /api/bookings/seat/status/{flightId}/{seatId} [get]
func (h *SeatHandler) GetSeatStatus(c *gin.Context) {
	info, err := h.seats.SeatStatus(c.Param("flightId"), c.Param("seatId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"seat":    info,
	})
}

// AutoAssignSeats handles POST /api/bookings/seat/auto-assign
// @Summary Auto-assign seats for a party
// @Description Seat the whole party in one cabin, preferred seat type first
// @Tags Seats
// @Accept json
// @Produce json
// @Param request body models.AutoAssignRequest true "Party and preferences"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Not enough seats"
// @Router /api/bookings/seat/auto-assign [post]
func (h *SeatHandler) AutoAssignSeats(c *gin.Context) {
	var req models.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	assignments, err := h.seats.AutoAssign(req.FlightID, req.Passengers, req.TravelClass, req.Preferences)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": assignments,
		"count":       len(assignments),
	})
}
