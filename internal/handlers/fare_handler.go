package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/services"
)

// FareHandler handles HTTP requests for fare quoting
type FareHandler struct {
	fares  *services.FareService
	logger *logrus.Logger
}

// NewFareHandler creates a new fare handler
func NewFareHandler(fares *services.FareService, logger *logrus.Logger) *FareHandler {
	return &FareHandler{
		fares:  fares,
		logger: logger,
	}
}

// CalculateFare handles POST /api/bookings/fare/calculate
// @Summary Quote the full fare for a flight
// @Description Base fare, taxes, surcharges, seat upgrades, and any promo discount
// @Tags Fares
// @Accept json
// @Produce json
// @Param request body models.FareRequest true "Quote parameters"
// @Success 200 {object} models.FareQuote
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Router /api/bookings/fare/calculate [post]
func (h *FareHandler) CalculateFare(c *gin.Context) {
	var req models.FareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	quote, err := h.fares.TotalFare(req.FlightID, req.Passengers, req.SelectedSeats, req.PromoCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fare":    quote,
	})
}

// CalculateBaseFare handles POST /api/bookings/fare/base
// @Summary Quote the base fare for a cabin
// @Tags Fares
// @Accept json
// @Produce json
// @Param request body models.BaseFareRequest true "Cabin and party size"
// @Success 200 {object} models.BaseFareResult
// @Router /api/bookings/fare/base [post]
func (h *FareHandler) CalculateBaseFare(c *gin.Context) {
	var req models.BaseFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.fares.BaseFare(req.FlightID, req.TravelClass, req.Passengers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fare":    result,
	})
}

// CalculateSeatUpgrade handles POST /api/bookings/fare/seat-upgrade
// @Summary Quote one seat's upgrade fee
// @Tags Fares
// @Accept json
// @Produce json
// @Param request body models.SeatUpgradeFareRequest true "Flight and seat"
// @Success 200 {object} models.SeatUpgradeResult
// @Failure 404 {object} map[string]interface{} "Seat not found"
// @Router /api/bookings/fare/seat-upgrade [post]
func (h *FareHandler) CalculateSeatUpgrade(c *gin.Context) {
	var req models.SeatUpgradeFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.fares.SeatUpgradeFare(req.FlightID, req.SeatID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"upgrade": result,
	})
}

// GetFareComparison handles GET /api/bookings/fare/comparison/:flightId/:passengers
// @Summary Compare fares across cabins
// @Description Price every cabin with open seats for the party size
// @Tags Fares
// @Produce json
// @Param flightId path string true "Flight ID"
// @Param passengers path int true "Party size"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Router /api/bookings/fare/comparison/{flightId}/{passengers} [get]
func (h *FareHandler) GetFareComparison(c *gin.Context) {
	passengers, err := strconv.Atoi(c.Param("passengers"))
	if err != nil || passengers < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Number of passengers must be a positive integer",
		})
		return
	}

	comparison, err := h.fares.Comparison(c.Param("flightId"), passengers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"comparison": comparison,
	})
}

// CalculateMultiFlightFare handles POST /api/bookings/fare/multi-flight
// @Summary Quote several legs together
// @Description Price each leg and apply the promo once to the combined subtotal
// @Tags Fares
// @Accept json
// @Produce json
// @Param request body models.MultiFlightFareRequest true "Legs, party, seats, promo"
// @Success 200 {object} models.MultiFlightQuote
// @Router /api/bookings/fare/multi-flight [post]
func (h *FareHandler) CalculateMultiFlightFare(c *gin.Context) {
	var req models.MultiFlightFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	quote, err := h.fares.MultiFlightFare(req.Flights, req.Passengers, req.SelectedSeats, req.PromoCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"fare":    quote,
	})
}
