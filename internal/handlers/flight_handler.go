package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/catalog"
	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/services"
	"github.com/skylux/booking-backend/internal/store"
)

// FlightHandler handles HTTP requests for the flight catalog and searches
type FlightHandler struct {
	search  *services.SearchService
	flights *store.FlightStore
	logger  *logrus.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(search *services.SearchService, flights *store.FlightStore, logger *logrus.Logger) *FlightHandler {
	return &FlightHandler{
		search:  search,
		flights: flights,
		logger:  logger,
	}
}

// GetAirports handles GET /api/bookings/airports
// @Summary List airports
// @Description List airports served by the catalog, optionally filtered by a search term
// @Tags Flights
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} map[string]interface{}
// @Router /api/bookings/airports [get]
func (h *FlightHandler) GetAirports(c *gin.Context) {
	airports := catalog.SearchAirports(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"airports": airports,
		"count":    len(airports),
	})
}

// GetCountries handles GET /api/bookings/countries
// @Summary List countries
// @Tags Flights
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/bookings/countries [get]
func (h *FlightHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"countries": catalog.Countries,
	})
}

// SearchFlights handles POST /api/bookings/search
// @Summary Search flights
// @Description Find flights for a one-way or round-trip search, cheapest first
// @Tags Flights
// @Accept json
// @Produce json
// @Param search body models.SearchRequest true "Search parameters"
// @Success 200 {object} models.SearchResults
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/bookings/search [post]
func (h *FlightHandler) SearchFlights(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.search.Search(&req)
	if err != nil {
		h.logger.WithError(err).Warn("Flight search rejected")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}

// GetFlight handles GET /api/bookings/flight/:flightId
// @Summary Get a flight by id
// @Tags Flights
// @Produce json
// @Param flightId path string true "Flight ID"
// @Success 200 {object} models.Flight
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Router /api/bookings/flight/{flightId} [get]
func (h *FlightHandler) GetFlight(c *gin.Context) {
	flight, err := h.flights.GetByID(c.Param("flightId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flight":  flight,
	})
}

// BuildMultiCityItinerary handles POST /api/bookings/multi-city/search
// @Summary Build a multi-city itinerary
// @Description Validate the segments and pick the cheapest flight for each leg
// @Tags Flights
// @Accept json
// @Produce json
// @Param segments body models.MultiCityRequest true "Itinerary segments"
// @Success 200 {object} models.MultiCityItinerary
// @Failure 400 {object} map[string]interface{} "Invalid segments"
// @Router /api/bookings/multi-city/search [post]
func (h *FlightHandler) BuildMultiCityItinerary(c *gin.Context) {
	var req models.MultiCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	itinerary, err := h.search.BuildMultiCityItinerary(&req, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"itinerary": itinerary,
	})
}

// ValidateMultiCity handles POST /api/bookings/multi-city/validate
// @Summary Validate multi-city segments
// @Description Run segment validation without searching for flights
// @Tags Flights
// @Accept json
// @Produce json
// @Param segments body models.MultiCityRequest true "Itinerary segments"
// @Success 200 {object} map[string]interface{}
// @Router /api/bookings/multi-city/validate [post]
func (h *FlightHandler) ValidateMultiCity(c *gin.Context) {
	var req models.MultiCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := req.Validate(time.Now()); err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"isValid": false,
				"errors":  validationErr.Errors,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"isValid": true,
		"errors":  []string{},
	})
}
