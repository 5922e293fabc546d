package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

// SearchService answers flight searches: one-way, round-trip, and full
// multi-city itineraries with connection grading.
type SearchService struct {
	flights *store.FlightStore
	log     *logrus.Logger
}

// NewSearchService creates a search service over the flight catalog
func NewSearchService(flights *store.FlightStore, log *logrus.Logger) *SearchService {
	return &SearchService{flights: flights, log: log}
}

// Search finds flights for the request, cheapest first. Round trips also
// search the reverse route on the return date.
func (s *SearchService) Search(req *models.SearchRequest) (*models.SearchResults, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outbound := s.flights.Search(store.SearchFilters{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.DepartureDate,
		Passengers:  req.Passengers,
		TravelClass: req.TravelClass,
	})
	sortByFare(outbound)

	results := &models.SearchResults{
		TripType:        req.TripType,
		OutboundFlights: outbound,
	}

	if req.TripType == models.TripRoundTrip && req.ReturnDate != "" {
		returnFlights := s.flights.Search(store.SearchFilters{
			Origin:      req.Destination,
			Destination: req.Origin,
			Date:        req.ReturnDate,
			Passengers:  req.Passengers,
			TravelClass: req.TravelClass,
		})
		sortByFare(returnFlights)
		results.ReturnFlights = returnFlights
	}

	s.log.WithFields(logrus.Fields{
		"route":    req.Origin + "-" + req.Destination,
		"date":     req.DepartureDate,
		"outbound": len(results.OutboundFlights),
		"return":   len(results.ReturnFlights),
	}).Info("Flight search")

	return results, nil
}

// BuildMultiCityItinerary selects the cheapest flight for every segment and
// grades the layovers between consecutive legs
func (s *SearchService) BuildMultiCityItinerary(req *models.MultiCityRequest, now time.Time) (*models.MultiCityItinerary, error) {
	if err := req.Validate(now); err != nil {
		return nil, err
	}

	itinerary := &models.MultiCityItinerary{
		Segments:    []models.ItinerarySegment{},
		Connections: []models.Connection{},
	}

	for i, seg := range req.Segments {
		flights := s.flights.Search(store.SearchFilters{
			Origin:      seg.Origin,
			Destination: seg.Destination,
			Date:        seg.Date,
			Passengers:  seg.Passengers,
			TravelClass: seg.TravelClass,
		})
		if len(flights) == 0 {
			return nil, fmt.Errorf("No flights available for segment %d: %s to %s", i+1, seg.Origin, seg.Destination)
		}
		sortByFare(flights)
		selected := flights[0]

		itinerary.Segments = append(itinerary.Segments, models.ItinerarySegment{
			SegmentNumber: i + 1,
			Flight:        selected,
			Passengers:    seg.Passengers,
			TravelClass:   seg.TravelClass,
			Fare:          selected.TotalFareAmount,
		})
		itinerary.TotalFare += selected.TotalFareAmount
	}

	for i := 0; i < len(itinerary.Segments)-1; i++ {
		current := itinerary.Segments[i]
		next := itinerary.Segments[i+1]
		itinerary.Connections = append(itinerary.Connections, buildConnection(
			current.Flight.Destination, next.Flight.Origin,
			current.Flight.Date, current.Flight.ArrivalTime,
			next.Flight.Date, next.Flight.DepartureTime,
		))
	}

	return itinerary, nil
}

// MultiCityFare prices an itinerary whose flights were already chosen
func (s *SearchService) MultiCityFare(selections []models.FlightSelection, passengers int) (*models.MultiCityFare, error) {
	fare := &models.MultiCityFare{
		FareBreakdown: []models.SegmentFareBreakdown{},
		Passengers:    passengers,
	}

	for i, sel := range selections {
		flight, err := s.flights.GetByID(sel.FlightID)
		if err != nil {
			return nil, err
		}
		segmentFare := flight.TotalFare(sel.TravelClass, passengers)
		fare.TotalFare += segmentFare
		fare.FareBreakdown = append(fare.FareBreakdown, models.SegmentFareBreakdown{
			SegmentNumber: i + 1,
			Origin:        flight.Origin,
			Destination:   flight.Destination,
			FlightNumber:  flight.FlightNumber,
			TravelClass:   sel.TravelClass,
			BaseFare:      flight.BaseFare(sel.TravelClass) * float64(passengers),
			Taxes:         flight.Taxes * float64(passengers),
			Surcharges:    flight.Surcharges * float64(passengers),
			TotalFare:     segmentFare,
		})
	}

	return fare, nil
}

// buildConnection grades the layover between an arrival and the next
// departure. Under four hours is short, under twelve medium, anything longer
// a long connection; under two hours the transfer is not bookable.
func buildConnection(from, to, arrivalDate, arrivalTime, departureDate, departureTime string) models.Connection {
	layover := layoverHours(arrivalDate, arrivalTime, departureDate, departureTime)

	connectionType := models.ConnectionLong
	switch {
	case layover < 4:
		connectionType = models.ConnectionShort
	case layover < 12:
		connectionType = models.ConnectionMedium
	}

	return models.Connection{
		From:              from,
		To:                to,
		LayoverHours:      math.Max(0, layover),
		IsValidConnection: layover >= 2,
		ConnectionType:    connectionType,
	}
}

func layoverHours(arrivalDate, arrivalTime, departureDate, departureTime string) float64 {
	const layout = "2006-01-02 15:04"
	arrival, err1 := time.Parse(layout, arrivalDate+" "+arrivalTime)
	departure, err2 := time.Parse(layout, departureDate+" "+departureTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return departure.Sub(arrival).Hours()
}

func sortByFare(flights []models.FlightResult) {
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].TotalFareAmount < flights[j].TotalFareAmount
	})
}
