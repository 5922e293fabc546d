package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

// searchFlight derives a route variant of the fixture flight.
func searchFlight(id, origin, destination, date, departure, arrival string, economyFare float64) *models.Flight {
	f := testFlight()
	f.ID = id
	f.FlightNumber = "SL " + id[2:]
	f.Origin = origin
	f.Destination = destination
	f.Date = date
	f.DepartureTime = departure
	f.ArrivalTime = arrival
	f.BaseFares[models.ClassEconomy] = economyFare
	return f
}

func newSearchService(flights ...*models.Flight) *SearchService {
	return NewSearchService(store.NewFlightStore(flights), testLogger())
}

func searchNow() time.Time {
	return time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
}

func TestSearch_CheapestFirst(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "08:00", "11:30", 450),
		searchFlight("SL011", "JFK", "LAX", "2026-10-05", "13:00", "16:30", 299),
	)

	results, err := svc.Search(&models.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-10-05",
		Passengers:    1,
		TravelClass:   models.ClassEconomy,
		TripType:      models.TripOneWay,
	})
	require.NoError(t, err)

	require.Len(t, results.OutboundFlights, 2)
	assert.Equal(t, "SL011", results.OutboundFlights[0].ID)
	assert.Equal(t, "SL010", results.OutboundFlights[1].ID)
	assert.Empty(t, results.ReturnFlights)
}

func TestSearch_RoundTrip(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "08:00", "11:30", 299),
		searchFlight("SL020", "LAX", "JFK", "2026-10-12", "09:00", "17:00", 310),
	)

	results, err := svc.Search(&models.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-10-05",
		ReturnDate:    "2026-10-12",
		Passengers:    2,
		TravelClass:   models.ClassEconomy,
		TripType:      models.TripRoundTrip,
	})
	require.NoError(t, err)

	require.Len(t, results.OutboundFlights, 1)
	require.Len(t, results.ReturnFlights, 1)
	assert.Equal(t, "SL020", results.ReturnFlights[0].ID)
	assert.Equal(t, "LAX", results.ReturnFlights[0].Origin)
}

func TestSearch_InvalidRequest(t *testing.T) {
	svc := newSearchService(testFlight())

	_, err := svc.Search(&models.SearchRequest{
		Origin:        "JFK",
		Destination:   "JFK",
		DepartureDate: "2026-10-05",
		Passengers:    1,
		TravelClass:   models.ClassEconomy,
		TripType:      models.TripOneWay,
	})

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "Origin and destination cannot be the same")
}

func TestSearch_SkipsFullCabin(t *testing.T) {
	full := searchFlight("SL010", "JFK", "LAX", "2026-10-05", "08:00", "11:30", 299)
	full.AvailableSeats[models.ClassEconomy] = 1

	svc := newSearchService(full)
	results, err := svc.Search(&models.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-10-05",
		Passengers:    2,
		TravelClass:   models.ClassEconomy,
		TripType:      models.TripOneWay,
	})
	require.NoError(t, err)
	assert.Empty(t, results.OutboundFlights)
}

func TestBuildMultiCityItinerary(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "08:00", "11:30", 450),
		searchFlight("SL011", "JFK", "LAX", "2026-10-05", "13:00", "16:30", 299),
		searchFlight("SL030", "LAX", "SFO", "2026-10-06", "08:00", "09:30", 120),
	)

	itinerary, err := svc.BuildMultiCityItinerary(&models.MultiCityRequest{
		Segments: []models.MultiCitySegment{
			{Origin: "JFK", Destination: "LAX", Date: "2026-10-05", Passengers: 2, TravelClass: models.ClassEconomy},
			{Origin: "LAX", Destination: "SFO", Date: "2026-10-06", Passengers: 2, TravelClass: models.ClassEconomy},
		},
	}, searchNow())
	require.NoError(t, err)

	require.Len(t, itinerary.Segments, 2)
	// Cheapest flight wins each segment.
	assert.Equal(t, "SL011", itinerary.Segments[0].Flight.ID)
	assert.Equal(t, 1, itinerary.Segments[0].SegmentNumber)
	assert.Equal(t, "SL030", itinerary.Segments[1].Flight.ID)

	// (299+50+25)*2 + (120+50+25)*2
	assert.InDelta(t, 748+390, itinerary.TotalFare, 0.001)

	require.Len(t, itinerary.Connections, 1)
	conn := itinerary.Connections[0]
	assert.Equal(t, "LAX", conn.From)
	// 16:30 arrival on the 5th to 08:00 departure on the 6th.
	assert.InDelta(t, 15.5, conn.LayoverHours, 0.001)
	assert.True(t, conn.IsValidConnection)
	assert.Equal(t, models.ConnectionLong, conn.ConnectionType)
}

func TestBuildMultiCityItinerary_ShortConnection(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "18:00", "23:00", 299),
		searchFlight("SL030", "LAX", "SFO", "2026-10-06", "01:30", "03:00", 120),
	)

	itinerary, err := svc.BuildMultiCityItinerary(&models.MultiCityRequest{
		Segments: []models.MultiCitySegment{
			{Origin: "JFK", Destination: "LAX", Date: "2026-10-05", Passengers: 1, TravelClass: models.ClassEconomy},
			{Origin: "LAX", Destination: "SFO", Date: "2026-10-06", Passengers: 1, TravelClass: models.ClassEconomy},
		},
	}, searchNow())
	require.NoError(t, err)

	require.Len(t, itinerary.Connections, 1)
	conn := itinerary.Connections[0]
	assert.InDelta(t, 2.5, conn.LayoverHours, 0.001)
	assert.True(t, conn.IsValidConnection)
	assert.Equal(t, models.ConnectionShort, conn.ConnectionType)
}

func TestBuildMultiCityItinerary_TightTransferInvalid(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "18:00", "23:30", 299),
		searchFlight("SL030", "LAX", "SFO", "2026-10-06", "00:30", "02:00", 120),
	)

	itinerary, err := svc.BuildMultiCityItinerary(&models.MultiCityRequest{
		Segments: []models.MultiCitySegment{
			{Origin: "JFK", Destination: "LAX", Date: "2026-10-05", Passengers: 1, TravelClass: models.ClassEconomy},
			{Origin: "LAX", Destination: "SFO", Date: "2026-10-06", Passengers: 1, TravelClass: models.ClassEconomy},
		},
	}, searchNow())
	require.NoError(t, err)

	conn := itinerary.Connections[0]
	assert.InDelta(t, 1.0, conn.LayoverHours, 0.001)
	assert.False(t, conn.IsValidConnection)
	assert.Equal(t, models.ConnectionShort, conn.ConnectionType)
}

func TestBuildMultiCityItinerary_NoFlights(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "08:00", "11:30", 299),
	)

	_, err := svc.BuildMultiCityItinerary(&models.MultiCityRequest{
		Segments: []models.MultiCitySegment{
			{Origin: "JFK", Destination: "LAX", Date: "2026-10-05", Passengers: 1, TravelClass: models.ClassEconomy},
			{Origin: "LAX", Destination: "SFO", Date: "2026-10-06", Passengers: 1, TravelClass: models.ClassEconomy},
		},
	}, searchNow())

	require.Error(t, err)
	assert.EqualError(t, err, "No flights available for segment 2: LAX to SFO")
}

func TestBuildMultiCityItinerary_SegmentValidation(t *testing.T) {
	svc := newSearchService(testFlight())

	_, err := svc.BuildMultiCityItinerary(&models.MultiCityRequest{
		Segments: []models.MultiCitySegment{
			{Origin: "JFK", Destination: "LAX", Date: "2026-10-05", Passengers: 1, TravelClass: models.ClassEconomy},
		},
	}, searchNow())

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "At least 2 segments are required for multi-city travel")
}

func TestMultiCityFare(t *testing.T) {
	svc := newSearchService(
		searchFlight("SL010", "JFK", "LAX", "2026-10-05", "08:00", "11:30", 299),
		searchFlight("SL030", "LAX", "SFO", "2026-10-06", "08:00", "09:30", 120),
	)

	fare, err := svc.MultiCityFare([]models.FlightSelection{
		{FlightID: "SL010", TravelClass: models.ClassEconomy},
		{FlightID: "SL030", TravelClass: models.ClassEconomy},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, fare.Passengers)
	assert.InDelta(t, 1138.0, fare.TotalFare, 0.001)
	require.Len(t, fare.FareBreakdown, 2)
	leg := fare.FareBreakdown[0]
	assert.Equal(t, "JFK", leg.Origin)
	assert.InDelta(t, 598.0, leg.BaseFare, 0.001)
	assert.InDelta(t, 100.0, leg.Taxes, 0.001)
	assert.InDelta(t, 50.0, leg.Surcharges, 0.001)
	assert.InDelta(t, 748.0, leg.TotalFare, 0.001)
}

func TestMultiCityFare_UnknownFlight(t *testing.T) {
	svc := newSearchService(testFlight())

	_, err := svc.MultiCityFare([]models.FlightSelection{
		{FlightID: "SL999", TravelClass: models.ClassEconomy},
	}, 1)
	assert.ErrorIs(t, err, store.ErrFlightNotFound)
}
