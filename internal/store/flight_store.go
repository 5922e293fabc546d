package store

import (
	"sync"

	"github.com/skylux/booking-backend/internal/models"
)

// FlightStore keeps the flight inventory and its availability counters.
// Counter mutations go through the store so they stay consistent under
// concurrent bookings and cancellations.
type FlightStore struct {
	mu      sync.RWMutex
	flights map[string]*models.Flight
	order   []string // insertion order for stable listings
}

// NewFlightStore seeds the store with a generated catalog
func NewFlightStore(flights []*models.Flight) *FlightStore {
	s := &FlightStore{
		flights: make(map[string]*models.Flight, len(flights)),
		order:   make([]string, 0, len(flights)),
	}
	for _, f := range flights {
		s.flights[f.ID] = f
		s.order = append(s.order, f.ID)
	}
	return s
}

// GetByID returns the flight or ErrFlightNotFound
func (s *FlightStore) GetByID(id string) (*models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flight, ok := s.flights[id]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

// SearchFilters narrows a flight listing
type SearchFilters struct {
	Origin      string
	Destination string
	Date        string
	Passengers  int
	TravelClass models.TravelClass
}

// Search returns active flights matching the route and date that can seat the
// party, annotated with the total fare for the searched cabin
func (s *FlightStore) Search(filters SearchFilters) []models.FlightResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []models.FlightResult{}
	for _, id := range s.order {
		f := s.flights[id]
		if f.Origin != filters.Origin || f.Destination != filters.Destination {
			continue
		}
		if f.Date != filters.Date {
			continue
		}
		if f.Status != models.FlightStatusActive {
			continue
		}
		if !f.HasAvailableSeats(filters.TravelClass, filters.Passengers) {
			continue
		}
		results = append(results, models.FlightResult{
			Flight:          *f,
			TotalFareAmount: f.TotalFare(filters.TravelClass, filters.Passengers),
			CabinSeats:      f.SeatsAvailable(filters.TravelClass),
		})
	}
	return results
}

// DecrementAvailability reserves seats in a cabin, clamping at zero
func (s *FlightStore) DecrementAvailability(flightID string, class models.TravelClass, count int) error {
	return s.adjustAvailability(flightID, class, -count)
}

// IncrementAvailability returns seats to a cabin
func (s *FlightStore) IncrementAvailability(flightID string, class models.TravelClass, count int) error {
	return s.adjustAvailability(flightID, class, count)
}

func (s *FlightStore) adjustAvailability(flightID string, class models.TravelClass, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights[flightID]
	if !ok {
		return ErrFlightNotFound
	}
	next := flight.AvailableSeats[class] + delta
	if next < 0 {
		next = 0
	}
	flight.AvailableSeats[class] = next
	return nil
}

// Count returns the number of flights in the catalog
func (s *FlightStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flights)
}
