package store

import (
	"sync"

	"github.com/skylux/booking-backend/internal/models"
)

// BookingStore keeps bookings keyed by id with a PNR index on the side, so a
// booking has exactly one canonical record whichever key it is fetched by.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*models.Booking
	byPNR    map[string]string // PNR -> booking id
}

// NewBookingStore creates an empty booking store
func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]*models.Booking),
		byPNR:    make(map[string]string),
	}
}

// Insert stores a new booking under its id and indexes its PNR
func (s *BookingStore) Insert(b *models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[b.ID] = b
	s.byPNR[b.PNR] = b.ID
}

// GetByID returns the booking or ErrBookingNotFound
func (s *BookingStore) GetByID(id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// GetByPNR resolves the PNR index and returns the booking
func (s *BookingStore) GetByPNR(pnr string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPNR[pnr]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return s.bookings[id], nil
}

// Get looks a booking up by either key, PNR first
func (s *BookingStore) Get(ref string) (*models.Booking, error) {
	if b, err := s.GetByPNR(ref); err == nil {
		return b, nil
	}
	return s.GetByID(ref)
}

// PNRExists reports whether a PNR is already taken
func (s *BookingStore) PNRExists(pnr string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byPNR[pnr]
	return ok
}

// Count returns the number of stored bookings
func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
