package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

// seatRecord is the live state overlaid on one generated seat.
type seatRecord struct {
	Status      models.SeatStatus
	PassengerID string
	OccupiedBy  string
	Gender      string
	BookedAt    time.Time
}

// SeatService tracks live seat assignments for every flight. The generated
// seat maps stay immutable; assignments and releases are kept as an overlay
// so a seat's type and pre-seeded occupancy never change underneath a
// passenger. A passenger holds at most one seat per flight.
type SeatService struct {
	mu          sync.Mutex
	flights     *store.FlightStore
	overlays    map[string]map[string]seatRecord            // flightID -> seatID -> live state
	assignments map[string]map[string]models.SeatAssignment // flightID -> passengerID -> assignment
	log         *logrus.Logger
}

// NewSeatService creates a seat service over the flight catalog
func NewSeatService(flights *store.FlightStore, log *logrus.Logger) *SeatService {
	return &SeatService{
		flights:     flights,
		overlays:    make(map[string]map[string]seatRecord),
		assignments: make(map[string]map[string]models.SeatAssignment),
		log:         log,
	}
}

// SeatMap returns the flight's seat map with live statuses and upgrade
// prices filled in
func (s *SeatService) SeatMap(flightID string) (*models.SeatMapView, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	overlay := s.overlays[flightID]
	view := make(models.SeatMap, len(flight.SeatMap))
	for cabin, rows := range flight.SeatMap {
		outRows := make([][]models.Seat, len(rows))
		for i, row := range rows {
			outRow := make([]models.Seat, len(row))
			for j, seat := range row {
				seat.Price = SeatUpgradePrice(cabin, seat.Type)
				if rec, ok := overlay[seat.ID]; ok {
					seat.Status = rec.Status
					seat.OccupiedBy = rec.OccupiedBy
					seat.Gender = rec.Gender
				}
				outRow[j] = seat
			}
			outRows[i] = outRow
		}
		view[cabin] = outRows
	}
	s.mu.Unlock()

	return &models.SeatMapView{
		FlightID:     flight.ID,
		FlightNumber: flight.FlightNumber,
		Aircraft:     flight.Aircraft,
		SeatMap:      view,
	}, nil
}

// AssignSeat books a seat for a passenger. A passenger already holding a
// seat on the flight is moved: the old seat is freed and the new one booked
// in the same step, so the pair can never end up double-held.
func (s *SeatService) AssignSeat(flightID, passengerID, seatID string, passenger models.Passenger) (*models.SeatAssignment, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	seat, _, ok := flight.SeatMap.FindSeat(seatID)
	if !ok {
		return nil, store.ErrSeatNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seatFree(flight, seatID, seat.Status) {
		return nil, store.ErrSeatUnavailable
	}

	if prev, ok := s.assignments[flightID][passengerID]; ok {
		delete(s.overlays[flightID], prev.SeatID)
	}

	assignment := s.bookLocked(flightID, seatID, passenger, passengerID)

	s.log.WithFields(logrus.Fields{
		"flight_id":    flightID,
		"passenger_id": passengerID,
		"seat_id":      seatID,
	}).Info("Seat assigned")

	return &assignment, nil
}

// ReleaseSeat frees whatever seat the passenger holds on the flight.
// Releasing a passenger with no seat is a no-op.
func (s *SeatService) ReleaseSeat(flightID, passengerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.assignments[flightID][passengerID]
	if !ok {
		return
	}
	delete(s.overlays[flightID], prev.SeatID)
	delete(s.assignments[flightID], passengerID)

	s.log.WithFields(logrus.Fields{
		"flight_id":    flightID,
		"passenger_id": passengerID,
		"seat_id":      prev.SeatID,
	}).Info("Seat released")
}

// SwapSeat moves a passenger to a new seat, keeping the old one only if the
// new seat turns out to be taken
func (s *SeatService) SwapSeat(flightID, passengerID, newSeatID string, passenger models.Passenger) (*models.SeatAssignment, error) {
	return s.AssignSeat(flightID, passengerID, newSeatID, passenger)
}

// SeatStatus reports the live state of one seat
func (s *SeatService) SeatStatus(flightID, seatID string) (*models.SeatStatusInfo, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	seat, _, ok := flight.SeatMap.FindSeat(seatID)
	if !ok {
		return nil, store.ErrSeatNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info := models.SeatStatusInfo{
		SeatID:     seatID,
		Status:     seat.Status,
		OccupiedBy: seat.OccupiedBy,
		Gender:     seat.Gender,
	}
	if rec, ok := s.overlays[flightID][seatID]; ok {
		info.Status = rec.Status
		info.PassengerID = rec.PassengerID
		info.OccupiedBy = rec.OccupiedBy
		info.Gender = rec.Gender
		bookedAt := rec.BookedAt
		info.BookedAt = &bookedAt
	}
	return &info, nil
}

// AutoAssign seats a party in one cabin. Seats of the preferred type come
// first, then everything else, each group walking the cabin front to back, so
// the same request always yields the same seats. When the party outnumbers
// the free seats the remainder go unseated: callers see the shortfall in the
// returned list's length.
func (s *SeatService) AutoAssign(flightID string, passengers []models.Passenger, class models.TravelClass, prefs models.SeatPreferences) ([]models.SeatAssignment, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	if !class.IsValid() {
		return nil, &models.ValidationError{Errors: []string{"Invalid travel class"}}
	}
	rows, ok := flight.SeatMap[class]
	if !ok {
		return nil, fmt.Errorf("no %s cabin on flight %s", class, flightID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	type candidate struct {
		seat models.Seat
		row  int
		col  int
	}
	candidates := []candidate{}
	for i, row := range rows {
		for j, seat := range row {
			if s.seatFree(flight, seat.ID, seat.Status) {
				candidates = append(candidates, candidate{seat: seat, row: i, col: j})
			}
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if prefs.SeatType != "" {
			pa, pb := ca.seat.Type == prefs.SeatType, cb.seat.Type == prefs.SeatType
			if pa != pb {
				return pa
			}
		}
		if ca.row != cb.row {
			return ca.row < cb.row
		}
		return ca.col < cb.col
	})

	seated := len(passengers)
	if len(candidates) < seated {
		seated = len(candidates)
	}

	assignments := make([]models.SeatAssignment, 0, seated)
	for i, p := range passengers[:seated] {
		passengerID := p.ID
		if passengerID == "" {
			passengerID = fmt.Sprintf("passenger_%d", i+1)
		}
		if prev, ok := s.assignments[flightID][passengerID]; ok {
			delete(s.overlays[flightID], prev.SeatID)
		}
		assignments = append(assignments, s.bookLocked(flightID, candidates[i].seat.ID, p, passengerID))
	}

	s.log.WithFields(logrus.Fields{
		"flight_id":  flightID,
		"cabin":      class,
		"passengers": len(passengers),
		"seated":     seated,
	}).Info("Seats auto-assigned")

	return assignments, nil
}

// Assignments lists the current assignments on a flight, ordered by seat id
func (s *SeatService) Assignments(flightID string) []models.SeatAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SeatAssignment, 0, len(s.assignments[flightID]))
	for _, a := range s.assignments[flightID] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatID < out[j].SeatID })
	return out
}

// SelectionSummary totals the upgrade fees of the flight's current
// assignments
func (s *SeatService) SelectionSummary(flightID string) (*models.SeatSelectionSummary, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	assignments := s.Assignments(flightID)
	summary := &models.SeatSelectionSummary{
		FlightID: flightID,
		Seats:    []models.SeatUpgradeDetail{},
		Currency: models.Currency,
	}
	for _, a := range assignments {
		seat, cabin, ok := flight.SeatMap.FindSeat(a.SeatID)
		if !ok {
			continue
		}
		fee := SeatUpgradePrice(cabin, seat.Type)
		summary.Seats = append(summary.Seats, models.SeatUpgradeDetail{
			PassengerID: a.PassengerID,
			SeatID:      a.SeatID,
			SeatType:    seat.Type,
			UpgradeFee:  fee,
		})
		summary.TotalUpgradeFees += fee
	}
	return summary, nil
}

// seatFree reports whether a seat can be booked given its generated status
// and any overlay. Callers hold s.mu.
func (s *SeatService) seatFree(flight *models.Flight, seatID string, generated models.SeatStatus) bool {
	if rec, ok := s.overlays[flight.ID][seatID]; ok {
		return rec.Status.IsAvailable()
	}
	return generated.IsAvailable()
}

// bookLocked records the booking overlay and assignment. Callers hold s.mu.
func (s *SeatService) bookLocked(flightID, seatID string, passenger models.Passenger, passengerID string) models.SeatAssignment {
	if s.overlays[flightID] == nil {
		s.overlays[flightID] = make(map[string]seatRecord)
	}
	if s.assignments[flightID] == nil {
		s.assignments[flightID] = make(map[string]models.SeatAssignment)
	}

	now := time.Now()
	s.overlays[flightID][seatID] = seatRecord{
		Status:      models.StatusForGender(passenger.Gender),
		PassengerID: passengerID,
		OccupiedBy:  passenger.FullName(),
		Gender:      passenger.Gender,
		BookedAt:    now,
	}
	assignment := models.SeatAssignment{
		FlightID:      flightID,
		PassengerID:   passengerID,
		SeatID:        seatID,
		AssignedAt:    now,
		PassengerName: passenger.FullName(),
	}
	s.assignments[flightID][passengerID] = assignment
	return assignment
}
