package models

import "time"

// ============================================================================
// SEAT STATUSES & TYPES
// ============================================================================

// SeatStatus represents the occupancy state of a seat
type SeatStatus string

const (
	SeatStatusAvailable      SeatStatus = "available"
	SeatStatusBooked         SeatStatus = "booked"
	SeatStatusOccupiedMale   SeatStatus = "occupied_male"
	SeatStatusOccupiedFemale SeatStatus = "occupied_female"
)

// IsAvailable reports whether the seat can be assigned
func (s SeatStatus) IsAvailable() bool {
	return s == SeatStatusAvailable
}

// StatusForGender returns the occupancy status recorded when a passenger of
// the given gender takes a seat; unknown genders record a plain booking
func StatusForGender(gender string) SeatStatus {
	switch gender {
	case "male":
		return SeatStatusOccupiedMale
	case "female":
		return SeatStatusOccupiedFemale
	}
	return SeatStatusBooked
}

// SeatType classifies a seat for upgrade pricing
type SeatType string

const (
	SeatTypeStandard      SeatType = "standard"
	SeatTypeExtraLegroom  SeatType = "extra_legroom"
	SeatTypeEmergencyExit SeatType = "emergency_exit"
	SeatTypeWindow        SeatType = "window"
	SeatTypeAisle         SeatType = "aisle"
)

// ============================================================================
// SEAT MAP
// ============================================================================

// Seat is one position in a cabin's seat map. Status here is the state the
// seat was generated with; live assignments are overlaid by the seat service.
type Seat struct {
	ID         string     `json:"id"` // e.g. "12A"
	Row        int        `json:"row"`
	Column     string     `json:"seat"` // letter within the row
	Type       SeatType   `json:"type"`
	Status     SeatStatus `json:"status"`
	Price      float64    `json:"price"` // upgrade fee, filled on seat map reads
	OccupiedBy string     `json:"occupiedBy,omitempty"`
	Gender     string     `json:"gender,omitempty"`
}

// SeatMap holds the cabin layouts of one flight: cabin -> rows -> seats
type SeatMap map[TravelClass][][]Seat

// FindSeat locates a seat by id, returning a copy and the cabin it sits in.
// Generated flights restart row numbering per cabin, so the same id can exist
// in several cabins; cabins are searched in TravelClasses order and the first
// hit wins, keeping repeated lookups stable.
func (m SeatMap) FindSeat(seatID string) (Seat, TravelClass, bool) {
	for _, cabin := range TravelClasses {
		for _, row := range m[cabin] {
			for _, seat := range row {
				if seat.ID == seatID {
					return seat, cabin, true
				}
			}
		}
	}
	return Seat{}, "", false
}

// SeatAssignment records a seat granted to a passenger
type SeatAssignment struct {
	FlightID      string    `json:"flightId"`
	PassengerID   string    `json:"passengerId"`
	SeatID        string    `json:"seatId"`
	AssignedAt    time.Time `json:"assignedAt"`
	PassengerName string    `json:"passengerName,omitempty"`
}

// SeatStatusInfo is the live state of one seat
type SeatStatusInfo struct {
	SeatID      string     `json:"seatId"`
	Status      SeatStatus `json:"status"`
	PassengerID string     `json:"passengerId,omitempty"`
	OccupiedBy  string     `json:"occupiedBy,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	BookedAt    *time.Time `json:"bookedAt,omitempty"`
}

// SeatSelectionSummary totals the upgrade fees of a flight's current
// assignments
type SeatSelectionSummary struct {
	FlightID         string              `json:"flightId"`
	Seats            []SeatUpgradeDetail `json:"seats"`
	TotalUpgradeFees float64             `json:"totalUpgradeFees"`
	Currency         string              `json:"currency"`
}

// SeatMapView is the seat map response for one flight
type SeatMapView struct {
	FlightID     string  `json:"flightId"`
	FlightNumber string  `json:"flightNumber"`
	Aircraft     string  `json:"aircraft"`
	SeatMap      SeatMap `json:"seatMap"`
}
