package models

// ============================================================================
// TRAVEL CLASSES & FLIGHT MODEL
// ============================================================================

// TravelClass represents a cabin class on a flight
type TravelClass string

const (
	ClassEconomy  TravelClass = "economy"
	ClassPremium  TravelClass = "premium"
	ClassBusiness TravelClass = "business"
	ClassFirst    TravelClass = "first"
)

// TravelClasses lists all cabins in display order
var TravelClasses = []TravelClass{ClassEconomy, ClassPremium, ClassBusiness, ClassFirst}

// IsValid reports whether the class is one of the four known cabins
func (c TravelClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassPremium, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

// FlightStatus represents the operational status of a flight
type FlightStatus string

const (
	FlightStatusActive    FlightStatus = "active"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// Flight represents a scheduled flight with per-cabin fares and availability
type Flight struct {
	ID             string                  `json:"id"`
	FlightNumber   string                  `json:"flightNumber"`
	Airline        string                  `json:"airline"`
	Aircraft       string                  `json:"aircraft"`
	Origin         string                  `json:"origin"`
	Destination    string                  `json:"destination"`
	DepartureTime  string                  `json:"departureTime"` // "HH:MM"
	ArrivalTime    string                  `json:"arrivalTime"`   // "HH:MM"
	Duration       string                  `json:"duration"`      // "6h 30m"
	Date           string                  `json:"date"`          // "2026-10-01"
	AvailableSeats map[TravelClass]int     `json:"availableSeats"`
	BaseFares      map[TravelClass]float64 `json:"baseFares"`
	Taxes          float64                 `json:"taxes"`      // per passenger
	Surcharges     float64                 `json:"surcharges"` // per passenger
	Amenities      []string                `json:"amenities"`
	Status         FlightStatus            `json:"status"`
	SeatMap        SeatMap                 `json:"seatMap,omitempty"`
}

// BaseFare returns the per-person base fare for a cabin, 0 for unknown cabins
func (f *Flight) BaseFare(class TravelClass) float64 {
	return f.BaseFares[class]
}

// SeatsAvailable returns the availability counter for a cabin
func (f *Flight) SeatsAvailable(class TravelClass) int {
	return f.AvailableSeats[class]
}

// HasAvailableSeats reports whether the cabin can hold the party
func (f *Flight) HasAvailableSeats(class TravelClass, passengers int) bool {
	return f.SeatsAvailable(class) >= passengers
}

// TotalFare returns (base + taxes + surcharges) * passengers for a cabin
func (f *Flight) TotalFare(class TravelClass, passengers int) float64 {
	perPerson := f.BaseFare(class) + f.Taxes + f.Surcharges
	return perPerson * float64(passengers)
}

// Route returns the "ORIGIN-DESTINATION" key used for promo route matching
func (f *Flight) Route() string {
	return f.Origin + "-" + f.Destination
}

// FlightResult is a flight annotated with the fare for the searched party
type FlightResult struct {
	Flight
	TotalFareAmount float64 `json:"totalFare"`
	CabinSeats      int     `json:"cabinSeats"`
}
