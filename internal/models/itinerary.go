package models

// ============================================================================
// SEARCH RESULTS & MULTI-CITY ITINERARIES
// ============================================================================

// SearchResults holds the flights found for a one-way or round-trip search
type SearchResults struct {
	TripType        TripType       `json:"tripType"`
	OutboundFlights []FlightResult `json:"outboundFlights"`
	ReturnFlights   []FlightResult `json:"returnFlights,omitempty"`
}

// ConnectionType grades a layover by length
type ConnectionType string

const (
	ConnectionShort  ConnectionType = "short"
	ConnectionMedium ConnectionType = "medium"
	ConnectionLong   ConnectionType = "long"
)

// Connection describes the layover between two itinerary legs. A connection
// under two hours is flagged invalid for international transfers.
type Connection struct {
	From              string         `json:"from"`
	To                string         `json:"to"`
	LayoverHours      float64        `json:"layoverHours"`
	IsValidConnection bool           `json:"isValidConnection"`
	ConnectionType    ConnectionType `json:"connectionType"`
}

// ItinerarySegment is one leg of a built multi-city itinerary with its
// selected flight
type ItinerarySegment struct {
	SegmentNumber int          `json:"segmentNumber"`
	Flight        FlightResult `json:"flight"`
	Passengers    int          `json:"passengers"`
	TravelClass   TravelClass  `json:"travelClass"`
	Fare          float64      `json:"fare"`
}

// MultiCityItinerary is a fully priced multi-city itinerary
type MultiCityItinerary struct {
	Segments    []ItinerarySegment `json:"segments"`
	TotalFare   float64            `json:"totalFare"`
	Connections []Connection       `json:"connections"`
}

// SegmentFareBreakdown itemises one leg of a multi-city fare
type SegmentFareBreakdown struct {
	SegmentNumber int         `json:"segmentNumber"`
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	FlightNumber  string      `json:"flightNumber"`
	TravelClass   TravelClass `json:"travelClass"`
	BaseFare      float64     `json:"baseFare"`
	Taxes         float64     `json:"taxes"`
	Surcharges    float64     `json:"surcharges"`
	TotalFare     float64     `json:"totalFare"`
}

// MultiCityFare totals a selected multi-city itinerary
type MultiCityFare struct {
	TotalFare     float64                `json:"totalFare"`
	FareBreakdown []SegmentFareBreakdown `json:"fareBreakdown"`
	Passengers    int                    `json:"passengers"`
}
