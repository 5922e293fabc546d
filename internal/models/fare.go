package models

// Currency is the only currency the system quotes in
const Currency = "USD"

// BaseFareResult is the base-fare component for a party
type BaseFareResult struct {
	BaseFarePerPerson float64 `json:"baseFarePerPerson"`
	Passengers        int     `json:"passengers"`
	TotalBaseFare     float64 `json:"totalBaseFare"`
	Currency          string  `json:"currency"`
}

// TaxSurchargeBreakdown itemises per-person and total taxes and surcharges
type TaxSurchargeBreakdown struct {
	TaxesPerPerson          float64 `json:"taxesPerPerson"`
	SurchargesPerPerson     float64 `json:"surchargesPerPerson"`
	TotalTaxes              float64 `json:"totalTaxes"`
	TotalSurcharges         float64 `json:"totalSurcharges"`
	TotalTaxesAndSurcharges float64 `json:"totalTaxesAndSurcharges"`
}

// TaxSurchargeResult wraps the breakdown with the party size
type TaxSurchargeResult struct {
	Breakdown  TaxSurchargeBreakdown `json:"breakdown"`
	Passengers int                   `json:"passengers"`
	Currency   string                `json:"currency"`
}

// SeatUpgradeResult is the upgrade fee of a single seat
type SeatUpgradeResult struct {
	SeatID     string      `json:"seatId"`
	SeatType   SeatType    `json:"seatType"`
	Cabin      TravelClass `json:"cabin"`
	UpgradeFee float64     `json:"upgradeFee"`
	Currency   string      `json:"currency"`
}

// SeatUpgradeDetail is one seat's contribution inside a quote
type SeatUpgradeDetail struct {
	PassengerID string   `json:"passengerId"`
	SeatID      string   `json:"seatId"`
	SeatType    SeatType `json:"seatType"`
	UpgradeFee  float64  `json:"upgradeFee"`
}

// FareQuote is the full quote for one flight
type FareQuote struct {
	FareBreakdown      FareBreakdown       `json:"fareBreakdown"`
	SeatUpgradeDetails []SeatUpgradeDetail `json:"seatUpgradeDetails"`
	PromoDetails       *PromoSummary       `json:"promoDetails,omitempty"`
	Passengers         int                 `json:"passengers"`
	Currency           string              `json:"currency"`
}

// FlightFareBreakdown is one flight's slice of a multi-flight quote
type FlightFareBreakdown struct {
	FlightIndex   int           `json:"flightIndex"`
	FlightID      string        `json:"flightId"`
	TravelClass   TravelClass   `json:"travelClass"`
	FareBreakdown FareBreakdown `json:"fareBreakdown"`
}

// MultiFlightQuote aggregates several legs into one total, with the promo
// applied once to the combined subtotal
type MultiFlightQuote struct {
	FareBreakdown    FareBreakdown         `json:"fareBreakdown"`
	FlightBreakdowns []FlightFareBreakdown `json:"flightBreakdowns"`
	PromoDetails     *PromoSummary         `json:"promoDetails,omitempty"`
	Passengers       int                   `json:"passengers"`
	Currency         string                `json:"currency"`
}

// FareComparison is the per-cabin entry of the class comparison endpoint
type FareComparison struct {
	BaseFare       float64 `json:"baseFare"`
	TotalFare      float64 `json:"totalFare"`
	AvailableSeats int     `json:"availableSeats"`
	Savings        float64 `json:"savings"`
}
