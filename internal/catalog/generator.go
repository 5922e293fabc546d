package catalog

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/skylux/booking-backend/internal/models"
)

// routeSpec is one fixed route with its per-cabin list prices
type routeSpec struct {
	From      string
	To        string
	Duration  string
	BasePrice map[models.TravelClass]float64
}

// cabinLayout describes one cabin block of an aircraft
type cabinLayout struct {
	Rows        int
	SeatsPerRow int
}

// aircraftSpec describes an aircraft type and its cabin capacities
type aircraftSpec struct {
	Type   string
	Seats  map[models.TravelClass]int
	Layout map[models.TravelClass]cabinLayout
}

const airlineName = "SkyLux Airlines"

var defaultAmenities = []string{
	"Premium Lounge Access",
	"Gourmet Dining",
	"High-Speed WiFi",
	"In-flight Entertainment",
	"Extra Legroom",
	"Priority Boarding",
}

var routes = []routeSpec{
	// Popular US routes
	{From: "JFK", To: "LAX", Duration: "6h 30m", BasePrice: fares(299, 499, 899, 1599)},
	{From: "LAX", To: "JFK", Duration: "5h 45m", BasePrice: fares(319, 519, 919, 1699)},
	{From: "JFK", To: "MIA", Duration: "3h 15m", BasePrice: fares(199, 349, 649, 1199)},
	{From: "MIA", To: "JFK", Duration: "3h 00m", BasePrice: fares(219, 369, 669, 1249)},
	{From: "ORD", To: "SFO", Duration: "4h 30m", BasePrice: fares(249, 429, 799, 1449)},
	{From: "SFO", To: "ORD", Duration: "4h 15m", BasePrice: fares(269, 449, 819, 1499)},

	// US to Europe
	{From: "JFK", To: "LHR", Duration: "7h 00m", BasePrice: fares(599, 999, 2499, 4999)},
	{From: "LHR", To: "JFK", Duration: "8h 30m", BasePrice: fares(649, 1099, 2699, 5299)},
	{From: "JFK", To: "CDG", Duration: "7h 30m", BasePrice: fares(629, 1029, 2599, 5199)},
	{From: "CDG", To: "JFK", Duration: "8h 45m", BasePrice: fares(679, 1129, 2799, 5499)},
	{From: "LAX", To: "FRA", Duration: "11h 30m", BasePrice: fares(799, 1299, 3199, 6399)},
	{From: "FRA", To: "LAX", Duration: "12h 15m", BasePrice: fares(849, 1399, 3399, 6799)},

	// US to Asia
	{From: "LAX", To: "NRT", Duration: "11h 30m", BasePrice: fares(899, 1499, 3499, 6999)},
	{From: "NRT", To: "LAX", Duration: "10h 45m", BasePrice: fares(949, 1599, 3699, 7399)},
	{From: "SFO", To: "ICN", Duration: "12h 00m", BasePrice: fares(999, 1699, 3899, 7799)},
	{From: "ICN", To: "SFO", Duration: "11h 15m", BasePrice: fares(1049, 1799, 4099, 8199)},
	{From: "LAX", To: "SIN", Duration: "17h 30m", BasePrice: fares(1199, 1999, 4499, 8999)},
	{From: "SIN", To: "LAX", Duration: "16h 45m", BasePrice: fares(1249, 2099, 4699, 9399)},

	// Europe to Asia
	{From: "LHR", To: "DXB", Duration: "7h 00m", BasePrice: fares(499, 799, 1999, 3999)},
	{From: "DXB", To: "LHR", Duration: "7h 30m", BasePrice: fares(549, 849, 2199, 4399)},
	{From: "FRA", To: "BOM", Duration: "8h 30m", BasePrice: fares(699, 1199, 2799, 5599)},
	{From: "BOM", To: "FRA", Duration: "9h 15m", BasePrice: fares(749, 1299, 2999, 5999)},

	// Asia Pacific
	{From: "NRT", To: "SYD", Duration: "9h 30m", BasePrice: fares(799, 1299, 2999, 5999)},
	{From: "SYD", To: "NRT", Duration: "9h 15m", BasePrice: fares(849, 1399, 3199, 6399)},
	{From: "SIN", To: "BKK", Duration: "2h 30m", BasePrice: fares(199, 329, 599, 1199)},
	{From: "BKK", To: "SIN", Duration: "2h 15m", BasePrice: fares(219, 349, 629, 1299)},

	// Middle East hub routes
	{From: "DXB", To: "BOM", Duration: "3h 15m", BasePrice: fares(299, 499, 999, 1999)},
	{From: "BOM", To: "DXB", Duration: "3h 30m", BasePrice: fares(319, 529, 1099, 2199)},
	{From: "DXB", To: "SIN", Duration: "7h 30m", BasePrice: fares(599, 999, 2299, 4599)},
	{From: "SIN", To: "DXB", Duration: "7h 15m", BasePrice: fares(629, 1049, 2499, 4999)},

	// Pakistan routes
	{From: "KHI", To: "DXB", Duration: "2h 30m", BasePrice: fares(450, 750, 1499, 2999)},
	{From: "DXB", To: "KHI", Duration: "2h 30m", BasePrice: fares(450, 750, 1499, 2999)},
	{From: "LHE", To: "DXB", Duration: "2h 30m", BasePrice: fares(480, 800, 1599, 3199)},
	{From: "DXB", To: "LHE", Duration: "2h 30m", BasePrice: fares(480, 800, 1599, 3199)},
	{From: "SKT", To: "DXB", Duration: "2h 30m", BasePrice: fares(420, 700, 1399, 2799)},
	{From: "DXB", To: "SKT", Duration: "2h 30m", BasePrice: fares(420, 700, 1399, 2799)},
	{From: "ISB", To: "DXB", Duration: "2h 30m", BasePrice: fares(460, 760, 1519, 3039)},
	{From: "DXB", To: "ISB", Duration: "2h 30m", BasePrice: fares(460, 760, 1519, 3039)},
	{From: "KHI", To: "LHE", Duration: "1h 30m", BasePrice: fares(180, 300, 599, 1199)},
	{From: "LHE", To: "KHI", Duration: "1h 30m", BasePrice: fares(175, 295, 589, 1179)},
	{From: "SKT", To: "KHI", Duration: "1h 45m", BasePrice: fares(120, 200, 399, 799)},
	{From: "KHI", To: "SKT", Duration: "1h 45m", BasePrice: fares(125, 210, 419, 839)},
	{From: "LHE", To: "ISB", Duration: "1h 00m", BasePrice: fares(100, 170, 339, 679)},
	{From: "ISB", To: "LHE", Duration: "1h 00m", BasePrice: fares(105, 175, 349, 699)},
}

var aircraftTypes = []aircraftSpec{
	{
		Type:  "Boeing 787-9",
		Seats: seats(50, 20, 15, 8),
		Layout: map[models.TravelClass]cabinLayout{
			models.ClassFirst:    {Rows: 2, SeatsPerRow: 4},
			models.ClassBusiness: {Rows: 5, SeatsPerRow: 6},
			models.ClassPremium:  {Rows: 3, SeatsPerRow: 6},
			models.ClassEconomy:  {Rows: 25, SeatsPerRow: 9},
		},
	},
	{
		Type:  "Airbus A350",
		Seats: seats(45, 18, 12, 6),
		Layout: map[models.TravelClass]cabinLayout{
			models.ClassFirst:    {Rows: 2, SeatsPerRow: 4},
			models.ClassBusiness: {Rows: 4, SeatsPerRow: 6},
			models.ClassPremium:  {Rows: 3, SeatsPerRow: 6},
			models.ClassEconomy:  {Rows: 28, SeatsPerRow: 9},
		},
	},
	{
		Type:  "Boeing 777-300ER",
		Seats: seats(60, 25, 20, 10),
		Layout: map[models.TravelClass]cabinLayout{
			models.ClassFirst:    {Rows: 3, SeatsPerRow: 4},
			models.ClassBusiness: {Rows: 6, SeatsPerRow: 6},
			models.ClassPremium:  {Rows: 4, SeatsPerRow: 7},
			models.ClassEconomy:  {Rows: 30, SeatsPerRow: 10},
		},
	},
	// No bespoke layouts for the jumbos; they fall back to the 787 plan.
	{Type: "Airbus A380", Seats: seats(80, 35, 25, 12)},
	{Type: "Boeing 747-8", Seats: seats(70, 30, 22, 14)},
}

func fares(economy, premium, business, first float64) map[models.TravelClass]float64 {
	return map[models.TravelClass]float64{
		models.ClassEconomy:  economy,
		models.ClassPremium:  premium,
		models.ClassBusiness: business,
		models.ClassFirst:    first,
	}
}

func seats(economy, premium, business, first int) map[models.TravelClass]int {
	return map[models.TravelClass]int{
		models.ClassEconomy:  economy,
		models.ClassPremium:  premium,
		models.ClassBusiness: business,
		models.ClassFirst:    first,
	}
}

// Options controls catalog generation
type Options struct {
	Seed int64
	Year int // schedule year, flights cover October 1-30
	Days int // number of days from October 1, capped at 30
}

// Generate builds the seeded flight inventory. The same options always
// produce the same catalog, including seat maps and occupancy.
func Generate(opts Options) []*models.Flight {
	rng := rand.New(rand.NewSource(opts.Seed))

	days := opts.Days
	if days <= 0 || days > 30 {
		days = 30
	}

	var flights []*models.Flight
	counter := 1

	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%d-10-%02d", opts.Year, day)
		for _, route := range routes {
			flightsPerDay := 2 + rng.Intn(3)
			for slot := 0; slot < flightsPerDay; slot++ {
				aircraft := aircraftTypes[rng.Intn(len(aircraftTypes))]

				// departures spread across the day with some jitter
				baseHour := slot * 24 / flightsPerDay
				hour := (baseHour + rng.Intn(3)) % 24
				minute := rng.Intn(60)
				departure := fmt.Sprintf("%02d:%02d", hour, minute)
				arrival := arrivalTime(hour, minute, route.Duration)

				// +/- 20% price variation per departure
				variation := 0.8 + rng.Float64()*0.4
				baseFares := make(map[models.TravelClass]float64, len(route.BasePrice))
				for cabin, price := range route.BasePrice {
					baseFares[cabin] = math.Round(price * variation)
				}

				// 80-100% of capacity on sale
				available := make(map[models.TravelClass]int, len(aircraft.Seats))
				for cabin, capacity := range aircraft.Seats {
					available[cabin] = int(float64(capacity) * (0.8 + rng.Float64()*0.2))
				}

				id := fmt.Sprintf("SL%03d", counter)
				flights = append(flights, &models.Flight{
					ID:             id,
					FlightNumber:   fmt.Sprintf("SL %03d", counter),
					Airline:        airlineName,
					Aircraft:       aircraft.Type,
					Origin:         route.From,
					Destination:    route.To,
					DepartureTime:  departure,
					ArrivalTime:    arrival,
					Duration:       route.Duration,
					Date:           date,
					AvailableSeats: available,
					BaseFares:      baseFares,
					Taxes:          float64(50 + rng.Intn(200)),
					Surcharges:     float64(25 + rng.Intn(100)),
					Amenities:      defaultAmenities,
					Status:         models.FlightStatusActive,
					SeatMap:        buildSeatMap(aircraft, rng),
				})
				counter++
			}
		}
	}

	return flights
}

// arrivalTime adds a "XhYm" duration to a departure, wrapping past midnight
func arrivalTime(hour, minute int, duration string) string {
	var dh, dm int
	fmt.Sscanf(duration, "%dh %dm", &dh, &dm)
	arrHour := (hour + dh + (minute+dm)/60) % 24
	arrMinute := (minute + dm) % 60
	return fmt.Sprintf("%02d:%02d", arrHour, arrMinute)
}

// buildSeatMap lays out every cabin of the aircraft, typing special seats and
// rolling initial occupancy
func buildSeatMap(aircraft aircraftSpec, rng *rand.Rand) models.SeatMap {
	layout := aircraft.Layout
	if layout == nil {
		layout = aircraftTypes[0].Layout
	}

	seatMap := make(models.SeatMap, len(layout))
	for _, cabin := range models.TravelClasses {
		plan, ok := layout[cabin]
		if !ok {
			continue
		}
		rows := make([][]models.Seat, 0, plan.Rows)
		for row := 1; row <= plan.Rows; row++ {
			rowSeats := make([]models.Seat, 0, plan.SeatsPerRow)
			for col := 0; col < plan.SeatsPerRow; col++ {
				letter := string(rune('A' + col))
				seat := models.Seat{
					ID:     fmt.Sprintf("%d%s", row, letter),
					Row:    row,
					Column: letter,
					Type:   seatType(row-1, col, plan.SeatsPerRow),
					Status: models.SeatStatusAvailable,
				}
				// roughly 75% of seats start occupied: 40% male, 35% female
				roll := rng.Float64()
				if roll < 0.4 {
					seat.Status = models.SeatStatusOccupiedMale
					seat.OccupiedBy = "male"
					seat.Gender = "male"
				} else if roll < 0.75 {
					seat.Status = models.SeatStatusOccupiedFemale
					seat.OccupiedBy = "female"
					seat.Gender = "female"
				}
				rowSeats = append(rowSeats, seat)
			}
			rows = append(rows, rowSeats)
		}
		seatMap[cabin] = rows
	}
	return seatMap
}

// seatType classifies a seat: front rows and the block before the exit rows
// get extra legroom, exit rows override that, window and aisle positions fill
// in for whatever is still standard. rowIdx is zero-based within the cabin.
func seatType(rowIdx, colIdx, rowLen int) models.SeatType {
	t := models.SeatTypeStandard
	if rowIdx < 3 || (rowIdx > 10 && rowIdx < 13) {
		t = models.SeatTypeExtraLegroom
	}
	if rowIdx == 12 || rowIdx == 13 {
		t = models.SeatTypeEmergencyExit
	}
	if colIdx == 0 || colIdx == rowLen-1 {
		if t == models.SeatTypeStandard {
			t = models.SeatTypeWindow
		}
	} else if colIdx == 2 || colIdx == rowLen-3 {
		if t == models.SeatTypeStandard {
			t = models.SeatTypeAisle
		}
	}
	return t
}
