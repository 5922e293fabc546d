package services

import (
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// testFlight builds a JFK-LAX flight with known fares and a small hand-built
// seat map: two business rows (1-2, A-D) and three economy rows (12-14, A-F).
func testFlight() *models.Flight {
	seatMap := models.SeatMap{
		models.ClassBusiness: businessRows(),
		models.ClassEconomy:  economyRows(),
	}
	return &models.Flight{
		ID:            "SL001",
		FlightNumber:  "SL 001",
		Airline:       "SkyLux Airlines",
		Aircraft:      "Boeing 787-9",
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureTime: "08:00",
		ArrivalTime:   "11:30",
		Duration:      "6h 30m",
		Date:          "2026-10-05",
		AvailableSeats: map[models.TravelClass]int{
			models.ClassEconomy:  30,
			models.ClassPremium:  10,
			models.ClassBusiness: 8,
			models.ClassFirst:    4,
		},
		BaseFares: map[models.TravelClass]float64{
			models.ClassEconomy:  299,
			models.ClassPremium:  550,
			models.ClassBusiness: 1200,
			models.ClassFirst:    2500,
		},
		Taxes:      50,
		Surcharges: 25,
		Status:     models.FlightStatusActive,
		SeatMap:    seatMap,
	}
}

func businessRows() [][]models.Seat {
	rows := [][]models.Seat{}
	for row := 1; row <= 2; row++ {
		seats := []models.Seat{}
		for _, col := range []string{"A", "B", "C", "D"} {
			seatType := models.SeatTypeStandard
			if col == "A" || col == "D" {
				seatType = models.SeatTypeWindow
			}
			seats = append(seats, models.Seat{
				ID:     seatID(row, col),
				Row:    row,
				Column: col,
				Type:   seatType,
				Status: models.SeatStatusAvailable,
			})
		}
		rows = append(rows, seats)
	}
	return rows
}

func economyRows() [][]models.Seat {
	rows := [][]models.Seat{}
	for row := 12; row <= 14; row++ {
		seats := []models.Seat{}
		for _, col := range []string{"A", "B", "C", "D", "E", "F"} {
			seatType := models.SeatTypeStandard
			switch {
			case row == 13:
				seatType = models.SeatTypeEmergencyExit
			case col == "A" || col == "F":
				seatType = models.SeatTypeWindow
			case col == "C" || col == "D":
				seatType = models.SeatTypeAisle
			}
			seats = append(seats, models.Seat{
				ID:     seatID(row, col),
				Row:    row,
				Column: col,
				Type:   seatType,
				Status: models.SeatStatusAvailable,
			})
		}
		rows = append(rows, seats)
	}
	return rows
}

func seatID(row int, col string) string {
	return strconv.Itoa(row) + col
}

func testPassengers(n int) []models.Passenger {
	passengers := make([]models.Passenger, 0, n)
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	genders := []string{"female", "male", "female", "male"}
	for i := 0; i < n; i++ {
		passengers = append(passengers, models.Passenger{
			ID:          "passenger_" + strconv.Itoa(i+1),
			FirstName:   names[i%len(names)],
			LastName:    "Traveller",
			DateOfBirth: "1990-01-15",
			Gender:      genders[i%len(genders)],
			Email:       "traveller@example.com",
			Phone:       "12025550123",
		})
	}
	return passengers
}

func testStores() (*store.FlightStore, *store.PromoStore) {
	flights := store.NewFlightStore([]*models.Flight{testFlight()})
	promos := store.NewPromoStore(store.SeedPromoCodes(time.Now().Year()))
	return flights, promos
}
