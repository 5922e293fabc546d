package services

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

// seatUpgradePricing is the upgrade fee table per cabin and seat type.
// Missing combinations (an emergency exit in first class, say) cost nothing.
var seatUpgradePricing = map[models.TravelClass]map[models.SeatType]float64{
	models.ClassEconomy: {
		models.SeatTypeExtraLegroom:  50,
		models.SeatTypeEmergencyExit: 75,
		models.SeatTypeWindow:        25,
		models.SeatTypeAisle:         25,
	},
	models.ClassPremium: {
		models.SeatTypeExtraLegroom:  75,
		models.SeatTypeEmergencyExit: 100,
		models.SeatTypeWindow:        35,
		models.SeatTypeAisle:         35,
	},
	models.ClassBusiness: {
		models.SeatTypeExtraLegroom: 100,
		models.SeatTypeWindow:       50,
		models.SeatTypeAisle:        50,
	},
	models.ClassFirst: {
		models.SeatTypeWindow: 75,
		models.SeatTypeAisle:  75,
	},
}

// SeatUpgradePrice returns the upgrade fee for a seat type in a cabin.
// Unknown cabins price like economy.
func SeatUpgradePrice(cabin models.TravelClass, seatType models.SeatType) float64 {
	pricing, ok := seatUpgradePricing[cabin]
	if !ok {
		pricing = seatUpgradePricing[models.ClassEconomy]
	}
	return pricing[seatType]
}

// FareService prices flights: base fares, taxes and surcharges, seat
// upgrades, and promo discounts composed into full quotes. Quoting never
// consumes promo usage; only the booking flow redeems codes.
type FareService struct {
	flights *store.FlightStore
	promos  *store.PromoStore
	log     *logrus.Logger
}

// NewFareService creates a fare service over the flight catalog and promo ledger
func NewFareService(flights *store.FlightStore, promos *store.PromoStore, log *logrus.Logger) *FareService {
	return &FareService{flights: flights, promos: promos, log: log}
}

// BaseFare prices the cabin's base fare for a party. Unknown cabins fare 0.
func (s *FareService) BaseFare(flightID string, class models.TravelClass, passengers int) (models.BaseFareResult, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return models.BaseFareResult{}, err
	}

	perPerson := flight.BaseFare(class)
	return models.BaseFareResult{
		BaseFarePerPerson: perPerson,
		Passengers:        passengers,
		TotalBaseFare:     perPerson * float64(passengers),
		Currency:          models.Currency,
	}, nil
}

// TaxesAndSurcharges itemises the flight's per-person taxes and surcharges
// for a party
func (s *FareService) TaxesAndSurcharges(flightID string, passengers int) (models.TaxSurchargeResult, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return models.TaxSurchargeResult{}, err
	}

	totalTaxes := flight.Taxes * float64(passengers)
	totalSurcharges := flight.Surcharges * float64(passengers)
	return models.TaxSurchargeResult{
		Breakdown: models.TaxSurchargeBreakdown{
			TaxesPerPerson:          flight.Taxes,
			SurchargesPerPerson:     flight.Surcharges,
			TotalTaxes:              totalTaxes,
			TotalSurcharges:         totalSurcharges,
			TotalTaxesAndSurcharges: totalTaxes + totalSurcharges,
		},
		Passengers: passengers,
		Currency:   models.Currency,
	}, nil
}

// SeatUpgradeFare prices one seat's upgrade fee. The cabin comes from where
// the seat actually sits in the seat map, not from the caller's claim.
func (s *FareService) SeatUpgradeFare(flightID, seatID string) (models.SeatUpgradeResult, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return models.SeatUpgradeResult{}, err
	}

	seat, cabin, ok := flight.SeatMap.FindSeat(seatID)
	if !ok {
		return models.SeatUpgradeResult{}, store.ErrSeatNotFound
	}

	return models.SeatUpgradeResult{
		SeatID:     seatID,
		SeatType:   seat.Type,
		Cabin:      cabin,
		UpgradeFee: SeatUpgradePrice(cabin, seat.Type),
		Currency:   models.Currency,
	}, nil
}

// TotalFare composes the full quote for one flight. The travel class is
// derived from the cabin of the first selected seat, defaulting to economy
// when no seats were chosen. A promo code that fails validation is ignored
// rather than failing the quote.
func (s *FareService) TotalFare(flightID string, passengers []models.Passenger, selectedSeats []models.SeatSelection, promoCode string) (*models.FareQuote, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	class := models.ClassEconomy
	if len(selectedSeats) > 0 {
		if _, cabin, ok := flight.SeatMap.FindSeat(selectedSeats[0].SeatID); ok {
			class = cabin
		}
	}

	baseFare, err := s.BaseFare(flightID, class, len(passengers))
	if err != nil {
		return nil, err
	}
	taxes, err := s.TaxesAndSurcharges(flightID, len(passengers))
	if err != nil {
		return nil, err
	}

	var totalUpgrades float64
	upgradeDetails := []models.SeatUpgradeDetail{}
	for _, sel := range selectedSeats {
		upgrade, err := s.SeatUpgradeFare(flightID, sel.SeatID)
		if err != nil {
			continue // unknown seats contribute nothing, matching lenient quoting
		}
		totalUpgrades += upgrade.UpgradeFee
		upgradeDetails = append(upgradeDetails, models.SeatUpgradeDetail{
			PassengerID: sel.PassengerID,
			SeatID:      sel.SeatID,
			SeatType:    upgrade.SeatType,
			UpgradeFee:  upgrade.UpgradeFee,
		})
	}

	subtotal := baseFare.TotalBaseFare + taxes.Breakdown.TotalTaxesAndSurcharges + totalUpgrades

	var discount float64
	var promoDetails *models.PromoSummary
	if promoCode != "" {
		if d, summary, err := s.promos.Discount(promoCode, subtotal, models.PromoContext{}); err == nil {
			discount = d
			promoDetails = &summary
		} else {
			s.log.WithFields(logrus.Fields{
				"promo_code": promoCode,
				"flight_id":  flightID,
			}).WithError(err).Debug("Promo code not applied to quote")
		}
	}

	return &models.FareQuote{
		FareBreakdown: models.FareBreakdown{
			BaseFare:     baseFare.TotalBaseFare,
			Taxes:        taxes.Breakdown.TotalTaxes,
			Surcharges:   taxes.Breakdown.TotalSurcharges,
			SeatUpgrades: totalUpgrades,
			Subtotal:     subtotal,
			Discount:     discount,
			TotalFare:    math.Max(0, subtotal-discount),
		},
		SeatUpgradeDetails: upgradeDetails,
		PromoDetails:       promoDetails,
		Passengers:         len(passengers),
		Currency:           models.Currency,
	}, nil
}

// MultiFlightFare quotes several legs together. Each leg is priced on its
// own, then the promo code discounts the combined subtotal once.
func (s *FareService) MultiFlightFare(flights []models.FlightSelection, passengers []models.Passenger, seatSelections []models.SeatSelection, promoCode string) (*models.MultiFlightQuote, error) {
	var totalBase, totalTaxes, totalSurcharges, totalUpgrades float64
	breakdowns := []models.FlightFareBreakdown{}

	for i, selection := range flights {
		flightSeats := make([]models.SeatSelection, 0, len(seatSelections))
		for _, sel := range seatSelections {
			if sel.FlightID == selection.FlightID {
				flightSeats = append(flightSeats, sel)
			}
		}

		quote, err := s.TotalFare(selection.FlightID, passengers, flightSeats, "")
		if err != nil {
			return nil, err
		}
		totalBase += quote.FareBreakdown.BaseFare
		totalTaxes += quote.FareBreakdown.Taxes
		totalSurcharges += quote.FareBreakdown.Surcharges
		totalUpgrades += quote.FareBreakdown.SeatUpgrades

		breakdowns = append(breakdowns, models.FlightFareBreakdown{
			FlightIndex:   i + 1,
			FlightID:      selection.FlightID,
			TravelClass:   selection.TravelClass,
			FareBreakdown: quote.FareBreakdown,
		})
	}

	subtotal := totalBase + totalTaxes + totalSurcharges + totalUpgrades

	var discount float64
	var promoDetails *models.PromoSummary
	if promoCode != "" {
		if d, summary, err := s.promos.Discount(promoCode, subtotal, models.PromoContext{}); err == nil {
			discount = d
			promoDetails = &summary
		}
	}

	return &models.MultiFlightQuote{
		FareBreakdown: models.FareBreakdown{
			BaseFare:     totalBase,
			Taxes:        totalTaxes,
			Surcharges:   totalSurcharges,
			SeatUpgrades: totalUpgrades,
			Subtotal:     subtotal,
			Discount:     discount,
			TotalFare:    math.Max(0, subtotal-discount),
		},
		FlightBreakdowns: breakdowns,
		PromoDetails:     promoDetails,
		Passengers:       len(passengers),
		Currency:         models.Currency,
	}, nil
}

// Comparison prices every cabin with open seats for a party, with savings
// relative to economy
func (s *FareService) Comparison(flightID string, passengers int) (map[models.TravelClass]models.FareComparison, error) {
	flight, err := s.flights.GetByID(flightID)
	if err != nil {
		return nil, err
	}

	economyTotal := flight.TotalFare(models.ClassEconomy, passengers)
	comparison := make(map[models.TravelClass]models.FareComparison)
	for _, class := range models.TravelClasses {
		if flight.SeatsAvailable(class) <= 0 {
			continue
		}
		savings := 0.0
		if class != models.ClassEconomy {
			savings = economyTotal - flight.TotalFare(class, passengers)
		}
		comparison[class] = models.FareComparison{
			BaseFare:       flight.BaseFare(class) * float64(passengers),
			TotalFare:      flight.TotalFare(class, passengers),
			AvailableSeats: flight.SeatsAvailable(class),
			Savings:        savings,
		}
	}
	return comparison, nil
}
