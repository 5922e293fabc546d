// Package store holds the in-memory repositories backing the booking system.
// Everything lives in process memory; restarting the server resets all state.
package store

import "errors"

var (
	// ErrFlightNotFound is returned when a flight id is unknown
	ErrFlightNotFound = errors.New("flight not found")

	// ErrSeatNotFound is returned when a seat id does not exist on the flight
	ErrSeatNotFound = errors.New("seat not found")

	// ErrSeatUnavailable is returned when a seat is already taken
	ErrSeatUnavailable = errors.New("seat is not available")

	// ErrNotEnoughSeats is returned when a cabin cannot hold the party
	ErrNotEnoughSeats = errors.New("not enough seats available")

	// ErrBookingNotFound is returned when neither PNR nor id matches
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingCancelled is returned when an operation needs a live booking
	ErrBookingCancelled = errors.New("cannot update cancelled booking")

	// ErrAlreadyCancelled is returned on repeat cancellation
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrPromoNotFound is returned when a promo code is unknown
	ErrPromoNotFound = errors.New("promo code not found")

	// ErrPromoExists is returned when creating a duplicate promo code
	ErrPromoExists = errors.New("promo code already exists")

	// ErrGiftCardNotFound is returned when a gift card code is unknown
	ErrGiftCardNotFound = errors.New("invalid gift card code")

	// ErrPNRExhausted is returned when PNR generation keeps colliding
	ErrPNRExhausted = errors.New("could not generate a unique PNR")

	// ErrCodeExhausted is returned when gift card code generation keeps colliding
	ErrCodeExhausted = errors.New("could not generate a unique gift card code")
)
