// Package handlers exposes the booking API over gin. Every response carries
// a success flag; failures add the error message and nothing else.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

// validate backs the ad-hoc field checks handlers run outside request binding
var validate = validator.New()

// respondError translates an error into the {success:false} envelope with the
// HTTP status its kind deserves
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	var validationErr *models.ValidationError
	var promoErr *models.PromoError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &promoErr):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrFlightNotFound),
		errors.Is(err, store.ErrBookingNotFound),
		errors.Is(err, store.ErrSeatNotFound),
		errors.Is(err, store.ErrPromoNotFound),
		errors.Is(err, store.ErrGiftCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNotEnoughSeats):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrSeatUnavailable),
		errors.Is(err, store.ErrAlreadyCancelled),
		errors.Is(err, store.ErrBookingCancelled),
		errors.Is(err, store.ErrPromoExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondBadRequest rejects a request that failed binding
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
