package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/models"
	"github.com/skylux/booking-backend/internal/store"
)

// PromoHandler handles HTTP requests for promo codes and gift cards
type PromoHandler struct {
	promos    *store.PromoStore
	giftCards *store.GiftCardStore
	logger    *logrus.Logger
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(promos *store.PromoStore, giftCards *store.GiftCardStore, logger *logrus.Logger) *PromoHandler {
	return &PromoHandler{
		promos:    promos,
		giftCards: giftCards,
		logger:    logger,
	}
}

// ValidatePromo handles POST /api/bookings/promo/validate
// @Summary Validate a promo code
// @Description Check a code against booking details without consuming a use
// @Tags Promos
// @Accept json
// @Produce json
// @Param request body models.ValidatePromoRequest true "Code and booking details"
// @Success 200 {object} models.PromoSummary
// @Failure 400 {object} map[string]interface{} "Code not applicable"
// @Router /api/bookings/promo/validate [post]
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	var req models.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	summary, err := h.promos.Validate(req.Code, req.BookingDetails)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"promo":   summary,
	})
}

// ApplyPromo handles POST /api/bookings/promo/apply
// @Summary Apply a promo code
// @Description Redeem a code against a booking amount, consuming one use
// @Tags Promos
// @Accept json
// @Produce json
// @Param request body models.ApplyPromoRequest true "Code, booking, and amount"
// @Success 200 {object} models.PromoUsage
// @Failure 400 {object} map[string]interface{} "Code not applicable"
// @Router /api/bookings/promo/apply [post]
func (h *PromoHandler) ApplyPromo(c *gin.Context) {
	var req models.ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	usage, summary, err := h.promos.Apply(req.Code, req.BookingID, req.TotalAmount)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"code":       usage.Code,
		"booking_id": usage.BookingID,
		"discount":   usage.Discount,
	}).Info("Promo code applied")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"usage":   usage,
		"promo":   summary,
	})
}

// GetActivePromos handles GET /api/bookings/promo/active
// @Summary List active promo codes
// @Tags Promos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/bookings/promo/active [get]
func (h *PromoHandler) GetActivePromos(c *gin.Context) {
	promos := h.promos.ActiveCodes()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"promos":  promos,
		"count":   len(promos),
	})
}

// CreatePromo handles POST /api/bookings/promo/create
// @Summary Create a promo code
// @Tags Promos, Admin
// @Accept json
// @Produce json
// @Param promo body models.CreatePromoRequest true "Promo definition"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Code already exists"
// @Router /api/bookings/promo/create [post]
func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req models.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	promo := req.ToPromoCode(time.Now())
	if err := h.promos.Create(promo); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"promo":   promo.Summary(),
	})
}

// DeactivatePromo handles POST /api/bookings/promo/:code/deactivate
// @Summary Deactivate a promo code
// @Tags Promos, Admin
// @Produce json
// @Param code path string true "Promo code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Code not found"
// @Router /api/bookings/promo/{code}/deactivate [post]
func (h *PromoHandler) DeactivatePromo(c *gin.Context) {
	code := c.Param("code")
	if err := h.promos.Deactivate(code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Promo code " + code + " deactivated",
	})
}

// GetPromoStats handles GET /api/bookings/promo/stats/:code
// @Summary Get promo usage statistics
// @Tags Promos, Admin
// @Produce json
// @Param code path string true "Promo code"
// @Success 200 {object} models.PromoStats
// @Failure 404 {object} map[string]interface{} "Code not found"
// @Router /api/bookings/promo/stats/{code} [get]
func (h *PromoHandler) GetPromoStats(c *gin.Context) {
	stats, err := h.promos.Stats(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// GenerateGiftCard handles POST /api/bookings/gift-card/generate
// @Summary Purchase a gift card
// @Tags GiftCards
// @Accept json
// @Produce json
// @Param request body models.GenerateGiftCardRequest true "Amount and recipients"
// @Success 201 {object} models.GiftCardIssue
// @Router /api/bookings/gift-card/generate [post]
func (h *PromoHandler) GenerateGiftCard(c *gin.Context) {
	var req models.GenerateGiftCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	issue, err := h.giftCards.Generate(req.Amount, req.PurchaserEmail, req.RecipientEmail, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"code":   issue.Code,
		"amount": issue.Amount,
	}).Info("Gift card generated")

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"giftCard": issue,
	})
}

// ValidateGiftCard handles POST /api/bookings/gift-card/validate
// @Summary Validate a gift card
// @Tags GiftCards
// @Accept json
// @Produce json
// @Param request body models.GiftCardCodeRequest true "Card code"
// @Success 200 {object} models.GiftCardBalance
// @Failure 400 {object} map[string]interface{} "Card not redeemable"
// @Router /api/bookings/gift-card/validate [post]
func (h *PromoHandler) ValidateGiftCard(c *gin.Context) {
	var req models.GiftCardCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	balance, err := h.giftCards.Validate(req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"giftCard": balance,
	})
}

// GetGiftCardBalance handles GET /api/bookings/gift-card/balance/:code
// @Summary Get a gift card's balance
// @Tags GiftCards
// @Produce json
// @Param code path string true "Card code"
// @Success 200 {object} models.GiftCardBalance
// @Failure 404 {object} map[string]interface{} "Card not found"
// @Router /api/bookings/gift-card/balance/{code} [get]
func (h *PromoHandler) GetGiftCardBalance(c *gin.Context) {
	balance, err := h.giftCards.Balance(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": balance,
	})
}

// ApplyGiftCard handles POST /api/bookings/gift-card/apply
// @Summary Apply a gift card to a booking
// @Description Draw down the card, partially if the balance is short
// @Tags GiftCards
// @Accept json
// @Produce json
// @Param request body models.ApplyGiftCardRequest true "Code, booking, and amount"
// @Success 200 {object} models.GiftCardApplication
// @Failure 400 {object} map[string]interface{} "Card not redeemable"
// @Router /api/bookings/gift-card/apply [post]
func (h *PromoHandler) ApplyGiftCard(c *gin.Context) {
	var req models.ApplyGiftCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	application, err := h.giftCards.Apply(req.Code, req.BookingID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": application,
	})
}
