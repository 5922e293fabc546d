package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/skylux/booking-backend/internal/catalog"
	"github.com/skylux/booking-backend/internal/config"
	"github.com/skylux/booking-backend/internal/handlers"
	"github.com/skylux/booking-backend/internal/middleware"
	"github.com/skylux/booking-backend/internal/services"
	"github.com/skylux/booking-backend/internal/store"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting SkyLux Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Seed the in-memory stores
	logger.Info("Generating flight catalog...")
	flightStore := store.NewFlightStore(catalog.Generate(catalog.Options{
		Seed: cfg.Catalog.Seed,
		Year: cfg.Catalog.Year,
		Days: cfg.Catalog.Days,
	}))
	logger.Infof("Flight catalog ready: %d flights", flightStore.Count())

	bookingStore := store.NewBookingStore()
	promoStore := store.NewPromoStore(store.SeedPromoCodes(time.Now().Year()))
	giftCardStore := store.NewGiftCardStore()

	// Initialize services
	logger.Info("Initializing services...")
	fareService := services.NewFareService(flightStore, promoStore, logger)
	seatService := services.NewSeatService(flightStore, logger)
	searchService := services.NewSearchService(flightStore, logger)
	eticketService := services.NewETicketService(cfg.Tickets, logger)
	bookingService := services.NewBookingService(
		bookingStore,
		flightStore,
		promoStore,
		seatService,
		fareService,
		eticketService,
		cfg.Booking,
		logger,
	)

	// Initialize and start cron service
	cronService := services.NewCronService(promoStore, giftCardStore)
	if err := cronService.Start(); err != nil {
		logger.Fatalf("Failed to start cron service: %v", err)
	}
	logger.Info("✓ Cron service started - Promo and gift card expiry enabled")

	logger.Info("Services initialized")

	// Initialize handlers
	flightHandler := handlers.NewFlightHandler(searchService, flightStore, logger)
	seatHandler := handlers.NewSeatHandler(seatService, logger)
	fareHandler := handlers.NewFareHandler(fareService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, eticketService, logger)
	promoHandler := handlers.NewPromoHandler(promoStore, giftCardStore, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"flights":   flightStore.Count(),
			"bookings":  bookingStore.Count(),
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	})

	// Booking API routes
	api := router.Group("/api/bookings")
	{
		// Catalog & search
		api.GET("/airports", flightHandler.GetAirports)
		api.GET("/countries", flightHandler.GetCountries)
		api.POST("/search", flightHandler.SearchFlights)
		api.GET("/flight/:flightId", flightHandler.GetFlight)
		api.POST("/multi-city/search", flightHandler.BuildMultiCityItinerary)
		api.POST("/multi-city/validate", flightHandler.ValidateMultiCity)

		// Seats
		api.GET("/seat-map/:flightId", seatHandler.GetSeatMap)
		api.POST("/seat/assign", seatHandler.AssignSeat)
		api.POST("/seat/swap", seatHandler.SwapSeat)
		api.GET("/seat/status/:flightId/:seatId", seatHandler.GetSeatStatus)
		api.POST("/seat/auto-assign", seatHandler.AutoAssignSeats)

		// Fares
		api.POST("/fare/calculate", fareHandler.CalculateFare)
		api.POST("/fare/base", fareHandler.CalculateBaseFare)
		api.POST("/fare/seat-upgrade", fareHandler.CalculateSeatUpgrade)
		api.POST("/fare/multi-flight", fareHandler.CalculateMultiFlightFare)
		api.GET("/fare/comparison/:flightId/:passengers", fareHandler.GetFareComparison)

		// Bookings
		api.POST("/confirm", bookingHandler.ConfirmBooking)
		api.GET("/booking/:pnr", bookingHandler.GetBooking)
		api.GET("/booking/:pnr/summary", bookingHandler.GetBookingSummary)
		api.POST("/booking/:pnr/cancel", bookingHandler.CancelBooking)
		api.PUT("/booking/:pnr", bookingHandler.UpdateBooking)
		api.POST("/eticket/generate/:bookingId", bookingHandler.GenerateETicket)
		api.POST("/eticket/email", bookingHandler.EmailETicket)

		// Promos & gift cards
		api.POST("/promo/validate", promoHandler.ValidatePromo)
		api.POST("/promo/apply", promoHandler.ApplyPromo)
		api.GET("/promo/active", promoHandler.GetActivePromos)
		api.POST("/gift-card/generate", promoHandler.GenerateGiftCard)
		api.POST("/gift-card/validate", promoHandler.ValidateGiftCard)
		api.GET("/gift-card/balance/:code", promoHandler.GetGiftCardBalance)
		api.POST("/gift-card/apply", promoHandler.ApplyGiftCard)

		// Admin promo management
		admin := api.Group("/promo")
		{
			admin.POST("/create", promoHandler.CreatePromo)
			admin.POST("/:code/deactivate", promoHandler.DeactivatePromo)
			admin.GET("/stats/:code", promoHandler.GetPromoStats)
		}

		// Cron management (for testing)
		api.POST("/admin/cron/run-expiry", func(c *gin.Context) {
			cronService.RunExpiryNow()
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Expiry jobs triggered"})
		})
		api.GET("/admin/cron/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, cronService.GetJobStatus())
		})
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop cron service
	cronService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}
