package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Flight catalog generation
	Catalog CatalogConfig

	// Booking behaviour
	Booking BookingConfig

	// Ticket artifact output
	Tickets TicketConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string
	Environment string // development, staging, production
	LogLevel    string // debug, info, warn, error
}

// CatalogConfig controls the generated flight catalog
type CatalogConfig struct {
	Seed int64 // RNG seed; same seed, same catalog
	Year int   // schedule year
	Days int   // days of schedule generated from October 1st
}

// BookingConfig holds booking-related configuration
type BookingConfig struct {
	StrictSeating  bool    // abort confirmation when any requested seat is taken
	RefundRate     float64 // fraction of the fare returned on cancellation
	PNRLength      int
	PNRMaxAttempts int // collision retries before confirmation fails
}

// TicketConfig holds e-ticket output configuration
type TicketConfig struct {
	Dir string // directory e-ticket files are written to
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Seed: int64(getEnvAsInt("CATALOG_SEED", 20251001)),
			Year: getEnvAsInt("CATALOG_YEAR", 2026),
			Days: getEnvAsInt("CATALOG_DAYS", 30),
		},
		Booking: BookingConfig{
			StrictSeating:  getEnvAsBool("BOOKING_STRICT_SEATING", false),
			RefundRate:     getEnvAsFloat("BOOKING_REFUND_RATE", 0.8),
			PNRLength:      getEnvAsInt("BOOKING_PNR_LENGTH", 6),
			PNRMaxAttempts: getEnvAsInt("BOOKING_PNR_MAX_ATTEMPTS", 25),
		},
		Tickets: TicketConfig{
			Dir: getEnv("TICKETS_DIR", "tickets"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Catalog.Days <= 0 {
		return fmt.Errorf("CATALOG_DAYS must be positive")
	}

	if c.Booking.RefundRate < 0 || c.Booking.RefundRate > 1 {
		return fmt.Errorf("BOOKING_REFUND_RATE must be between 0 and 1")
	}

	if c.Booking.PNRLength < 4 {
		return fmt.Errorf("BOOKING_PNR_LENGTH must be at least 4")
	}

	if c.Booking.PNRMaxAttempts <= 0 {
		return fmt.Errorf("BOOKING_PNR_MAX_ATTEMPTS must be positive")
	}

	if c.Tickets.Dir == "" {
		return fmt.Errorf("TICKETS_DIR is required")
	}

	return nil
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid float value for %s, using default: %g", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
