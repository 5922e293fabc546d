package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/skylux/booking-backend/internal/store"
)

// CronService manages scheduled background jobs
type CronService struct {
	cron      *cron.Cron
	promos    *store.PromoStore
	giftCards *store.GiftCardStore
}

// NewCronService creates a new CronService
func NewCronService(promos *store.PromoStore, giftCards *store.GiftCardStore) *CronService {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronService{
		cron:      c,
		promos:    promos,
		giftCards: giftCards,
	}
}

// Start starts all cron jobs
func (s *CronService) Start() error {
	log.Println("Starting cron service...")

	// Job 1: Deactivate expired promo codes daily at 2 AM
	// Cron format: second minute hour day month weekday
	// "0 0 2 * * *" = At 2:00 AM every day
	_, err := s.cron.AddFunc("0 0 2 * * *", s.expirePromoCodesJob)
	if err != nil {
		return fmt.Errorf("failed to schedule promo expiry job: %w", err)
	}
	log.Println("✓ Scheduled: Expire promo codes (Daily at 2:00 AM)")

	// Job 2: Deactivate expired gift cards daily at 3 AM
	// "0 0 3 * * *" = At 3:00 AM every day
	_, err = s.cron.AddFunc("0 0 3 * * *", s.expireGiftCardsJob)
	if err != nil {
		return fmt.Errorf("failed to schedule gift card expiry job: %w", err)
	}
	log.Println("✓ Scheduled: Expire gift cards (Daily at 3:00 AM)")

	// Start the cron scheduler
	s.cron.Start()
	log.Println("✓ Cron service started successfully")

	return nil
}

// Stop stops all cron jobs
func (s *CronService) Stop() {
	log.Println("Stopping cron service...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("✓ Cron service stopped")
}

// expirePromoCodesJob deactivates promo codes past their validity window
func (s *CronService) expirePromoCodesJob() {
	log.Println("[CRON] Starting promo expiry job...")
	startTime := time.Now()

	expired := s.promos.DeactivateExpired(time.Now())

	duration := time.Since(startTime)
	log.Printf("[CRON] ✓ Deactivated %d expired promo codes in %v\n", expired, duration)
}

// expireGiftCardsJob deactivates gift cards past their expiry date
func (s *CronService) expireGiftCardsJob() {
	log.Println("[CRON] Starting gift card expiry job...")
	startTime := time.Now()

	expired := s.giftCards.DeactivateExpired(time.Now())

	duration := time.Since(startTime)
	log.Printf("[CRON] ✓ Deactivated %d expired gift cards in %v\n", expired, duration)
}

// RunExpiryNow runs both expiry jobs immediately (for testing)
func (s *CronService) RunExpiryNow() error {
	log.Println("[MANUAL] Running expiry jobs now...")
	s.expirePromoCodesJob()
	s.expireGiftCardsJob()
	return nil
}

// GetJobStatus returns the status of scheduled jobs
func (s *CronService) GetJobStatus() map[string]interface{} {
	entries := s.cron.Entries()

	jobs := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		jobs = append(jobs, map[string]interface{}{
			"id":       entry.ID,
			"next_run": entry.Next,
			"prev_run": entry.Prev,
		})
	}

	return map[string]interface{}{
		"running":   len(entries) > 0,
		"job_count": len(entries),
		"jobs":      jobs,
	}
}
