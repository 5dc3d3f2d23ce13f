package infra

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"smarttradex/internal/domain"
	"smarttradex/internal/usecase"
)

// Scheduler periodically refreshes the quote cache for every supported
// symbol so chart requests stay off the upstream's rate limits
type Scheduler struct {
	cron           *cron.Cron
	market         *usecase.MarketService
	refreshMinutes int
}

// NewScheduler creates a new scheduler
func NewScheduler(market *usecase.MarketService, refreshMinutes int) *Scheduler {
	if refreshMinutes <= 0 {
		refreshMinutes = 15
	}
	return &Scheduler{
		cron:           cron.New(),
		market:         market,
		refreshMinutes: refreshMinutes,
	}
}

// Start warms the cache once and schedules the periodic refresh
func (s *Scheduler) Start() error {
	log.Printf("Starting quote refresh scheduler (every %dm)...", s.refreshMinutes)

	spec := fmt.Sprintf("@every %dm", s.refreshMinutes)
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.RunNow(); err != nil {
			log.Printf("ERROR: Scheduled quote refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Warm the cache in the background so startup stays fast
	go func() {
		if err := s.RunNow(); err != nil {
			log.Printf("[WARN] Initial quote warmup incomplete: %v", err)
		}
	}()

	s.cron.Start()
	log.Println("[OK] Scheduler started successfully")
	return nil
}

// RunNow refreshes every supported symbol immediately. Per-symbol
// failures are collected so one dead upstream doesn't starve the rest.
func (s *Scheduler) RunNow() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var failed []string
	for _, symbol := range domain.SupportedAssets {
		if err := s.market.Refresh(ctx, symbol); err != nil {
			log.Printf("[WARN] Quote refresh failed for %s: %v", symbol, err)
			failed = append(failed, symbol)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("refresh failed for symbols: %v", failed)
	}

	return nil
}

// Stop stops the scheduler gracefully
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	s.cron.Stop()
	log.Println("[OK] Scheduler stopped")
}
