// Package scheduler drives the periodic quote crawl.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"goldboard/internal/collector"
)

// Scheduler runs the collector on a cron expression (with seconds).
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Ctx:       ctx,
	}
}

// Register adds the crawl task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.crawlTask); err != nil {
		return fmt.Errorf("register crawl task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the crawl immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.crawlTask()
}

func (s *Scheduler) crawlTask() {
	log.Println("[INFO] running quote crawl")
	if err := s.Collector.Run(s.Ctx); err != nil {
		log.Printf("[ERROR] quote crawl: %v", err)
	}
}
