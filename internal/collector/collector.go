package collector

import (
	"context"
	"fmt"
	"log"

	"goldboard/internal/model"
	"goldboard/internal/recorder"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Records []model.PriceRecord
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuotes(_ context.Context) ([]model.PriceRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// Collector orchestrates one crawl: fetch the quote batch and hand it to the
// recorder sinks.
type Collector struct {
	Fetcher  Fetcher
	Recorder recorder.Recorder
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, rec recorder.Recorder) *Collector {
	return &Collector{Fetcher: fetcher, Recorder: rec}
}

// Run performs a single fetch-and-record cycle.
func (c *Collector) Run(ctx context.Context) error {
	records, err := c.Fetcher.FetchQuotes(ctx)
	if err != nil {
		return fmt.Errorf("collect from %s: %w", c.Fetcher.Name(), err)
	}
	log.Printf("[INFO] collected %d quotes from %s", len(records), c.Fetcher.Name())

	if err := c.Recorder.Record(records); err != nil {
		return fmt.Errorf("record quotes: %w", err)
	}
	return nil
}
