package collector

import (
	"context"

	"goldboard/internal/model"
)

// Fetcher defines the interface for fetching a batch of gold quotations.
// Implementations stamp each record with the quotation date.
type Fetcher interface {
	FetchQuotes(ctx context.Context) ([]model.PriceRecord, error)
	Name() string
}
