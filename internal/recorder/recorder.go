// Package recorder persists crawled quotations. The CSV sink feeds the
// dashboard's own loader; the SQLite sink keeps a query-friendly history.
package recorder

import "goldboard/internal/model"

// Recorder persists a batch of quotations.
type Recorder interface {
	Record(records []model.PriceRecord) error
	Close() error
}
