// Package index maintains the set of distinct quotation dates, newest first.
package index

import (
	"errors"
	"sort"

	"goldboard/internal/model"
)

// ErrEmptyIndex is returned by lookups on an index with no dates. Hitting it
// means the caller navigated before loading any data, which the session
// guards against.
var ErrEmptyIndex = errors.New("date index is empty")

// Index is an immutable, descending-sorted sequence of distinct dates.
// Rebuilt whenever the dataset is loaded.
type Index struct {
	dates []model.Date
}

// Build collects the distinct dates in records and sorts them by calendar
// value, most recent first.
func Build(records []model.PriceRecord) Index {
	seen := make(map[model.Date]struct{}, len(records))
	var dates []model.Date
	for _, rec := range records {
		if _, ok := seen[rec.Date]; ok {
			continue
		}
		seen[rec.Date] = struct{}{}
		dates = append(dates, rec.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })
	return Index{dates: dates}
}

// Len returns the number of distinct dates.
func (ix Index) Len() int { return len(ix.dates) }

// Dates returns a copy of the index contents, newest first.
func (ix Index) Dates() []model.Date {
	out := make([]model.Date, len(ix.dates))
	copy(out, ix.dates)
	return out
}

// At returns the date at position i (0 = newest).
func (ix Index) At(i int) model.Date { return ix.dates[i] }

// Newest returns the most recent date, if any.
func (ix Index) Newest() (model.Date, bool) {
	if len(ix.dates) == 0 {
		return model.Date{}, false
	}
	return ix.dates[0], true
}

// Oldest returns the least recent date, if any.
func (ix Index) Oldest() (model.Date, bool) {
	if len(ix.dates) == 0 {
		return model.Date{}, false
	}
	return ix.dates[len(ix.dates)-1], true
}

// Position returns the position of d in the index, or false when d is not a
// member.
func (ix Index) Position(d model.Date) (int, bool) {
	for i, date := range ix.dates {
		if date == d {
			return i, true
		}
	}
	return -1, false
}

// Nearest returns the index entry with the smallest absolute calendar
// distance to target. The scan runs newest-first and only a strictly smaller
// distance displaces the candidate, so ties favor the more recent date.
func (ix Index) Nearest(target model.Date) (model.Date, error) {
	if len(ix.dates) == 0 {
		return model.Date{}, ErrEmptyIndex
	}
	best := ix.dates[0]
	bestDist := best.DistanceTo(target)
	for _, d := range ix.dates[1:] {
		if dist := d.DistanceTo(target); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best, nil
}
