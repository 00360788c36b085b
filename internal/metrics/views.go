package metrics

import (
	"sort"

	"goldboard/internal/dataset"
	"goldboard/internal/model"
)

// TopBySell returns the n records with the greatest sell price, descending.
// The sort is stable, so ties keep their original order; n larger than the
// set returns the whole set.
func TopBySell(records []model.PriceRecord, n int) []model.PriceRecord {
	sorted := make([]model.PriceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SellPrice.GreaterThan(sorted[j].SellPrice)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// BuildRecordViews pairs each current record with its previous-period
// counterpart (matched by product code, first match wins) and materializes
// the per-record metrics. A record without a counterpart gets
// HasPrevious=false and nil Change/ChangePercent; the distinction between
// "no comparison" and "unchanged price" is kept explicit.
func BuildRecordViews(current, previous []model.PriceRecord) []model.RecordView {
	views := make([]model.RecordView, 0, len(current))
	for _, rec := range current {
		view := model.RecordView{
			PriceRecord: rec,
			Spread:      Spread(rec),
		}
		if prev, ok := dataset.ByCode(previous, rec.ProductCode); ok {
			view.HasPrevious = true
			change := Change(rec, prev)
			view.Change = &change
			if pct, ok := ChangePercent(rec, prev); ok {
				view.ChangePercent = &pct
			}
		}
		views = append(views, view)
	}
	return views
}
