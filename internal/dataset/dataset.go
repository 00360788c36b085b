// Package dataset owns the loaded quotation records and resolves the
// record-sets the dashboard works with: all records for one date, and the
// records of the chronologically previous date.
package dataset

import (
	"goldboard/internal/index"
	"goldboard/internal/model"
)

// Dataset is an ordered sequence of price records, insertion order = file
// order. Loaded once at startup and read-only afterwards. Duplicate
// (date, productCode) pairs are not rejected; lookups resolve them
// first-match-wins.
type Dataset struct {
	records []model.PriceRecord
}

// FromRecords wraps an already-parsed record sequence.
func FromRecords(records []model.PriceRecord) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Records returns the full record sequence in file order.
func (ds *Dataset) Records() []model.PriceRecord { return ds.records }

// ForDate returns all records quoted on d, in dataset order. No match is an
// empty result, not an error.
func (ds *Dataset) ForDate(d model.Date) []model.PriceRecord {
	var out []model.PriceRecord
	for _, rec := range ds.records {
		if rec.Date == d {
			out = append(out, rec)
		}
	}
	return out
}

// PreviousOf returns the record-set of the date immediately older than d in
// the index. When d is the oldest entry, or not an index member at all, the
// result is empty.
func (ds *Dataset) PreviousOf(ix index.Index, d model.Date) []model.PriceRecord {
	pos, ok := ix.Position(d)
	if !ok || pos >= ix.Len()-1 {
		return nil
	}
	return ds.ForDate(ix.At(pos + 1))
}

// ByCode returns the first record in records with the given product code.
// First match wins on duplicates.
func ByCode(records []model.PriceRecord, code string) (model.PriceRecord, bool) {
	for _, rec := range records {
		if rec.ProductCode == code {
			return rec, true
		}
	}
	return model.PriceRecord{}, false
}
