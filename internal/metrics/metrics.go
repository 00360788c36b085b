// Package metrics computes the derived quantities behind every dashboard
// surface: per-record spread and period-over-period change, and record-set
// aggregates. All functions are pure; monetary math uses decimals so the
// 3-decimal display precision is exact.
package metrics

import (
	"errors"

	"github.com/shopspring/decimal"

	"goldboard/internal/model"
)

// ErrEmptySet is returned by aggregate functions on an empty record-set.
// The session never calls them with one; seeing this error is a caller bug.
var ErrEmptySet = errors.New("empty record set")

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// DisplayPrice scales a raw feed price to the display unit (divide by 1000,
// 3 decimals).
func DisplayPrice(raw decimal.Decimal) decimal.Decimal {
	return raw.Div(thousand).Round(3)
}

// Spread is the sell/buy gap in display units. A negative spread is passed
// through untouched.
func Spread(rec model.PriceRecord) decimal.Decimal {
	return rec.SellPrice.Sub(rec.BuyPrice).Div(thousand).Round(3)
}

// Change is the sell-price movement versus the previous-period counterpart,
// in display units. Callers must only invoke it when a counterpart exists.
func Change(rec, prev model.PriceRecord) decimal.Decimal {
	return rec.SellPrice.Sub(prev.SellPrice).Div(thousand).Round(3)
}

// ChangePercent is the sell-price movement as a percentage of the previous
// sell price, 1 decimal. ok is false when the previous sell price is zero:
// a data anomaly, reported as "no percentage available" rather than an error.
func ChangePercent(rec, prev model.PriceRecord) (pct decimal.Decimal, ok bool) {
	if prev.SellPrice.IsZero() {
		return decimal.Decimal{}, false
	}
	pct = rec.SellPrice.Sub(prev.SellPrice).Div(prev.SellPrice).Mul(hundred).Round(1)
	return pct, true
}

// MaxSell returns the record with the greatest sell price. Ties keep the
// first record in iteration order.
func MaxSell(records []model.PriceRecord) (model.PriceRecord, error) {
	if len(records) == 0 {
		return model.PriceRecord{}, ErrEmptySet
	}
	best := records[0]
	for _, rec := range records[1:] {
		if rec.SellPrice.GreaterThan(best.SellPrice) {
			best = rec
		}
	}
	return best, nil
}

// MinBuy returns the record with the least buy price. Ties keep the first
// record in iteration order.
func MinBuy(records []model.PriceRecord) (model.PriceRecord, error) {
	if len(records) == 0 {
		return model.PriceRecord{}, ErrEmptySet
	}
	best := records[0]
	for _, rec := range records[1:] {
		if rec.BuyPrice.LessThan(best.BuyPrice) {
			best = rec
		}
	}
	return best, nil
}

// WidestSpread returns the record with the largest spread, first wins on
// ties. It backs the spread-risk warning.
func WidestSpread(records []model.PriceRecord) (model.PriceRecord, error) {
	if len(records) == 0 {
		return model.PriceRecord{}, ErrEmptySet
	}
	best := records[0]
	bestSpread := Spread(best)
	for _, rec := range records[1:] {
		if s := Spread(rec); s.GreaterThan(bestSpread) {
			best = rec
			bestSpread = s
		}
	}
	return best, nil
}

// AverageSpread is the mean of (sell-buy)/1000 over the set, 3 decimals.
// The sum is taken over the raw gaps so the result does not depend on
// per-record rounding or iteration order.
func AverageSpread(records []model.PriceRecord) (decimal.Decimal, error) {
	if len(records) == 0 {
		return decimal.Decimal{}, ErrEmptySet
	}
	sum := decimal.Zero
	for _, rec := range records {
		sum = sum.Add(rec.SellPrice.Sub(rec.BuyPrice))
	}
	n := decimal.NewFromInt(int64(len(records)))
	return sum.Div(n).Div(thousand).Round(3), nil
}
