package model

import "github.com/shopspring/decimal"

// RecordView is a PriceRecord enriched with its derived per-record metrics.
// Change and ChangePercent are nil when no previous-period counterpart exists
// (or, for the percentage, when the previous sell price is zero); an absent
// comparison is never encoded as a numeric zero.
type RecordView struct {
	PriceRecord
	Spread        decimal.Decimal  `json:"spread"`
	HasPrevious   bool             `json:"hasPrevious"`
	Change        *decimal.Decimal `json:"change,omitempty"`
	ChangePercent *decimal.Decimal `json:"changePercent,omitempty"`
}

// Summary aggregates a record-set for the overview cards.
type Summary struct {
	MaxSell       PriceRecord     `json:"maxSell"`
	MinBuy        PriceRecord     `json:"minBuy"`
	AverageSpread decimal.Decimal `json:"averageSpread"`
}

// SpreadWarning flags the product with the widest buy/sell spread.
type SpreadWarning struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Spread      decimal.Decimal `json:"spread"`
}

// Navigation describes where the current date sits in the index. Next moves
// to an older date, Previous to a newer one. Position is -1 when the selected
// date is not an index member.
type Navigation struct {
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
	Position    int  `json:"position"`
	Total       int  `json:"total"`
}

// View is the full bundle the rendering layer consumes. It is recomputed on
// every state change and carries everything needed to draw the dashboard
// without re-deriving any metric.
type View struct {
	Date            Date           `json:"date"`
	Records         []RecordView   `json:"records"`
	PreviousRecords []PriceRecord  `json:"previousRecords"`
	Summary         *Summary       `json:"summary,omitempty"`
	SpreadWarning   *SpreadWarning `json:"spreadWarning,omitempty"`
	TopBySell       []PriceRecord  `json:"topBySell"`
	Navigation      Navigation     `json:"navigation"`
}
