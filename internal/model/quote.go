package model

import "github.com/shopspring/decimal"

// PriceRecord is one quotation row: a product's buy and sell price on a date.
// Prices are in the raw feed unit; display surfaces divide by 1000.
// sellPrice >= buyPrice is expected but not enforced: a negative spread is
// representable and must be shown as-is.
type PriceRecord struct {
	Date        Date            `json:"date"`
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	BuyPrice    decimal.Decimal `json:"buyPrice"`
	SellPrice   decimal.Decimal `json:"sellPrice"`
}
