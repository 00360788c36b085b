// Package parser turns the raw quotation text file into price records.
//
// The format is deliberately plain: a comma-separated header line naming the
// columns, then one comma-separated row per quotation. There is no quoting or
// escaping of embedded delimiters; values are split verbatim. That matches the
// producer (the crawler appends unquoted fields) and is a documented
// limitation, not something to harden here.
package parser

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"goldboard/internal/model"
)

// Column names the parser recognizes in the header line.
const (
	ColDate        = "ngay"
	ColProductCode = "masp"
	ColProductName = "tensp"
	ColBuyPrice    = "giamua"
	ColSellPrice   = "giaban"
)

// Parse converts delimited text into price records. The first line is the
// header; following lines map positionally onto it, each value trimmed of
// surrounding whitespace. Rows with fewer values than headers simply leave
// the missing fields unset. Empty input yields an empty result. Parse never
// fails: malformed dates or prices are logged and left as zero values.
func Parse(text string) []model.PriceRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	headers := splitRow(lines[0])

	records := make([]model.PriceRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitRow(line)

		var rec model.PriceRecord
		for i, header := range headers {
			if i >= len(values) {
				break
			}
			setField(&rec, header, values[i])
		}
		records = append(records, rec)
	}
	return records
}

func splitRow(line string) []string {
	parts := strings.Split(strings.TrimRight(line, "\r"), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// setField maps a header name to its record field. Unknown columns are
// ignored so the feed can grow extra columns without breaking the dashboard.
func setField(rec *model.PriceRecord, header, value string) {
	switch header {
	case ColDate:
		d, err := model.ParseDate(value)
		if err != nil {
			log.Printf("[WARN] parser: %v", err)
			return
		}
		rec.Date = d
	case ColProductCode:
		rec.ProductCode = value
	case ColProductName:
		rec.ProductName = value
	case ColBuyPrice:
		rec.BuyPrice = parsePrice(value, header)
	case ColSellPrice:
		rec.SellPrice = parsePrice(value, header)
	}
}

func parsePrice(value, header string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		log.Printf("[WARN] parser: bad %s value %q: %v", header, value, err)
		return decimal.Zero
	}
	return d
}
