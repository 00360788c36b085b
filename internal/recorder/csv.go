package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goldboard/internal/model"
	"goldboard/internal/parser"
)

// CSVRecorder appends quotations to the delimited text file the dashboard
// loads at startup. Output matches the parser's input exactly: a header line
// once per file, then unquoted comma-separated rows.
type CSVRecorder struct {
	path string
}

// NewCSVRecorder creates a recorder writing to path.
func NewCSVRecorder(path string) *CSVRecorder {
	return &CSVRecorder{path: path}
}

func header() string {
	return strings.Join([]string{
		parser.ColDate,
		parser.ColProductCode,
		parser.ColProductName,
		parser.ColBuyPrice,
		parser.ColSellPrice,
	}, ",")
}

// Record appends one line per quotation, writing the header first when the
// file is new or empty.
func (r *CSVRecorder) Record(records []model.PriceRecord) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", r.path, err)
	}

	var b strings.Builder
	if info.Size() == 0 {
		b.WriteString(header())
		b.WriteByte('\n')
	}
	for _, rec := range records {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n",
			rec.Date, rec.ProductCode, rec.ProductName, rec.BuyPrice, rec.SellPrice)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append to %s: %w", r.path, err)
	}
	return nil
}

func (r *CSVRecorder) Close() error { return nil }
