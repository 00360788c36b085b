// Package export renders a dashboard view as an xlsx workbook, the
// downloadable counterpart of the on-screen price table.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"goldboard/internal/metrics"
	"goldboard/internal/model"
)

const sheet = "GoldPrices"

// Workbook builds a single-sheet workbook: the record table in display units
// followed by the summary block. The caller owns the returned file and must
// Close it.
func Workbook(view model.View) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Date", view.Date.String()},
		{},
		{"Code", "Name", "Buy", "Sell", "Spread", "Change", "Change %"},
	}

	for _, rec := range view.Records {
		row := []interface{}{
			rec.ProductCode,
			rec.ProductName,
			metrics.DisplayPrice(rec.BuyPrice).String(),
			metrics.DisplayPrice(rec.SellPrice).String(),
			rec.Spread.String(),
		}
		if rec.Change != nil {
			row = append(row, rec.Change.String())
		} else {
			row = append(row, "—")
		}
		if rec.ChangePercent != nil {
			row = append(row, rec.ChangePercent.String()+"%")
		} else {
			row = append(row, "—")
		}
		rows = append(rows, row)
	}

	if view.Summary != nil {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Highest sell", view.Summary.MaxSell.ProductCode, metrics.DisplayPrice(view.Summary.MaxSell.SellPrice).String()},
			[]interface{}{"Lowest buy", view.Summary.MinBuy.ProductCode, metrics.DisplayPrice(view.Summary.MinBuy.BuyPrice).String()},
			[]interface{}{"Average spread", view.Summary.AverageSpread.String()},
		)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return f, nil
}
