package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldboard/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testView() model.View {
	change := dec("300")
	pct := dec("0.4")
	sjc := model.PriceRecord{
		Date:        model.Date{Day: 3, Month: 1, Year: 2024},
		ProductCode: "SJC",
		ProductName: "SJC Gold",
		BuyPrice:    dec("75200000"),
		SellPrice:   dec("76300000"),
	}
	pnj := model.PriceRecord{
		Date:        model.Date{Day: 3, Month: 1, Year: 2024},
		ProductCode: "PNJ",
		ProductName: "PNJ Gold",
		BuyPrice:    dec("73000000"),
		SellPrice:   dec("73500000"),
	}
	return model.View{
		Date: model.Date{Day: 3, Month: 1, Year: 2024},
		Records: []model.RecordView{
			{
				PriceRecord:   sjc,
				Spread:        dec("1100"),
				HasPrevious:   true,
				Change:        &change,
				ChangePercent: &pct,
			},
			{
				PriceRecord: pnj,
				Spread:      dec("500"),
			},
		},
		Summary: &model.Summary{
			MaxSell:       sjc,
			MinBuy:        pnj,
			AverageSpread: dec("800"),
		},
	}
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook(testView())
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	t.Run("date header", func(t *testing.T) {
		assert.Equal(t, "Date", cell("A1"))
		assert.Equal(t, "03-01-2024", cell("B1"))
	})

	t.Run("column headers", func(t *testing.T) {
		assert.Equal(t, "Code", cell("A3"))
		assert.Equal(t, "Change %", cell("G3"))
	})

	t.Run("record rows in display units", func(t *testing.T) {
		assert.Equal(t, "SJC", cell("A4"))
		assert.Equal(t, "76300", cell("D4"))
		assert.Equal(t, "1100", cell("E4"))
		assert.Equal(t, "300", cell("F4"))
		assert.Equal(t, "0.4%", cell("G4"))
	})

	t.Run("missing comparison renders a dash", func(t *testing.T) {
		assert.Equal(t, "PNJ", cell("A5"))
		assert.Equal(t, "—", cell("F5"))
		assert.Equal(t, "—", cell("G5"))
	})

	t.Run("summary block", func(t *testing.T) {
		assert.Equal(t, "Highest sell", cell("A7"))
		assert.Equal(t, "SJC", cell("B7"))
		assert.Equal(t, "Lowest buy", cell("A8"))
		assert.Equal(t, "Average spread", cell("A9"))
		assert.Equal(t, "800", cell("B9"))
	})
}

func TestWorkbook_NoSummary(t *testing.T) {
	view := testView()
	view.Summary = nil

	f, err := Workbook(view)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheet, "A7")
	require.NoError(t, err)
	assert.Empty(t, v)
}
