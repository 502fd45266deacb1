package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

func TestXLSXReportGeneratorWritesAllSheets(t *testing.T) {
	report := domain.PerformanceReport{
		Period: domain.ReportPeriod{
			ClientID: "12345678900",
			Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		Total: decimal.RequireFromString("-35.5"),
		ByAsset: []domain.AssetResult{
			{Ticker: "PETR4", AssetName: "Petrobras", ProfitLoss: decimal.NewNullDecimal(decimal.RequireFromString("-35.5"))},
		},
		History: []domain.OperationRecord{
			{
				Timestamp:     time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
				Type:          "COMPRA",
				Ticker:        "PETR4",
				AssetName:     "Petrobras",
				Quantity:      decimal.NewNullDecimal(decimal.NewFromInt(10)),
				ExecutedPrice: decimal.NewNullDecimal(decimal.RequireFromString("38.55")),
				CashFlow:      decimal.NewNullDecimal(decimal.RequireFromString("-385.5")),
			},
		},
	}

	raw, err := NewXLSXReportGenerator().Generate(context.Background(), report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{SheetSummary, SheetByAsset, SheetOperations}, f.GetSheetList())

	client, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "12345678900", client)

	total, err := f.GetCellValue(SheetSummary, "B4")
	require.NoError(t, err)
	assert.Equal(t, "-35.5", total)

	ticker, err := f.GetCellValue(SheetByAsset, "A2")
	require.NoError(t, err)
	assert.Equal(t, "PETR4", ticker)

	ops, err := f.GetRows(SheetOperations)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, []string{"2024-01-10 14:30:00", "COMPRA", "PETR4", "Petrobras", "10", "38.55", "-385.5"}, ops[1])
}

func TestXLSXReportGeneratorEmptyReport(t *testing.T) {
	raw, err := NewXLSXReportGenerator().Generate(context.Background(), domain.PerformanceReport{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(SheetByAsset)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
