package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetSummary    = "Resumo"
	SheetByAsset    = "Por ativo"
	SheetOperations = "Operações"
)

const dateTimeLayout = "2006-01-02 15:04:05"

type XLSXReportGenerator struct{}

func NewXLSXReportGenerator() *XLSXReportGenerator {
	return &XLSXReportGenerator{}
}

// Generate renders report as a workbook with a summary sheet, a per-asset sheet and an operations sheet.
func (g *XLSXReportGenerator) Generate(ctx context.Context, report domain.PerformanceReport) ([]byte, error) {
	logger.Debug(ctx, "xlsx report generate start", logger.Fields{
		"clientId":   report.Period.ClientID,
		"assets":     len(report.ByAsset),
		"operations": len(report.History),
	})

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error(ctx, "xlsx report close failed", err, nil)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"#cfe2f3"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := fillSummary(f, report, headerStyle); err != nil {
		return nil, err
	}
	if err := fillByAsset(f, report.ByAsset, headerStyle); err != nil {
		return nil, err
	}
	if err := fillOperations(f, report.History, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error(ctx, "xlsx report write failed", err, nil)
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	logger.Debug(ctx, "xlsx report generate completed", logger.Fields{"bytes": buf.Len()})
	return buf.Bytes(), nil
}

func fillSummary(f *excelize.File, report domain.PerformanceReport, style int) error {
	rows := [][]any{
		{"Cliente", report.Period.ClientID},
		{"Início", report.Period.Start.Format(dateTimeLayout)},
		{"Fim", report.Period.End.Format(dateTimeLayout)},
		{"Lucro/prejuízo total", report.Total.InexactFloat64()},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(SheetSummary, cell(1, i+1), &row); err != nil {
			return fmt.Errorf("fill %s: %w", SheetSummary, err)
		}
	}
	if err := f.SetCellStyle(SheetSummary, "A1", cell(1, len(rows)), style); err != nil {
		return fmt.Errorf("style %s: %w", SheetSummary, err)
	}
	return f.SetColWidth(SheetSummary, "A", "B", 24)
}

func fillByAsset(f *excelize.File, results []domain.AssetResult, style int) error {
	header := []any{"Ticker", "Ativo", "Lucro/prejuízo"}
	rows := make([][]any, 0, len(results))
	for _, r := range results {
		rows = append(rows, []any{r.Ticker, r.AssetName, domain.Float(r.ProfitLoss)})
	}
	return fillTable(f, SheetByAsset, header, rows, style)
}

func fillOperations(f *excelize.File, history []domain.OperationRecord, style int) error {
	header := []any{"Data/hora", "Tipo", "Ticker", "Ativo", "Quantidade", "Preço", "Fluxo de caixa"}
	rows := make([][]any, 0, len(history))
	for _, op := range history {
		rows = append(rows, []any{
			op.Timestamp.Format(dateTimeLayout),
			op.Type,
			op.Ticker,
			op.AssetName,
			domain.Float(op.Quantity),
			domain.Float(op.ExecutedPrice),
			domain.Float(op.CashFlow),
		})
	}
	return fillTable(f, SheetOperations, header, rows, style)
}

func fillTable(f *excelize.File, sheet string, header []any, rows [][]any, style int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("fill %s header: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", cell(len(header), 1), style); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	for i := range rows {
		if err := f.SetSheetRow(sheet, cell(1, i+2), &rows[i]); err != nil {
			return fmt.Errorf("fill %s row %d: %w", sheet, i+1, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
