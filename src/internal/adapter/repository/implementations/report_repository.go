package implementations

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

type ReportRepository struct {
	db Querier
}

func NewReportRepository(db Querier) *ReportRepository {
	return &ReportRepository{db: db}
}

func periodFields(period domain.ReportPeriod) logger.Fields {
	return logger.Fields{
		"clientId": period.ClientID,
		"inicio":   period.Start,
		"fim":      period.End,
	}
}

func (r *ReportRepository) Total(ctx context.Context, period domain.ReportPeriod) (decimal.Decimal, error) {
	const query = `
SELECT COALESCE(SUM(fluxo_caixa), 0) AS lucro_prejuizo_total
FROM vw_ordens_valor
WHERE cpf_cliente = $1
  AND data_hora >= $2
  AND data_hora <  $3`

	var total decimal.NullDecimal
	if err := r.db.Get(ctx, &total, query, period.ClientID, period.Start, period.End); err != nil {
		logger.Error(ctx, "report repository total failed", err, periodFields(period))
		return decimal.Zero, fmt.Errorf("report total: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

func (r *ReportRepository) ByAsset(ctx context.Context, period domain.ReportPeriod) ([]domain.AssetResult, error) {
	const query = `
SELECT
	ticker,
	nome_ativo,
	SUM(fluxo_caixa) AS lucro_prejuizo
FROM vw_ordens_valor
WHERE cpf_cliente = $1
  AND data_hora >= $2
  AND data_hora <  $3
GROUP BY ticker, nome_ativo
ORDER BY lucro_prejuizo DESC`

	results := make([]domain.AssetResult, 0)
	if err := r.db.Select(ctx, &results, query, period.ClientID, period.Start, period.End); err != nil {
		logger.Error(ctx, "report repository by asset failed", err, periodFields(period))
		return nil, fmt.Errorf("report by asset: %w", err)
	}

	return results, nil
}

func (r *ReportRepository) History(ctx context.Context, period domain.ReportPeriod) ([]domain.OperationRecord, error) {
	const query = `
SELECT
	data_hora,
	tipo_op,
	ticker,
	nome_ativo,
	quantidade,
	preco_exec,
	fluxo_caixa
FROM vw_ordens_valor
WHERE cpf_cliente = $1
  AND data_hora >= $2
  AND data_hora <  $3
ORDER BY data_hora`

	records := make([]domain.OperationRecord, 0)
	if err := r.db.Select(ctx, &records, query, period.ClientID, period.Start, period.End); err != nil {
		logger.Error(ctx, "report repository history failed", err, periodFields(period))
		return nil, fmt.Errorf("report history: %w", err)
	}

	return records, nil
}
