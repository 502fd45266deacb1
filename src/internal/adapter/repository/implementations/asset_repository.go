package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

// assetUnion tags every asset with its category. Columns: ticker, nome, preco_atual, setor, tipo.
const assetUnion = `
SELECT a.Ticker, a.Nome, a.Preco_atual, a.Setor, 'ACAO' AS tipo
FROM Acao c
JOIN Ativo a ON a.Ticker = c.Ticker

UNION ALL

SELECT a.Ticker, a.Nome, a.Preco_atual, f.Seg_FII AS Setor, 'FII' AS tipo
FROM Fundo_Imobiliario f
JOIN Ativo a ON a.Ticker = f.Ticker

UNION ALL

SELECT a.Ticker, a.Nome, a.Preco_atual, 'Debênture' AS Setor, 'DEBENTURE' AS tipo
FROM Debenture d
JOIN Ativo a ON a.Ticker = d.Ticker`

type AssetRepository struct {
	db Querier
}

func NewAssetRepository(db Querier) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) List(ctx context.Context) ([]domain.Row, error) {
	logger.Debug(ctx, "asset repository list", nil)

	query := assetUnion + "\nORDER BY tipo, Ticker"

	rows, err := r.db.FetchAll(ctx, query)
	if err != nil {
		logger.Error(ctx, "asset repository list failed", err, nil)
		return nil, fmt.Errorf("list assets: %w", err)
	}

	return rows, nil
}

func (r *AssetRepository) Filter(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error) {
	logger.Debug(ctx, "asset repository filter", logger.Fields{
		"tipo":  filter.Type,
		"setor": filter.Sector,
	})

	query, args := buildAssetFilter(filter)

	rows, err := r.db.FetchAll(ctx, query, args...)
	if err != nil {
		logger.Error(ctx, "asset repository filter failed", err, nil)
		return nil, fmt.Errorf("filter assets: %w", err)
	}

	return rows, nil
}

func buildAssetFilter(filter domain.AssetFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT *\nFROM (")
	sb.WriteString(assetUnion)
	sb.WriteString("\n) AS ativos\nWHERE 1 = 1")

	args := make([]any, 0, 2)
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		fmt.Fprintf(&sb, "\n  AND tipo = $%d", len(args))
	}
	if filter.Sector != "" {
		args = append(args, "%"+filter.Sector+"%")
		fmt.Fprintf(&sb, "\n  AND setor ILIKE $%d", len(args))
	}
	sb.WriteString("\nORDER BY tipo, Ticker")

	return sb.String(), args
}

func (r *AssetRepository) RealEstateFundSectors(ctx context.Context) ([]domain.Row, error) {
	const query = `SELECT DISTINCT Seg_FII AS setor FROM Fundo_Imobiliario ORDER BY setor`

	rows, err := r.db.FetchAll(ctx, query)
	if err != nil {
		logger.Error(ctx, "asset repository real estate fund sectors failed", err, nil)
		return nil, fmt.Errorf("list real estate fund sectors: %w", err)
	}

	return rows, nil
}

func (r *AssetRepository) EquitySectors(ctx context.Context) ([]domain.Row, error) {
	const query = `
SELECT DISTINCT Setor AS setor
FROM Ativo
JOIN Acao ON Acao.Ticker = Ativo.Ticker
WHERE Setor IS NOT NULL
ORDER BY setor`

	rows, err := r.db.FetchAll(ctx, query)
	if err != nil {
		logger.Error(ctx, "asset repository equity sectors failed", err, nil)
		return nil, fmt.Errorf("list equity sectors: %w", err)
	}

	return rows, nil
}

func (r *AssetRepository) GetYield(ctx context.Context, ticker string) (domain.AssetYield, error) {
	logger.Debug(ctx, "asset repository get yield", logger.Fields{"ticker": ticker})

	const query = `SELECT Ticker AS ticker, Taxa_diaria AS taxa_diaria FROM Ativo WHERE Ticker = $1`

	var yield domain.AssetYield
	if err := r.db.Get(ctx, &yield, query, ticker); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info(ctx, "asset repository record not found", logger.Fields{"ticker": ticker})
			return domain.AssetYield{}, domain.ErrRecordNotFound
		}
		logger.Error(ctx, "asset repository get yield failed", err, logger.Fields{"ticker": ticker})
		return domain.AssetYield{}, fmt.Errorf("get asset yield: %w", err)
	}

	return yield, nil
}
