package repo_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/shopspring/decimal"
)

type ReportRepository interface {
	Total(ctx context.Context, period domain.ReportPeriod) (decimal.Decimal, error)
	ByAsset(ctx context.Context, period domain.ReportPeriod) ([]domain.AssetResult, error)
	History(ctx context.Context, period domain.ReportPeriod) ([]domain.OperationRecord, error)
}
