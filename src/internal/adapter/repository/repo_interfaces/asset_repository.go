package repo_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

type AssetRepository interface {
	List(ctx context.Context) ([]domain.Row, error)
	Filter(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error)
	RealEstateFundSectors(ctx context.Context) ([]domain.Row, error)
	EquitySectors(ctx context.Context) ([]domain.Row, error)
	GetYield(ctx context.Context, ticker string) (domain.AssetYield, error)
}
