package service_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

type AssetService interface {
	ListAssets(ctx context.Context) ([]domain.Row, error)
	FilterAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error)
	GetAssetTypes(ctx context.Context) ([]models.AssetTypeResponse, error)
	RealEstateFundSectors(ctx context.Context) ([]domain.Row, error)
	EquitySectors(ctx context.Context) ([]domain.Row, error)
}
