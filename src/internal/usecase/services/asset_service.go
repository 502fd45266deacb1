package services

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/repo_interfaces"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.AssetService = (*AssetService)(nil)

type AssetService struct {
	assetRepo repo_interfaces.AssetRepository
	catalog   domain.AssetTypeCatalog
}

func NewAssetService(assetRepo repo_interfaces.AssetRepository, catalog domain.AssetTypeCatalog) *AssetService {
	return &AssetService{assetRepo: assetRepo, catalog: catalog}
}

func (s *AssetService) ListAssets(ctx context.Context) ([]domain.Row, error) {
	logger.Info(ctx, "asset service list assets request", nil)

	rows, err := s.assetRepo.List(ctx)
	if err != nil {
		logger.Error(ctx, "asset service list assets failed", err, nil)
		return nil, err
	}

	return nonNilRows(rows), nil
}

// FilterAssets with an empty filter behaves like ListAssets.
func (s *AssetService) FilterAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error) {
	logger.Info(ctx, "asset service filter assets request", logger.Fields{
		"tipo":  filter.Type,
		"setor": filter.Sector,
	})

	rows, err := s.assetRepo.Filter(ctx, filter)
	if err != nil {
		logger.Error(ctx, "asset service filter assets failed", err, nil)
		return nil, err
	}

	return nonNilRows(rows), nil
}

func (s *AssetService) GetAssetTypes(ctx context.Context) ([]models.AssetTypeResponse, error) {
	types, err := s.catalog.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "asset service get asset types failed", err, nil)
		return nil, err
	}

	return models.NewAssetTypeResponses(types), nil
}

func (s *AssetService) RealEstateFundSectors(ctx context.Context) ([]domain.Row, error) {
	rows, err := s.assetRepo.RealEstateFundSectors(ctx)
	if err != nil {
		logger.Error(ctx, "asset service real estate fund sectors failed", err, nil)
		return nil, err
	}

	return nonNilRows(rows), nil
}

func (s *AssetService) EquitySectors(ctx context.Context) ([]domain.Row, error) {
	rows, err := s.assetRepo.EquitySectors(ctx)
	if err != nil {
		logger.Error(ctx, "asset service equity sectors failed", err, nil)
		return nil, err
	}

	return nonNilRows(rows), nil
}
