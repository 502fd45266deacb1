package memory

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

// AssetTypeCatalog lists the asset categories the database unions together.
type AssetTypeCatalog struct{}

func NewAssetTypeCatalog() *AssetTypeCatalog {
	return &AssetTypeCatalog{}
}

func (c *AssetTypeCatalog) GetAll(_ context.Context) ([]domain.AssetTypeInfo, error) {
	types := []domain.AssetTypeInfo{
		{Type: domain.AssetTypeEquity, Label: "Ação"},
		{Type: domain.AssetTypeRealEstateFund, Label: "Fundo Imobiliário"},
		{Type: domain.AssetTypeDebenture, Label: "Debênture"},
	}

	return types, nil
}
