package domain

import "context"

type AssetTypeCatalog interface {
	GetAll(ctx context.Context) ([]AssetTypeInfo, error)
}
