package repo_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

type OrderRepository interface {
	Place(ctx context.Context, order domain.Order) error
}
