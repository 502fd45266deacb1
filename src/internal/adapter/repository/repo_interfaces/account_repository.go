package repo_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

type AccountRepository interface {
	GetSummary(ctx context.Context, accountID int64) (domain.Row, error)
	GetPortfolio(ctx context.Context, accountID int64) ([]domain.Row, error)
	GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.Row, error)
	ApplyCashMovement(ctx context.Context, movement domain.CashMovement) error
}
