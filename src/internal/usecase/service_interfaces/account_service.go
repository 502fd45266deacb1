package service_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

type AccountService interface {
	GetSummary(ctx context.Context, accountID int64) (domain.Row, error)
	GetPortfolio(ctx context.Context, accountID int64) ([]domain.Row, error)
	GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.Row, error)
	Deposit(ctx context.Context, accountID int64, req models.DepositRequest) (commons.MessageResponse, error)
	Withdraw(ctx context.Context, accountID int64, req models.WithdrawalRequest) (commons.MessageResponse, error)
}
