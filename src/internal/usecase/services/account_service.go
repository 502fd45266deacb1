package services

import (
	"context"
	"errors"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/repo_interfaces"
	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.AccountService = (*AccountService)(nil)

const (
	msgAccountNotFound   = "Conta não encontrada"
	msgDepositSucceeded  = "Depósito realizado com sucesso"
	msgWithdrawSucceeded = "Retirada realizada com sucesso"
)

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) GetSummary(ctx context.Context, accountID int64) (domain.Row, error) {
	logger.Info(ctx, "account service get summary request", logger.Fields{"accountId": accountID})

	row, err := s.accountRepo.GetSummary(ctx, accountID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Row{}, domain.NewNotFoundError(msgAccountNotFound)
	}
	if err != nil {
		logger.Error(ctx, "account service get summary failed", err, logger.Fields{"accountId": accountID})
		return domain.Row{}, err
	}

	return row, nil
}

func (s *AccountService) GetPortfolio(ctx context.Context, accountID int64) ([]domain.Row, error) {
	logger.Info(ctx, "account service get portfolio request", logger.Fields{"accountId": accountID})

	rows, err := s.accountRepo.GetPortfolio(ctx, accountID)
	if err != nil {
		logger.Error(ctx, "account service get portfolio failed", err, logger.Fields{"accountId": accountID})
		return nil, err
	}

	return nonNilRows(rows), nil
}

func (s *AccountService) GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.Row, error) {
	logger.Info(ctx, "account service get history request", logger.Fields{
		"accountId": accountID,
		"limit":     limit,
	})

	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	rows, err := s.accountRepo.GetHistory(ctx, accountID, limit)
	if err != nil {
		logger.Error(ctx, "account service get history failed", err, logger.Fields{"accountId": accountID})
		return nil, err
	}

	return nonNilRows(rows), nil
}

func (s *AccountService) Deposit(ctx context.Context, accountID int64, req models.DepositRequest) (commons.MessageResponse, error) {
	return s.moveCash(ctx, accountID, domain.CashMovementDeposit, req, msgDepositSucceeded)
}

func (s *AccountService) Withdraw(ctx context.Context, accountID int64, req models.WithdrawalRequest) (commons.MessageResponse, error) {
	return s.moveCash(ctx, accountID, domain.CashMovementWithdrawal, req, msgWithdrawSucceeded)
}

func (s *AccountService) moveCash(ctx context.Context, accountID int64, kind domain.CashMovementKind, req models.AmountRequest, successMessage string) (commons.MessageResponse, error) {
	logger.Info(ctx, "account service cash movement request", logger.Fields{
		"accountId": accountID,
		"kind":      kind,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "account service cash movement validation failed", logger.Fields{"error": err.Error()})
		return commons.MessageResponse{}, err
	}

	err := s.accountRepo.ApplyCashMovement(ctx, domain.CashMovement{
		AccountID: accountID,
		Kind:      kind,
		Amount:    *req.Amount,
	})
	if err != nil {
		logger.Error(ctx, "account service cash movement failed", err, logger.Fields{
			"accountId": accountID,
			"kind":      kind,
		})
		return commons.MessageResponse{}, err
	}

	logger.Info(ctx, "account service cash movement success", logger.Fields{
		"accountId": accountID,
		"kind":      kind,
	})

	return commons.NewMessageResponse(successMessage), nil
}

func nonNilRows(rows []domain.Row) []domain.Row {
	if rows == nil {
		return []domain.Row{}
	}
	return rows
}
