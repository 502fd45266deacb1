package services

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/repository/repo_interfaces"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.AdvisoryService = (*AdvisoryService)(nil)

type AdvisoryService struct {
	advisoryRepo repo_interfaces.AdvisoryRepository
}

func NewAdvisoryService(advisoryRepo repo_interfaces.AdvisoryRepository) *AdvisoryService {
	return &AdvisoryService{advisoryRepo: advisoryRepo}
}

func (s *AdvisoryService) AdvisorClients(ctx context.Context, advisorID string) ([]domain.Row, error) {
	logger.Info(ctx, "advisory service advisor clients request", logger.Fields{"advisorId": advisorID})

	rows, err := s.advisoryRepo.AdvisorClients(ctx, advisorID)
	if err != nil {
		logger.Error(ctx, "advisory service advisor clients failed", err, logger.Fields{"advisorId": advisorID})
		return nil, err
	}

	return nonNilRows(rows), nil
}

func (s *AdvisoryService) ManagerTeam(ctx context.Context, managerID string) ([]domain.Row, error) {
	logger.Info(ctx, "advisory service manager team request", logger.Fields{"managerId": managerID})

	rows, err := s.advisoryRepo.ManagerTeam(ctx, managerID)
	if err != nil {
		logger.Error(ctx, "advisory service manager team failed", err, logger.Fields{"managerId": managerID})
		return nil, err
	}

	return nonNilRows(rows), nil
}
