package service_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

type AdvisoryService interface {
	AdvisorClients(ctx context.Context, advisorID string) ([]domain.Row, error)
	ManagerTeam(ctx context.Context, managerID string) ([]domain.Row, error)
}
