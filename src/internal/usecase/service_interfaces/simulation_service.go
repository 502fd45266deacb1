package service_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
)

type SimulationService interface {
	Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationResponse, error)
}
