package services

import (
	"context"
	"errors"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/repo_interfaces"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.SimulationService = (*SimulationService)(nil)

const msgAssetNotFound = "Ativo não encontrado"

type SimulationService struct {
	assetRepo repo_interfaces.AssetRepository
}

func NewSimulationService(assetRepo repo_interfaces.AssetRepository) *SimulationService {
	return &SimulationService{assetRepo: assetRepo}
}

func (s *SimulationService) Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationResponse, error) {
	logger.Info(ctx, "simulation service simulate request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "simulation service validation failed", logger.Fields{"error": err.Error()})
		return models.SimulationResponse{}, err
	}

	ticker := req.NormalizedTicker()
	yield, err := s.assetRepo.GetYield(ctx, ticker)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return models.SimulationResponse{}, domain.NewNotFoundError(msgAssetNotFound)
	}
	if err != nil {
		logger.Error(ctx, "simulation service get yield failed", err, logger.Fields{"ticker": ticker})
		return models.SimulationResponse{}, err
	}
	if !yield.DailyRate.Valid {
		logger.Info(ctx, "simulation service asset not eligible", logger.Fields{"ticker": ticker})
		return models.SimulationResponse{}, domain.ErrNotEligible
	}

	if yield.Ticker != "" {
		ticker = yield.Ticker
	}
	sim, err := domain.Simulate(ticker, *req.InitialAmount, yield.DailyRate.Decimal, req.Months)
	if err != nil {
		logger.Warn(ctx, "simulation service result out of range", logger.Fields{
			"ticker": ticker,
			"months": req.Months,
		})
		return models.SimulationResponse{}, err
	}

	logger.Info(ctx, "simulation service simulate success", logger.Fields{
		"ticker":     sim.Ticker,
		"days":       sim.Days,
		"finalValue": sim.FinalValue.String(),
	})

	return models.NewSimulationResponse(sim), nil
}
