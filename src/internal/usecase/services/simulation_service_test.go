package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/usecase/services"
)

func simulationRequest(ticker string, amount int64, months int) models.SimulationRequest {
	p := decimal.NewFromInt(amount)
	return models.SimulationRequest{Ticker: ticker, InitialAmount: &p, Months: months}
}

func TestSimulationServiceCompoundsDailyRate(t *testing.T) {
	svc := services.NewSimulationService(assetRepoStub{
		getYieldFn: func(_ context.Context, ticker string) (domain.AssetYield, error) {
			assert.Equal(t, "DEB1", ticker)
			return domain.AssetYield{Ticker: "DEB1", DailyRate: decimal.NewNullDecimal(decimal.RequireFromString("0.001"))}, nil
		},
	})

	resp, err := svc.Simulate(context.Background(), simulationRequest("deb1", 1000, 12))

	require.NoError(t, err)
	assert.Equal(t, models.SimulationResponse{
		Ticker:        "DEB1",
		InitialAmount: 1000,
		Months:        12,
		Days:          252,
		DailyRate:     0.001,
		FinalValue:    1286.43,
		ReturnPct:     28.64,
	}, resp)
}

func TestSimulationServiceAssetNotFound(t *testing.T) {
	svc := services.NewSimulationService(assetRepoStub{})

	_, err := svc.Simulate(context.Background(), simulationRequest("XXXX", 1000, 12))

	require.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.EqualError(t, err, "Ativo não encontrado")
}

func TestSimulationServiceNotEligibleWithoutRate(t *testing.T) {
	svc := services.NewSimulationService(assetRepoStub{
		getYieldFn: func(context.Context, string) (domain.AssetYield, error) {
			return domain.AssetYield{Ticker: "PETR4"}, nil
		},
	})

	_, err := svc.Simulate(context.Background(), simulationRequest("PETR4", 1000, 12))

	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestSimulationServiceValidatesBeforeLookup(t *testing.T) {
	svc := services.NewSimulationService(assetRepoStub{
		getYieldFn: func(context.Context, string) (domain.AssetYield, error) {
			t.Fatal("lookup must not run for an invalid request")
			return domain.AssetYield{}, nil
		},
	})

	_, err := svc.Simulate(context.Background(), simulationRequest("DEB1", 1000, 0))

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSimulationServiceOverflowIsAnError(t *testing.T) {
	svc := services.NewSimulationService(assetRepoStub{
		getYieldFn: func(context.Context, string) (domain.AssetYield, error) {
			return domain.AssetYield{Ticker: "DEB9", DailyRate: decimal.NewNullDecimal(decimal.RequireFromString("0.05"))}, nil
		},
	})

	var err error
	assert.NotPanics(t, func() {
		_, err = svc.Simulate(context.Background(), simulationRequest("DEB9", 1000, 1200))
	})
	assert.ErrorIs(t, err, domain.ErrSimulationOutOfRange)
}
