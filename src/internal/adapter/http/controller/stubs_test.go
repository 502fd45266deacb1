package controller

import (
	"context"
	"errors"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
)

var errStubNotConfigured = errors.New("stub not configured")

type accountServiceStub struct {
	getSummaryFn   func(ctx context.Context, accountID int64) (domain.Row, error)
	getPortfolioFn func(ctx context.Context, accountID int64) ([]domain.Row, error)
	getHistoryFn   func(ctx context.Context, accountID int64, limit int) ([]domain.Row, error)
	depositFn      func(ctx context.Context, accountID int64, req models.DepositRequest) (commons.MessageResponse, error)
	withdrawFn     func(ctx context.Context, accountID int64, req models.WithdrawalRequest) (commons.MessageResponse, error)
}

func (s accountServiceStub) GetSummary(ctx context.Context, accountID int64) (domain.Row, error) {
	if s.getSummaryFn != nil {
		return s.getSummaryFn(ctx, accountID)
	}
	return domain.Row{}, errStubNotConfigured
}

func (s accountServiceStub) GetPortfolio(ctx context.Context, accountID int64) ([]domain.Row, error) {
	if s.getPortfolioFn != nil {
		return s.getPortfolioFn(ctx, accountID)
	}
	return nil, errStubNotConfigured
}

func (s accountServiceStub) GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.Row, error) {
	if s.getHistoryFn != nil {
		return s.getHistoryFn(ctx, accountID, limit)
	}
	return nil, errStubNotConfigured
}

func (s accountServiceStub) Deposit(ctx context.Context, accountID int64, req models.DepositRequest) (commons.MessageResponse, error) {
	if s.depositFn != nil {
		return s.depositFn(ctx, accountID, req)
	}
	return commons.MessageResponse{}, errStubNotConfigured
}

func (s accountServiceStub) Withdraw(ctx context.Context, accountID int64, req models.WithdrawalRequest) (commons.MessageResponse, error) {
	if s.withdrawFn != nil {
		return s.withdrawFn(ctx, accountID, req)
	}
	return commons.MessageResponse{}, errStubNotConfigured
}

type orderServiceStub struct {
	buyFn  func(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error)
	sellFn func(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error)
}

func (s orderServiceStub) Buy(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error) {
	if s.buyFn != nil {
		return s.buyFn(ctx, req)
	}
	return commons.MessageResponse{}, errStubNotConfigured
}

func (s orderServiceStub) Sell(ctx context.Context, req models.OrderRequest) (commons.MessageResponse, error) {
	if s.sellFn != nil {
		return s.sellFn(ctx, req)
	}
	return commons.MessageResponse{}, errStubNotConfigured
}

type assetServiceStub struct {
	filterFn func(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error)
}

func (s assetServiceStub) ListAssets(context.Context) ([]domain.Row, error) {
	return []domain.Row{}, nil
}

func (s assetServiceStub) FilterAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error) {
	if s.filterFn != nil {
		return s.filterFn(ctx, filter)
	}
	return nil, errStubNotConfigured
}

func (s assetServiceStub) GetAssetTypes(context.Context) ([]models.AssetTypeResponse, error) {
	return []models.AssetTypeResponse{{Type: "ACAO", Label: "Ação"}}, nil
}

func (s assetServiceStub) RealEstateFundSectors(context.Context) ([]domain.Row, error) {
	return []domain.Row{domain.NewRow([]string{"setor"}, []any{"Logística"})}, nil
}

func (s assetServiceStub) EquitySectors(context.Context) ([]domain.Row, error) {
	return []domain.Row{}, nil
}

type reportServiceStub struct {
	getPerformanceFn func(ctx context.Context, period domain.ReportPeriod) (domain.PerformanceReport, error)
}

func (s reportServiceStub) GetPerformance(ctx context.Context, period domain.ReportPeriod) (domain.PerformanceReport, error) {
	if s.getPerformanceFn != nil {
		return s.getPerformanceFn(ctx, period)
	}
	return domain.PerformanceReport{}, errStubNotConfigured
}

type reportRendererStub struct{}

func (reportRendererStub) Generate(context.Context, domain.PerformanceReport) ([]byte, error) {
	return []byte("xlsx"), nil
}

type simulationServiceStub struct {
	simulateFn func(ctx context.Context, req models.SimulationRequest) (models.SimulationResponse, error)
}

func (s simulationServiceStub) Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationResponse, error) {
	if s.simulateFn != nil {
		return s.simulateFn(ctx, req)
	}
	return models.SimulationResponse{}, errStubNotConfigured
}

type advisoryServiceStub struct {
	advisorClientsFn func(ctx context.Context, advisorID string) ([]domain.Row, error)
}

func (s advisoryServiceStub) AdvisorClients(ctx context.Context, advisorID string) ([]domain.Row, error) {
	if s.advisorClientsFn != nil {
		return s.advisorClientsFn(ctx, advisorID)
	}
	return nil, errStubNotConfigured
}

func (s advisoryServiceStub) ManagerTeam(context.Context, string) ([]domain.Row, error) {
	return []domain.Row{}, nil
}

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error {
	return p.err
}
