package services_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

type accountRepoStub struct {
	getSummaryFn        func(ctx context.Context, accountID int64) (domain.Row, error)
	getPortfolioFn      func(ctx context.Context, accountID int64) ([]domain.Row, error)
	getHistoryFn        func(ctx context.Context, accountID int64, limit int) ([]domain.Row, error)
	applyCashMovementFn func(ctx context.Context, movement domain.CashMovement) error
}

func (s accountRepoStub) GetSummary(ctx context.Context, accountID int64) (domain.Row, error) {
	if s.getSummaryFn != nil {
		return s.getSummaryFn(ctx, accountID)
	}
	return domain.Row{}, nil
}

func (s accountRepoStub) GetPortfolio(ctx context.Context, accountID int64) ([]domain.Row, error) {
	if s.getPortfolioFn != nil {
		return s.getPortfolioFn(ctx, accountID)
	}
	return nil, nil
}

func (s accountRepoStub) GetHistory(ctx context.Context, accountID int64, limit int) ([]domain.Row, error) {
	if s.getHistoryFn != nil {
		return s.getHistoryFn(ctx, accountID, limit)
	}
	return nil, nil
}

func (s accountRepoStub) ApplyCashMovement(ctx context.Context, movement domain.CashMovement) error {
	if s.applyCashMovementFn != nil {
		return s.applyCashMovementFn(ctx, movement)
	}
	return nil
}

type orderRepoStub struct {
	placeFn func(ctx context.Context, order domain.Order) error
}

func (s orderRepoStub) Place(ctx context.Context, order domain.Order) error {
	if s.placeFn != nil {
		return s.placeFn(ctx, order)
	}
	return nil
}

type assetRepoStub struct {
	listFn     func(ctx context.Context) ([]domain.Row, error)
	filterFn   func(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error)
	fiiFn      func(ctx context.Context) ([]domain.Row, error)
	equityFn   func(ctx context.Context) ([]domain.Row, error)
	getYieldFn func(ctx context.Context, ticker string) (domain.AssetYield, error)
}

func (s assetRepoStub) List(ctx context.Context) ([]domain.Row, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s assetRepoStub) Filter(ctx context.Context, filter domain.AssetFilter) ([]domain.Row, error) {
	if s.filterFn != nil {
		return s.filterFn(ctx, filter)
	}
	return nil, nil
}

func (s assetRepoStub) RealEstateFundSectors(ctx context.Context) ([]domain.Row, error) {
	if s.fiiFn != nil {
		return s.fiiFn(ctx)
	}
	return nil, nil
}

func (s assetRepoStub) EquitySectors(ctx context.Context) ([]domain.Row, error) {
	if s.equityFn != nil {
		return s.equityFn(ctx)
	}
	return nil, nil
}

func (s assetRepoStub) GetYield(ctx context.Context, ticker string) (domain.AssetYield, error) {
	if s.getYieldFn != nil {
		return s.getYieldFn(ctx, ticker)
	}
	return domain.AssetYield{}, domain.ErrRecordNotFound
}

type reportRepoStub struct {
	totalFn   func(ctx context.Context, period domain.ReportPeriod) (decimal.Decimal, error)
	byAssetFn func(ctx context.Context, period domain.ReportPeriod) ([]domain.AssetResult, error)
	historyFn func(ctx context.Context, period domain.ReportPeriod) ([]domain.OperationRecord, error)
}

func (s reportRepoStub) Total(ctx context.Context, period domain.ReportPeriod) (decimal.Decimal, error) {
	if s.totalFn != nil {
		return s.totalFn(ctx, period)
	}
	return decimal.Zero, nil
}

func (s reportRepoStub) ByAsset(ctx context.Context, period domain.ReportPeriod) ([]domain.AssetResult, error) {
	if s.byAssetFn != nil {
		return s.byAssetFn(ctx, period)
	}
	return nil, nil
}

func (s reportRepoStub) History(ctx context.Context, period domain.ReportPeriod) ([]domain.OperationRecord, error) {
	if s.historyFn != nil {
		return s.historyFn(ctx, period)
	}
	return nil, nil
}

type advisoryRepoStub struct {
	advisorClientsFn func(ctx context.Context, advisorID string) ([]domain.Row, error)
	managerTeamFn    func(ctx context.Context, managerID string) ([]domain.Row, error)
}

func (s advisoryRepoStub) AdvisorClients(ctx context.Context, advisorID string) ([]domain.Row, error) {
	if s.advisorClientsFn != nil {
		return s.advisorClientsFn(ctx, advisorID)
	}
	return nil, nil
}

func (s advisoryRepoStub) ManagerTeam(ctx context.Context, managerID string) ([]domain.Row, error) {
	if s.managerTeamFn != nil {
		return s.managerTeamFn(ctx, managerID)
	}
	return nil, nil
}
