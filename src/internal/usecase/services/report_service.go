package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/investlab/investment-gateway/src/internal/adapter/repository/repo_interfaces"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.ReportService = (*ReportService)(nil)

type ReportService struct {
	reportRepo repo_interfaces.ReportRepository
}

func NewReportService(reportRepo repo_interfaces.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// GetPerformance runs the total, per-asset and history queries concurrently over [Start, End).
func (s *ReportService) GetPerformance(ctx context.Context, period domain.ReportPeriod) (domain.PerformanceReport, error) {
	fields := logger.Fields{
		"clientId": period.ClientID,
		"inicio":   period.Start,
		"fim":      period.End,
	}
	logger.Info(ctx, "report service get performance request", fields)

	report := domain.PerformanceReport{Period: period}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.reportRepo.Total(gctx, period)
		report.Total = total
		return err
	})
	g.Go(func() error {
		byAsset, err := s.reportRepo.ByAsset(gctx, period)
		report.ByAsset = byAsset
		return err
	})
	g.Go(func() error {
		history, err := s.reportRepo.History(gctx, period)
		report.History = history
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "report service get performance failed", err, fields)
		return domain.PerformanceReport{}, err
	}

	if report.ByAsset == nil {
		report.ByAsset = []domain.AssetResult{}
	}
	if report.History == nil {
		report.History = []domain.OperationRecord{}
	}

	logger.Info(ctx, "report service get performance success", logger.Fields{
		"clientId":   period.ClientID,
		"total":      report.Total.String(),
		"assets":     len(report.ByAsset),
		"operations": len(report.History),
	})

	return report, nil
}
