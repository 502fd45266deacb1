package service_interfaces

import (
	"context"

	"github.com/investlab/investment-gateway/src/internal/domain"
)

type ReportService interface {
	GetPerformance(ctx context.Context, period domain.ReportPeriod) (domain.PerformanceReport, error)
}
