package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/investlab/investment-gateway/src/internal/adapter/export"
	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

type ReportRenderer interface {
	Generate(ctx context.Context, report domain.PerformanceReport) ([]byte, error)
}

type ReportController struct {
	service  service_interfaces.ReportService
	renderer ReportRenderer
}

func NewReportController(service service_interfaces.ReportService, renderer ReportRenderer) *ReportController {
	return &ReportController{service: service, renderer: renderer}
}

func (c *ReportController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle(mux, "GET /report/{client_id}", c.getReport, authMiddleware)
	if c.renderer != nil {
		handle(mux, "GET /report/{client_id}/xlsx", c.getReportXLSX, authMiddleware)
	}
}

func (c *ReportController) getReport(w http.ResponseWriter, r *http.Request) {
	report, ok := c.performance(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.NewReportResponse(report))
}

func (c *ReportController) getReportXLSX(w http.ResponseWriter, r *http.Request) {
	report, ok := c.performance(w, r)
	if !ok {
		return
	}

	body, err := c.renderer.Generate(r.Context(), report)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("relatorio_%s_%s_%s.xlsx",
		report.Period.ClientID,
		report.Period.Start.Format("20060102"),
		report.Period.End.Format("20060102"),
	)

	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (c *ReportController) performance(w http.ResponseWriter, r *http.Request) (domain.PerformanceReport, bool) {
	q := r.URL.Query()
	period, err := models.ParseReportPeriod(r.PathValue("client_id"), q.Get("inicio"), q.Get("fim"))
	if err != nil {
		writeError(w, r, err)
		return domain.PerformanceReport{}, false
	}

	report, err := c.service.GetPerformance(r.Context(), period)
	if err != nil {
		writeError(w, r, err)
		return domain.PerformanceReport{}, false
	}

	return report, true
}
