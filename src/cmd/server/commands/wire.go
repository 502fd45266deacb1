package commands

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/export"
	"github.com/investlab/investment-gateway/src/internal/adapter/http/controller"
	"github.com/investlab/investment-gateway/src/internal/adapter/http/middleware"
	"github.com/investlab/investment-gateway/src/internal/adapter/http/router"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/implementations"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/memory"
	"github.com/investlab/investment-gateway/src/internal/adapter/repository/postgres"
	"github.com/investlab/investment-gateway/src/internal/config"
	"github.com/investlab/investment-gateway/src/internal/usecase/services"
)

func newAPIHandler(cfg config.Config, gw *postgres.Gateway) http.Handler {
	accountRepo := implementations.NewAccountRepository(gw)
	orderRepo := implementations.NewOrderRepository(gw)
	assetRepo := implementations.NewAssetRepository(gw)
	reportRepo := implementations.NewReportRepository(gw)
	advisoryRepo := implementations.NewAdvisoryRepository(gw)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled() {
		authMiddleware = middleware.BasicAuth(cfg.Auth.User, cfg.Auth.KeyHash)
	}

	mux := router.New(authMiddleware,
		controller.NewHealthController(gw),
		controller.NewAccountController(services.NewAccountService(accountRepo)),
		controller.NewOrderController(services.NewOrderService(orderRepo)),
		controller.NewAssetController(services.NewAssetService(assetRepo, memory.NewAssetTypeCatalog())),
		controller.NewReportController(services.NewReportService(reportRepo), export.NewXLSXReportGenerator()),
		controller.NewSimulationController(services.NewSimulationService(assetRepo)),
		controller.NewAdvisoryController(services.NewAdvisoryService(advisoryRepo)),
	)

	return router.Handler(mux, cfg.HTTP.AllowedOrigins)
}
