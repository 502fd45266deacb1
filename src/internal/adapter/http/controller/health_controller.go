package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// RegisterRoutes ignores authMiddleware so probes never need credentials.
func (c *HealthController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /health", c.health)
}

func (c *HealthController) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := c.db.Ping(ctx); err != nil {
		logger.Warn(r.Context(), "health check database ping failed", logger.Fields{"error": err.Error()})
		writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
