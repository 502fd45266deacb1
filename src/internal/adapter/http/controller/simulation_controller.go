package controller

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

type SimulationController struct {
	service service_interfaces.SimulationService
}

func NewSimulationController(service service_interfaces.SimulationService) *SimulationController {
	return &SimulationController{service: service}
}

func (c *SimulationController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle(mux, "POST /simulation", c.simulate, authMiddleware)
}

func (c *SimulationController) simulate(w http.ResponseWriter, r *http.Request) {
	var req models.SimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := c.service.Simulate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
