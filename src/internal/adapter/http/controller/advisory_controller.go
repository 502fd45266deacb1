package controller

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

type AdvisoryController struct {
	service service_interfaces.AdvisoryService
}

func NewAdvisoryController(service service_interfaces.AdvisoryService) *AdvisoryController {
	return &AdvisoryController{service: service}
}

func (c *AdvisoryController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle(mux, "GET /advisor/{id}/clients", c.advisorClients, authMiddleware)
	handle(mux, "GET /manager/{id}/team", c.managerTeam, authMiddleware)
}

func (c *AdvisoryController) advisorClients(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNationalID("id", r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := c.service.AdvisorClients(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AdvisoryController) managerTeam(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNationalID("id", r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := c.service.ManagerTeam(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
