package controller

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

type AssetController struct {
	service service_interfaces.AssetService
}

func NewAssetController(service service_interfaces.AssetService) *AssetController {
	return &AssetController{service: service}
}

func (c *AssetController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle(mux, "GET /assets", c.list, authMiddleware)
	handle(mux, "GET /assets/filter", c.filter, authMiddleware)
	handle(mux, "GET /assets/types", c.types, authMiddleware)
	handle(mux, "GET /assets/real-estate-fund/sectors", c.realEstateFundSectors, authMiddleware)
	handle(mux, "GET /assets/equity/sectors", c.equitySectors, authMiddleware)
}

func (c *AssetController) list(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.ListAssets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AssetController) filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ParseAssetFilter(q.Get("tipo"), q.Get("setor"))

	rows, err := c.service.FilterAssets(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AssetController) types(w http.ResponseWriter, r *http.Request) {
	types, err := c.service.GetAssetTypes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, types)
}

func (c *AssetController) realEstateFundSectors(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.RealEstateFundSectors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AssetController) equitySectors(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.EquitySectors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
