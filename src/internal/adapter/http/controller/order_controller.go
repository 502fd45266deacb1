package controller

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

type OrderController struct {
	service service_interfaces.OrderService
}

func NewOrderController(service service_interfaces.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle(mux, "POST /orders/buy", c.buy, authMiddleware)
	handle(mux, "POST /orders/sell", c.sell, authMiddleware)
}

func (c *OrderController) buy(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := c.service.Buy(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) sell(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := c.service.Sell(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
