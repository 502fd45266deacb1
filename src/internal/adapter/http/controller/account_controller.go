package controller

import (
	"context"
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/models"
	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle(mux, "GET /accounts/{id}/summary", c.getSummary, authMiddleware)
	handle(mux, "GET /accounts/{id}/portfolio", c.getPortfolio, authMiddleware)
	handle(mux, "GET /accounts/{id}/history", c.getHistory, authMiddleware)
	handle(mux, "POST /accounts/{id}/deposit", c.deposit, authMiddleware)
	handle(mux, "POST /accounts/{id}/withdrawal", c.withdraw, authMiddleware)
}

func (c *AccountController) getSummary(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseAccountID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := c.service.GetSummary(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (c *AccountController) getPortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseAccountID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := c.service.GetPortfolio(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AccountController) getHistory(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseAccountID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := models.ParseHistoryLimit(r.URL.Query().Get("limite"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows, err := c.service.GetHistory(r.Context(), id, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.moveCash(w, r, c.service.Deposit)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.moveCash(w, r, c.service.Withdraw)
}

type cashMovementFunc func(ctx context.Context, accountID int64, req models.AmountRequest) (commons.MessageResponse, error)

func (c *AccountController) moveCash(w http.ResponseWriter, r *http.Request, move cashMovementFunc) {
	id, err := models.ParseAccountID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := move(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
