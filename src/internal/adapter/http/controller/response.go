package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

const maxBodyBytes = 1 << 20

const (
	detailValidationFailed = "validation failed"
	detailInvalidBody      = "invalid request body"
	detailInternal         = "Internal Server Error"
)

func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc, authMiddleware func(http.Handler) http.Handler) {
	var handler http.Handler = h
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle(pattern, handler)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps err onto the status codes of the API.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		berr *domain.BusinessRuleError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, commons.NewErrorResponse(detailValidationFailed, verr.Fields...))
	case errors.Is(err, domain.ErrRecordNotFound):
		writeJSON(w, http.StatusNotFound, commons.NewErrorResponse(err.Error()))
	case errors.As(err, &berr):
		writeJSON(w, http.StatusBadRequest, commons.NewErrorResponse(berr.Message))
	case errors.Is(err, domain.ErrNotEligible), errors.Is(err, domain.ErrSimulationOutOfRange):
		writeJSON(w, http.StatusBadRequest, commons.NewErrorResponse(err.Error()))
	default:
		logError(r, err, logger.Fields{"status": http.StatusInternalServerError})
		writeJSON(w, http.StatusInternalServerError, commons.NewErrorResponse(detailInternal))
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, commons.NewErrorResponse(detailInvalidBody, commons.FieldError{
			Field:   "body",
			Message: err.Error(),
		}))
		return false
	}

	logRequest(r, dst)
	return true
}
