package controller

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/logger"
)

func logRequest(r *http.Request, payload any) {
	logger.Debug(r.Context(), "http handler payload", logger.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"query":   r.URL.RawQuery,
		"payload": logger.SanitizePayload(payload),
	})
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error(r.Context(), "http handler error", err, fields)
}
