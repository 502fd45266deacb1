package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Error(r.Context(), "http handler panic", fmt.Errorf("%v", rec), logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"stack":  string(debug.Stack()),
			})
			writeJSON(w, http.StatusInternalServerError, commons.NewErrorResponse("Internal Server Error"))
		}()

		next.ServeHTTP(w, r)
	})
}

// Chain applies middlewares so that the first one is outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
