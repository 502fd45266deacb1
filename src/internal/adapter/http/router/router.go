package router

import (
	"net/http"

	"github.com/investlab/investment-gateway/src/internal/adapter/http/middleware"
)

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(authMiddleware func(http.Handler) http.Handler, registrars ...RouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	for _, registrar := range registrars {
		if registrar != nil {
			registrar.RegisterRoutes(mux, authMiddleware)
		}
	}

	return mux
}

// Handler wraps mux with request logging, panic recovery and CORS, outermost first.
func Handler(mux http.Handler, allowedOrigins []string) http.Handler {
	return middleware.Chain(mux,
		middleware.RequestLogger,
		middleware.Recover,
		middleware.CORS(allowedOrigins),
	)
}
