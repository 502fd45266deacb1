package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

// BasicAuth checks the request credentials against user and a bcrypt hash of the key.
func BasicAuth(user, keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user == "" || keyHash == "" {
				logger.Error(r.Context(), "basic auth middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				writeJSON(w, http.StatusInternalServerError, commons.NewErrorResponse("Internal Server Error"))
				return
			}

			id, key, ok := r.BasicAuth()
			if !ok || !secureEqual(id, user) || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				logger.Info(r.Context(), "basic auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_missing",
				})
				w.Header().Set("WWW-Authenticate", `Basic realm="investment-gateway"`)
				writeJSON(w, http.StatusUnauthorized, commons.NewErrorResponse("Unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
