package middleware

import (
	"net/http"
	"time"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger tags the request with an X-Request-ID and writes one access log line before and after it.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := commons.ContextWithRequestID(r.Context(), r.Header.Get(commons.RequestIDHeader))
		r = r.WithContext(ctx)
		w.Header().Set(commons.RequestIDHeader, commons.RequestIDFromContext(ctx))

		logger.Info(ctx, "http request", logger.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"query":  r.URL.RawQuery,
			"remote": r.RemoteAddr,
		})

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		logger.Info(ctx, "http response", logger.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"bytes":      rec.bytes,
			"durationMs": time.Since(start).Milliseconds(),
		})
	})
}
