package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/vllm-mock/pkg/infra/metrics"
)

// LoggingMiddleware returns a middleware that logs HTTP requests
func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// MetricsMiddleware records request count, latency and in-flight requests.
// Requests are labelled by chi route pattern, not raw path. Scrapes of
// metrics.Path are counted but never reported as running requests.
func MetricsMiddleware(rec *metrics.Recorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			done := func() {}
			if r.URL.Path != metrics.Path {
				done = rec.Begin()
			}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				done()
				var route string
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					route = rctx.RoutePattern()
				}
				rec.Observe(r.Method, route, ww.Status(), time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
