// Package handlers contains the HTTP handlers for the status service.
//
// All endpoints:
//
//	GET /        — greeting
//	GET /health  — liveness probe (never checks dependencies)
//	GET /ready   — readiness probe (pings configured dependencies)
//
// Probe responses are JSON: { "status": "..." }. Any other path gets the
// router's default 404.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/fincra/status-service/internal/service/status"
)

// RegisterStatusRoutes registers all status routes.
func RegisterStatusRoutes(mux *http.ServeMux, svc *status.StatusService, logger *zap.Logger) {
	mux.HandleFunc("GET /{$}", withError(logger, handleRoot()))
	mux.HandleFunc("GET /health", withError(logger, handleHealth(svc)))
	mux.HandleFunc("GET /ready", withError(logger, handleReady(svc, logger)))
}

// withError wraps a handler so encoding failures surface as a 500.
func withError(logger *zap.Logger, h func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			logger.Warn("⚠️ HTTP error", zap.Error(err))
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		}
	}
}

// === Handlers ===

// handleRoot serves the greeting. The /{$} pattern matches "/" exactly,
// so unknown paths fall through to the mux's not-found response.
func handleRoot() func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := io.WriteString(w, status.Greeting)
		return err
	}
}

// handleHealth is the liveness probe.
// Always 200: reaching the handler proves the process is alive.
func handleHealth(svc *status.StatusService) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json")
		return json.NewEncoder(w).Encode(svc.Health())
	}
}

// handleReady is the readiness probe.
// 200 when every configured dependency answers its ping (trivially true
// with none configured), 503 otherwise.
func handleReady(svc *status.StatusService, logger *zap.Logger) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json")
		report, err := svc.Ready(r.Context())
		if err != nil {
			logger.Warn("readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		return json.NewEncoder(w).Encode(report)
	}
}
