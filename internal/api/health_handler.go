package api

import (
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/excusedraft/excuse-api/internal/api/shared"
	"github.com/excusedraft/excuse-api/internal/config"
)

// Version reported by the health and debug endpoints.
const Version = "1.0.0"

// HealthHandler serves the health, readiness, metrics and debug
// endpoints. The request counter is the only piece of state shared
// between requests; it is atomic and lives outside the generation core.
type HealthHandler struct {
	cfg      *config.Config
	requests atomic.Int64
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// CountRequests is middleware that increments the request counter
// exposed by the metrics endpoint.
func (h *HealthHandler) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	})
}

// Healthz handles GET /healthz requests (kubernetes-style liveness).
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready requests.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}

// Ping handles GET /ping requests.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// Metrics handles GET /metrics requests with a prometheus-style text
// exposition of the request counter.
func (h *HealthHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w,
		"# HELP excuse_generator_requests_total Total number of requests\n"+
			"# TYPE excuse_generator_requests_total counter\n"+
			"excuse_generator_requests_total %d\n",
		h.requests.Load())
}

// Debug handles GET /debug requests with redacted environment
// information. The API token is never echoed back.
func (h *HealthHandler) Debug(w http.ResponseWriter, r *http.Request) {
	token := "Not set"
	if h.cfg.LLM.APIToken != "" {
		token = "***"
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]any{
		"environment": map[string]any{
			"endpoint_url": h.cfg.LLM.EndpointURL,
			"api_token":    token,
			"port":         h.cfg.Server.Port,
			"host":         h.cfg.Server.Host,
		},
		"paths": map[string]any{
			"current_dir": cwd,
			"static_dir":  h.cfg.Server.StaticDir,
		},
	})
}
