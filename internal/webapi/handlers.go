// Package webapi implements the challenge's subject service: the minimal
// JSON API the sample pipelines build, test, and deploy. It has no coupling
// to the workflow checker.
package webapi

import (
	"encoding/json"
	"net/http"
)

// Handlers holds the HTTP handler methods for the subject service.
type Handlers struct {
	cfg Config
}

// NewHandlers creates a new Handlers with the given configuration.
func NewHandlers(cfg Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// HandleRoot describes the service, its version, and the available endpoints.
func (h *Handlers) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		App:         "CI/CD Challenge App",
		Version:     h.cfg.Version,
		Environment: h.cfg.Environment,
		Message:     "Hello from the CI/CD pipeline!",
		Endpoints: map[string]string{
			"/":        "This page",
			"/health":  "Health check",
			"/version": "Version info",
		},
	})
}

// HandleHealth returns a fixed healthy status for deployment verification.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: h.cfg.Version,
	})
}

// HandleVersion returns version, environment, and commit for deployment tracking.
func (h *Handlers) HandleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version:     h.cfg.Version,
		Environment: h.cfg.Environment,
		Commit:      h.cfg.Commit,
	})
}

// RegisterRoutes registers all subject service routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, cfg Config) {
	h := NewHandlers(cfg)
	mux.HandleFunc("GET /{$}", h.HandleRoot)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /version", h.HandleVersion)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
