package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Go4ItSports/go4it/pkg/logger"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RootHandler serves the API root, health checks and the frontend config script
type RootHandler struct {
	db          Pinger
	apiEndpoint string
	version     string
	logger      logger.Logger
}

func NewRootHandler(db Pinger, apiEndpoint, version string, logger logger.Logger) *RootHandler {
	return &RootHandler{
		db:          db,
		apiEndpoint: apiEndpoint,
		version:     version,
		logger:      logger,
	}
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api", h.handleAPIRoot)
	mux.HandleFunc("/api/", h.handleAPIRoot)
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/config.js", h.serveConfigJS)
}

func (h *RootHandler) handleAPIRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api" && r.URL.Path != "/api/" {
		WriteJSONError(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "api running",
		"version": h.version,
	})
}

func (h *RootHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.WithField("error", err.Error()).Warn("Health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// serveConfigJS exposes the public API settings to the web client
func (h *RootHandler) serveConfigJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = fmt.Fprintf(w, "window.API_ENDPOINT = %q;\nwindow.VERSION = %q;\n", h.apiEndpoint, h.version)
}
