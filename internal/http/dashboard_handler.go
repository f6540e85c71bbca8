package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type DashboardHandler struct {
	service domain.DashboardService
	logger  logger.Logger
}

func NewDashboardHandler(service domain.DashboardService, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/admin.dashboard", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/admin.refreshDashboard", requireAuth(http.HandlerFunc(h.handleRefresh)))
}

func (h *DashboardHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	dashboard, err := h.service.GetDashboard(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dashboard": dashboard})
}

func (h *DashboardHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.InvalidateDashboard(r.Context(), req.OrganizationID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to refresh dashboard")
		return
	}
	dashboard, err := h.service.GetDashboard(r.Context(), req.OrganizationID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dashboard": dashboard})
}
