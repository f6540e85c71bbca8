package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type StarPathHandler struct {
	service domain.StarPathService
	logger  logger.Logger
}

func NewStarPathHandler(service domain.StarPathService, logger logger.Logger) *StarPathHandler {
	return &StarPathHandler{service: service, logger: logger}
}

func (h *StarPathHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/starpath.progress", requireAuth(http.HandlerFunc(h.handleProgress)))
	mux.Handle("/api/starpath.achievements", requireAuth(http.HandlerFunc(h.handleAchievements)))
	mux.Handle("/api/starpath.history", requireAuth(http.HandlerFunc(h.handleHistory)))
	mux.Handle("/api/starpath.leaderboard", requireAuth(http.HandlerFunc(h.handleLeaderboard)))
	mux.Handle("/api/starpath.grantXp", requireAuth(http.HandlerFunc(h.handleGrantXP)))
}

func (h *StarPathHandler) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	view, err := h.service.GetProgress(r.Context(), q.Get("organization_id"), q.Get("athlete_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get progress")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *StarPathHandler) handleAchievements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	achievements, err := h.service.ListAchievements(r.Context(), q.Get("organization_id"), q.Get("athlete_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list achievements")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"achievements": achievements})
}

func (h *StarPathHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
		return
	}
	q := r.URL.Query()
	history, err := h.service.ListXPHistory(r.Context(), q.Get("organization_id"), q.Get("athlete_id"), limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list XP history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": history})
}

func (h *StarPathHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
		return
	}
	entries, err := h.service.Leaderboard(r.Context(), r.URL.Query().Get("organization_id"), limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to load leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}

func (h *StarPathHandler) handleGrantXP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var input domain.AwardXPInput
	if !decodeJSON(w, r, &input) {
		return
	}
	result, err := h.service.GrantXP(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to grant XP")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
