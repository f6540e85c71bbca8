package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type TeamHandler struct {
	service domain.TeamService
	logger  logger.Logger
}

func NewTeamHandler(service domain.TeamService, logger logger.Logger) *TeamHandler {
	return &TeamHandler{service: service, logger: logger}
}

type rosterEntryRequest struct {
	OrganizationID string `json:"organization_id"`
	EntryID        string `json:"entry_id"`
}

func (h *TeamHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/teams.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/teams.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/teams.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/teams.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/teams.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/rosters.list", requireAuth(http.HandlerFunc(h.handleRoster)))
	mux.Handle("/api/rosters.add", requireAuth(http.HandlerFunc(h.handleAddToRoster)))
	mux.Handle("/api/rosters.update", requireAuth(http.HandlerFunc(h.handleUpdateEntry)))
	mux.Handle("/api/rosters.remove", requireAuth(http.HandlerFunc(h.handleRemoveEntry)))
}

func (h *TeamHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	teams, err := h.service.ListTeams(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list teams")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

func (h *TeamHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing team ID", http.StatusBadRequest)
		return
	}
	team, err := h.service.GetTeam(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get team")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"team": team})
}

func (h *TeamHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var team domain.Team
	if !decodeJSON(w, r, &team) {
		return
	}
	if err := h.service.CreateTeam(r.Context(), &team); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create team")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"team": team})
}

func (h *TeamHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var team domain.Team
	if !decodeJSON(w, r, &team) {
		return
	}
	if team.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateTeam(r.Context(), &team); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update team")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"team": team})
}

func (h *TeamHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteTeam(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete team")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TeamHandler) handleRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	roster, err := h.service.ListRoster(r.Context(), q.Get("organization_id"), q.Get("team_id"), q.Get("include_inactive") == "true")
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list roster")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"roster": roster})
}

func (h *TeamHandler) handleAddToRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.AddToRosterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, err := h.service.AddToRoster(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to add to roster")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"entry": entry})
}

func (h *TeamHandler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.UpdateRosterEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, err := h.service.UpdateRosterEntry(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update roster entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entry": entry})
}

func (h *TeamHandler) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req rosterEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.RemoveFromRoster(r.Context(), req.OrganizationID, req.EntryID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to remove roster entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
