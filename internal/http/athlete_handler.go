package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type AthleteHandler struct {
	service domain.AthleteService
	logger  logger.Logger
}

func NewAthleteHandler(service domain.AthleteService, logger logger.Logger) *AthleteHandler {
	return &AthleteHandler{service: service, logger: logger}
}

func (h *AthleteHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/athletes.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/athletes.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/athletes.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/athletes.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/athletes.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *AthleteHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var filter domain.AthleteFilter
	if err := filter.FromURLParams(r.URL.Query()); err != nil {
		writeServiceError(w, h.logger, err, "Invalid filter")
		return
	}

	resp, err := h.service.ListAthletes(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list athletes")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AthleteHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing athlete ID", http.StatusBadRequest)
		return
	}
	athlete, err := h.service.GetAthlete(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get athlete")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"athlete": athlete})
}

func (h *AthleteHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var athlete domain.AthleteProfile
	if !decodeJSON(w, r, &athlete) {
		return
	}
	if err := h.service.CreateAthlete(r.Context(), &athlete); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create athlete")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"athlete": athlete})
}

func (h *AthleteHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var athlete domain.AthleteProfile
	if !decodeJSON(w, r, &athlete) {
		return
	}
	if athlete.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateAthlete(r.Context(), &athlete); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update athlete")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"athlete": athlete})
}

func (h *AthleteHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteAthlete(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete athlete")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
