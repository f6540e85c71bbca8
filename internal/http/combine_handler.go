package http

import (
	"net/http"
	"time"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type CombineHandler struct {
	service domain.CombineService
	logger  logger.Logger
}

func NewCombineHandler(service domain.CombineService, logger logger.Logger) *CombineHandler {
	return &CombineHandler{service: service, logger: logger}
}

func (h *CombineHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/combines.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/combines.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/combines.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/combines.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/combines.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/combines.register", requireAuth(http.HandlerFunc(h.handleRegister)))
	mux.Handle("/api/combines.registrations", requireAuth(http.HandlerFunc(h.handleRegistrations)))
	mux.Handle("/api/combines.recordResult", requireAuth(http.HandlerFunc(h.handleRecordResult)))
	mux.Handle("/api/combines.results", requireAuth(http.HandlerFunc(h.handleResults)))
}

func (h *CombineHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	from := time.Now().UTC()
	if raw := q.Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			WriteJSONError(w, "Invalid from, expected RFC3339", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	events, err := h.service.ListUpcoming(r.Context(), q.Get("organization_id"), from)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list combines")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"combines": events})
}

func (h *CombineHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing combine ID", http.StatusBadRequest)
		return
	}
	event, err := h.service.GetEvent(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get combine")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"combine": event})
}

func (h *CombineHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var event domain.CombineEvent
	if !decodeJSON(w, r, &event) {
		return
	}
	if err := h.service.CreateEvent(r.Context(), &event); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create combine")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"combine": event})
}

func (h *CombineHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var event domain.CombineEvent
	if !decodeJSON(w, r, &event) {
		return
	}
	if event.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateEvent(r.Context(), &event); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update combine")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"combine": event})
}

func (h *CombineHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteEvent(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete combine")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CombineHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.CombineRegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.service.RegisterAthlete(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to register athlete")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *CombineHandler) handleRegistrations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	regs, err := h.service.ListRegistrations(r.Context(), q.Get("organization_id"), q.Get("combine_event_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list registrations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"registrations": regs})
}

func (h *CombineHandler) handleRecordResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var result domain.CombineResult
	if !decodeJSON(w, r, &result) {
		return
	}
	if err := h.service.RecordResult(r.Context(), result.OrganizationID, &result); err != nil {
		writeServiceError(w, h.logger, err, "Failed to record result")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"result": result})
}

func (h *CombineHandler) handleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	results, err := h.service.ListResults(r.Context(), q.Get("organization_id"), q.Get("combine_event_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list results")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
