package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type CampHandler struct {
	service domain.CampService
	logger  logger.Logger
}

func NewCampHandler(service domain.CampService, logger logger.Logger) *CampHandler {
	return &CampHandler{service: service, logger: logger}
}

type cancelRegistrationRequest struct {
	OrganizationID string `json:"organization_id"`
	RegistrationID string `json:"registration_id"`
}

func (h *CampHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	// Public sign up
	mux.HandleFunc("/api/camps.register", h.handleRegister)

	mux.Handle("/api/camps.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/camps.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/camps.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/camps.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/camps.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
	mux.Handle("/api/camps.registrations", requireAuth(http.HandlerFunc(h.handleRegistrations)))
	mux.Handle("/api/camps.cancelRegistration", requireAuth(http.HandlerFunc(h.handleCancelRegistration)))
}

func (h *CampHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.CampRegistrationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to register for camp")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *CampHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	camps, err := h.service.ListCamps(r.Context(), q.Get("organization_id"), domain.CampStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list camps")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"camps": camps})
}

func (h *CampHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing camp ID", http.StatusBadRequest)
		return
	}
	camp, err := h.service.GetCamp(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get camp")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"camp": camp})
}

func (h *CampHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var camp domain.Camp
	if !decodeJSON(w, r, &camp) {
		return
	}
	if err := h.service.CreateCamp(r.Context(), &camp); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create camp")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"camp": camp})
}

func (h *CampHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var camp domain.Camp
	if !decodeJSON(w, r, &camp) {
		return
	}
	if camp.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateCamp(r.Context(), &camp); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update camp")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"camp": camp})
}

func (h *CampHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteCamp(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete camp")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *CampHandler) handleRegistrations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	regs, err := h.service.ListRegistrations(r.Context(), q.Get("organization_id"), q.Get("camp_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list registrations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"registrations": regs})
}

func (h *CampHandler) handleCancelRegistration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req cancelRegistrationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reg, err := h.service.CancelRegistration(r.Context(), req.OrganizationID, req.RegistrationID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to cancel registration")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"registration": reg})
}
