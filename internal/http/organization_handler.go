package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type OrganizationHandler struct {
	service domain.OrganizationService
	logger  logger.Logger
}

func NewOrganizationHandler(service domain.OrganizationService, logger logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{service: service, logger: logger}
}

type removeMemberRequest struct {
	OrganizationID string `json:"organization_id"`
	UserID         string `json:"user_id"`
}

func (h *OrganizationHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/organizations.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/organizations.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/organizations.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/organizations.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/organizations.members", requireAuth(http.HandlerFunc(h.handleMembers)))
	mux.Handle("/api/organizations.addMember", requireAuth(http.HandlerFunc(h.handleAddMember)))
	mux.Handle("/api/organizations.removeMember", requireAuth(http.HandlerFunc(h.handleRemoveMember)))
}

func (h *OrganizationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgs, err := h.service.ListOrganizations(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list organizations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"organizations": orgs})
}

func (h *OrganizationHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID := r.URL.Query().Get("organization_id")
	if orgID == "" {
		WriteJSONError(w, "Missing organization_id", http.StatusBadRequest)
		return
	}
	org, err := h.service.GetOrganization(r.Context(), orgID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get organization")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"organization": org})
}

func (h *OrganizationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.CreateOrganizationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	org, err := h.service.CreateOrganization(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create organization")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"organization": org})
}

func (h *OrganizationHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var org domain.Organization
	if !decodeJSON(w, r, &org) {
		return
	}
	if org.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	updated, err := h.service.UpdateOrganization(r.Context(), &org)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update organization")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"organization": updated})
}

func (h *OrganizationHandler) handleMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	members, err := h.service.ListMembers(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list members")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

func (h *OrganizationHandler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.AddMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.service.AddMember(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to add member")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"member": member})
}

func (h *OrganizationHandler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req removeMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" {
		WriteJSONError(w, "Missing user_id", http.StatusBadRequest)
		return
	}
	if err := h.service.RemoveMember(r.Context(), req.OrganizationID, req.UserID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to remove member")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
