package http

import (
	"io"
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// LeadHandler serves leads, events and RSVPs, including the public RSVP form
// and the booking provider webhook.
type LeadHandler struct {
	leads  domain.LeadService
	events domain.EventService
	logger logger.Logger
}

func NewLeadHandler(leads domain.LeadService, events domain.EventService, logger logger.Logger) *LeadHandler {
	return &LeadHandler{leads: leads, events: events, logger: logger}
}

type leadConvertRequest struct {
	OrganizationID string `json:"organization_id"`
	LeadID         string `json:"lead_id"`
}

type rsvpRequest struct {
	OrganizationID string `json:"organization_id"`
	RSVPID         string `json:"rsvp_id"`
}

func (h *LeadHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	// Public
	mux.HandleFunc("/api/events.rsvp", h.handleCreateRSVP)
	mux.HandleFunc("/api/events.bookingWebhook", h.handleBookingWebhook)

	mux.Handle("/api/leads.list", requireAuth(http.HandlerFunc(h.handleListLeads)))
	mux.Handle("/api/leads.get", requireAuth(http.HandlerFunc(h.handleGetLead)))
	mux.Handle("/api/leads.create", requireAuth(http.HandlerFunc(h.handleCreateLead)))
	mux.Handle("/api/leads.update", requireAuth(http.HandlerFunc(h.handleUpdateLead)))
	mux.Handle("/api/leads.delete", requireAuth(http.HandlerFunc(h.handleDeleteLead)))
	mux.Handle("/api/leads.convert", requireAuth(http.HandlerFunc(h.handleConvert)))

	mux.Handle("/api/events.list", requireAuth(http.HandlerFunc(h.handleListEvents)))
	mux.Handle("/api/events.get", requireAuth(http.HandlerFunc(h.handleGetEvent)))
	mux.Handle("/api/events.create", requireAuth(http.HandlerFunc(h.handleCreateEvent)))
	mux.Handle("/api/events.update", requireAuth(http.HandlerFunc(h.handleUpdateEvent)))
	mux.Handle("/api/events.delete", requireAuth(http.HandlerFunc(h.handleDeleteEvent)))
	mux.Handle("/api/rsvps.list", requireAuth(http.HandlerFunc(h.handleListRSVPs)))
	mux.Handle("/api/rsvps.cancel", requireAuth(http.HandlerFunc(h.handleCancelRSVP)))
}

func (h *LeadHandler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	leads, err := h.leads.ListLeads(r.Context(), q.Get("organization_id"), domain.LeadStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list leads")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}

func (h *LeadHandler) handleGetLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing lead ID", http.StatusBadRequest)
		return
	}
	lead, err := h.leads.GetLead(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"lead": lead})
}

func (h *LeadHandler) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var lead domain.Lead
	if !decodeJSON(w, r, &lead) {
		return
	}
	if err := h.leads.CreateLead(r.Context(), &lead); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create lead")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"lead": lead})
}

func (h *LeadHandler) handleUpdateLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var lead domain.Lead
	if !decodeJSON(w, r, &lead) {
		return
	}
	if lead.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.leads.UpdateLead(r.Context(), &lead); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"lead": lead})
}

func (h *LeadHandler) handleDeleteLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.leads.DeleteLead(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *LeadHandler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req leadConvertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	prospect, err := h.leads.ConvertLeadToProspect(r.Context(), req.OrganizationID, req.LeadID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to convert lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"prospect": prospect})
}

func (h *LeadHandler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	events, err := h.events.ListEvents(r.Context(), q.Get("organization_id"), q.Get("upcoming") == "true")
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

func (h *LeadHandler) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing event ID", http.StatusBadRequest)
		return
	}
	event, err := h.events.GetEvent(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"event": event})
}

func (h *LeadHandler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var event domain.Event
	if !decodeJSON(w, r, &event) {
		return
	}
	if err := h.events.CreateEvent(r.Context(), &event); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"event": event})
}

func (h *LeadHandler) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var event domain.Event
	if !decodeJSON(w, r, &event) {
		return
	}
	if event.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.events.UpdateEvent(r.Context(), &event); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"event": event})
}

func (h *LeadHandler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.events.DeleteEvent(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *LeadHandler) handleCreateRSVP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.CreateRSVPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rsvp, err := h.events.CreateRSVP(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create RSVP")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"rsvp": rsvp})
}

func (h *LeadHandler) handleBookingWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
	if err != nil {
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	rsvp, err := h.events.HandleBookingWebhook(r.Context(), payload, r.Header)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to process booking")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"rsvp": rsvp})
}

func (h *LeadHandler) handleListRSVPs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	rsvps, err := h.events.ListRSVPs(r.Context(), q.Get("organization_id"), q.Get("event_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list RSVPs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"rsvps": rsvps})
}

func (h *LeadHandler) handleCancelRSVP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req rsvpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rsvp, err := h.events.CancelRSVP(r.Context(), req.OrganizationID, req.RSVPID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to cancel RSVP")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"rsvp": rsvp})
}
