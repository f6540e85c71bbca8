package http

import (
	"net/http"
	"strings"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type RecruitingHandler struct {
	service domain.RecruitingService
	logger  logger.Logger
}

func NewRecruitingHandler(service domain.RecruitingService, logger logger.Logger) *RecruitingHandler {
	return &RecruitingHandler{service: service, logger: logger}
}

func (h *RecruitingHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/prospects.list", requireAuth(http.HandlerFunc(h.handleListProspects)))
	mux.Handle("/api/prospects.get", requireAuth(http.HandlerFunc(h.handleGetProspect)))
	mux.Handle("/api/prospects.create", requireAuth(http.HandlerFunc(h.handleCreateProspect)))
	mux.Handle("/api/prospects.update", requireAuth(http.HandlerFunc(h.handleUpdateProspect)))
	mux.Handle("/api/prospects.updateStatus", requireAuth(http.HandlerFunc(h.handleUpdateStatus)))
	mux.Handle("/api/prospects.delete", requireAuth(http.HandlerFunc(h.handleDeleteProspect)))
	mux.Handle("/api/prospects.import", requireAuth(http.HandlerFunc(h.handleImport)))

	mux.Handle("/api/campaigns.list", requireAuth(http.HandlerFunc(h.handleListCampaigns)))
	mux.Handle("/api/campaigns.get", requireAuth(http.HandlerFunc(h.handleGetCampaign)))
	mux.Handle("/api/campaigns.create", requireAuth(http.HandlerFunc(h.handleCreateCampaign)))
	mux.Handle("/api/campaigns.update", requireAuth(http.HandlerFunc(h.handleUpdateCampaign)))
	mux.Handle("/api/campaigns.delete", requireAuth(http.HandlerFunc(h.handleDeleteCampaign)))
	mux.Handle("/api/campaigns.launch", requireAuth(http.HandlerFunc(h.handleLaunch)))
}

func (h *RecruitingHandler) handleListProspects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	filter := domain.ProspectFilter{
		OrganizationID: q.Get("organization_id"),
		Sport:          q.Get("sport"),
		State:          q.Get("state"),
		Search:         q.Get("search"),
	}
	// status=new,contacted
	if raw := q.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, domain.ProspectStatus(s))
			}
		}
	}
	var ok bool
	for name, dst := range map[string]*int{
		"graduation_year": &filter.GraduationYear,
		"min_score":       &filter.MinScore,
		"limit":           &filter.Limit,
		"offset":          &filter.Offset,
	} {
		if *dst, ok = queryInt(r, name); !ok {
			WriteJSONError(w, "Invalid "+name, http.StatusBadRequest)
			return
		}
	}

	prospects, total, err := h.service.ListProspects(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list prospects")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"prospects": prospects,
		"total":     total,
	})
}

func (h *RecruitingHandler) handleGetProspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing prospect ID", http.StatusBadRequest)
		return
	}
	prospect, err := h.service.GetProspect(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get prospect")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"prospect": prospect})
}

func (h *RecruitingHandler) handleCreateProspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var prospect domain.Prospect
	if !decodeJSON(w, r, &prospect) {
		return
	}
	if err := h.service.CreateProspect(r.Context(), &prospect); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create prospect")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"prospect": prospect})
}

func (h *RecruitingHandler) handleUpdateProspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var prospect domain.Prospect
	if !decodeJSON(w, r, &prospect) {
		return
	}
	if prospect.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateProspect(r.Context(), &prospect); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update prospect")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"prospect": prospect})
}

func (h *RecruitingHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.UpdateProspectStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	prospect, err := h.service.UpdateProspectStatus(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update prospect status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"prospect": prospect})
}

func (h *RecruitingHandler) handleDeleteProspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteProspect(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete prospect")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *RecruitingHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.ImportProspectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	prospect, err := h.service.ImportFromURL(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to import prospect")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"prospect": prospect})
}

func (h *RecruitingHandler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	campaigns, err := h.service.ListCampaigns(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list campaigns")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

func (h *RecruitingHandler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing campaign ID", http.StatusBadRequest)
		return
	}
	campaign, err := h.service.GetCampaign(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"campaign": campaign})
}

func (h *RecruitingHandler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var campaign domain.Campaign
	if !decodeJSON(w, r, &campaign) {
		return
	}
	if err := h.service.CreateCampaign(r.Context(), &campaign); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create campaign")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"campaign": campaign})
}

func (h *RecruitingHandler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var campaign domain.Campaign
	if !decodeJSON(w, r, &campaign) {
		return
	}
	if campaign.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateCampaign(r.Context(), &campaign); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"campaign": campaign})
}

func (h *RecruitingHandler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeleteCampaign(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *RecruitingHandler) handleLaunch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	campaign, err := h.service.LaunchCampaign(r.Context(), req.OrganizationID, req.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to launch campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"campaign": campaign})
}
