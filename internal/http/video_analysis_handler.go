package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type VideoAnalysisHandler struct {
	service domain.VideoAnalysisService
	logger  logger.Logger
}

func NewVideoAnalysisHandler(service domain.VideoAnalysisService, logger logger.Logger) *VideoAnalysisHandler {
	return &VideoAnalysisHandler{service: service, logger: logger}
}

func (h *VideoAnalysisHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/analyses.uploadUrl", requireAuth(http.HandlerFunc(h.handleUploadURL)))
	mux.Handle("/api/analyses.analyze", requireAuth(http.HandlerFunc(h.handleAnalyze)))
	mux.Handle("/api/analyses.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/analyses.list", requireAuth(http.HandlerFunc(h.handleList)))
}

func (h *VideoAnalysisHandler) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.UploadURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.service.RequestUploadURL(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to create upload URL")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *VideoAnalysisHandler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	analysis, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to analyze video")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"analysis": analysis})
}

func (h *VideoAnalysisHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing analysis ID", http.StatusBadRequest)
		return
	}
	analysis, err := h.service.GetAnalysis(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get analysis")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analysis": analysis})
}

func (h *VideoAnalysisHandler) handleList(w http.ResponseWriter, r *http.Request) {
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
	analyses, err := h.service.ListAnalyses(r.Context(), q.Get("organization_id"), q.Get("athlete_id"), limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list analyses")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": analyses})
}
