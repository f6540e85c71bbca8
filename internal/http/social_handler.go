package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type SocialHandler struct {
	service domain.SocialService
	logger  logger.Logger
}

func NewSocialHandler(service domain.SocialService, logger logger.Logger) *SocialHandler {
	return &SocialHandler{service: service, logger: logger}
}

func (h *SocialHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/social.accounts", requireAuth(http.HandlerFunc(h.handleListAccounts)))
	mux.Handle("/api/social.connect", requireAuth(http.HandlerFunc(h.handleConnect)))
	mux.Handle("/api/social.disconnect", requireAuth(http.HandlerFunc(h.handleDisconnect)))
	mux.Handle("/api/social.posts", requireAuth(http.HandlerFunc(h.handleListPosts)))
	mux.Handle("/api/social.getPost", requireAuth(http.HandlerFunc(h.handleGetPost)))
	mux.Handle("/api/social.createPost", requireAuth(http.HandlerFunc(h.handleCreatePost)))
	mux.Handle("/api/social.deletePost", requireAuth(http.HandlerFunc(h.handleDeletePost)))
	mux.Handle("/api/social.schedule", requireAuth(http.HandlerFunc(h.handleSchedule)))
	mux.Handle("/api/social.publish", requireAuth(http.HandlerFunc(h.handlePublish)))
}

func (h *SocialHandler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	accounts, err := h.service.ListAccounts(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list accounts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"accounts": accounts})
}

func (h *SocialHandler) handleConnect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.ConnectAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	account, err := h.service.ConnectAccount(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to connect account")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"account": account})
}

func (h *SocialHandler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DisconnectAccount(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to disconnect account")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *SocialHandler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	posts, err := h.service.ListPosts(r.Context(), q.Get("organization_id"), domain.SocialPostStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list posts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func (h *SocialHandler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing post ID", http.StatusBadRequest)
		return
	}
	post, err := h.service.GetPost(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

func (h *SocialHandler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var post domain.SocialPost
	if !decodeJSON(w, r, &post) {
		return
	}
	if err := h.service.CreatePost(r.Context(), &post); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"post": post})
}

func (h *SocialHandler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.DeletePost(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to delete post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *SocialHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.SchedulePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.service.SchedulePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to schedule post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

func (h *SocialHandler) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.service.PublishNow(r.Context(), req.OrganizationID, req.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to publish post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}
