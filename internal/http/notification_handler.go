package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type NotificationHandler struct {
	service domain.NotificationService
	logger  logger.Logger
}

func NewNotificationHandler(service domain.NotificationService, logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

func (h *NotificationHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/notifications.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/notifications.send", requireAuth(http.HandlerFunc(h.handleSend)))
	mux.Handle("/api/notifications.markRead", requireAuth(http.HandlerFunc(h.handleMarkRead)))
	mux.Handle("/api/notifications.markAllRead", requireAuth(http.HandlerFunc(h.handleMarkAllRead)))
	mux.Handle("/api/notifications.unreadCount", requireAuth(http.HandlerFunc(h.handleUnreadCount)))
}

func (h *NotificationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	limit, ok := queryInt(r, "limit")
	if !ok {
		WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
		return
	}
	notifications, err := h.service.List(r.Context(), domain.ListNotificationsRequest{
		OrganizationID: q.Get("organization_id"),
		UnreadOnly:     q.Get("unread_only") == "true",
		Limit:          limit,
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

func (h *NotificationHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.NotifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	notification, err := h.service.Send(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to send notification")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"notification": notification})
}

func (h *NotificationHandler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.service.MarkRead(r.Context(), req.OrganizationID, req.ID); err != nil {
		writeServiceError(w, h.logger, err, "Failed to mark notification read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *NotificationHandler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := h.service.MarkAllRead(r.Context(), req.OrganizationID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to mark notifications read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *NotificationHandler) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	count, err := h.service.UnreadCount(r.Context(), r.URL.Query().Get("organization_id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to count notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": count})
}
