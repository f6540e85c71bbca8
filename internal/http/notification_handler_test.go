package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func TestNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifications := mocks.NewMockNotificationService(ctrl)
	handler := NewNotificationHandler(notifications, logger.NewMockLogger(t))

	t.Run("list unread only", func(t *testing.T) {
		notifications.EXPECT().List(gomock.Any(), domain.ListNotificationsRequest{
			OrganizationID: "org-1",
			UnreadOnly:     true,
			Limit:          10,
		}).Return([]*domain.Notification{{ID: "n1", Type: domain.NotificationLevelUp}}, nil)

		rec := serve(handler, http.MethodGet, "/api/notifications.list?organization_id=org-1&unread_only=true&limit=10", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["notifications"], 1)
	})

	t.Run("list invalid limit", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/api/notifications.list?organization_id=org-1&limit=all", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	send := domain.NotifyRequest{
		OrganizationID: "org-1",
		UserID:         "u2",
		Type:           domain.NotificationSystem,
		Title:          "Practice moved",
		Message:        "Thursday practice starts at 6pm",
		Channels:       []domain.NotificationChannel{domain.NotifyInApp, domain.NotifyEmail},
	}

	t.Run("send", func(t *testing.T) {
		notifications.EXPECT().Send(gomock.Any(), send).Return(&domain.Notification{ID: "n2", Title: send.Title}, nil)

		rec := serve(handler, http.MethodPost, "/api/notifications.send", send)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "n2", decodeBody(t, rec)["notification"].(map[string]interface{})["id"])
	})

	t.Run("send as athlete is forbidden", func(t *testing.T) {
		notifications.EXPECT().Send(gomock.Any(), send).
			Return(nil, domain.NewPermissionError(domain.ResourceNotifications, domain.ActionWrite, "staff only"))

		rec := serve(handler, http.MethodPost, "/api/notifications.send", send)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("mark read of another user", func(t *testing.T) {
		notifications.EXPECT().MarkRead(gomock.Any(), "org-1", "n9").Return(domain.NewNotFound("notification", "n9"))

		rec := serve(handler, http.MethodPost, "/api/notifications.markRead", orgIDRequest{OrganizationID: "org-1", ID: "n9"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("mark all read", func(t *testing.T) {
		notifications.EXPECT().MarkAllRead(gomock.Any(), "org-1").Return(int64(3), nil)

		rec := serve(handler, http.MethodPost, "/api/notifications.markAllRead", orgRequest{OrganizationID: "org-1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(3), decodeBody(t, rec)["updated"])
	})

	t.Run("unread count", func(t *testing.T) {
		notifications.EXPECT().UnreadCount(gomock.Any(), "org-1").Return(4, nil)

		rec := serve(handler, http.MethodGet, "/api/notifications.unreadCount?organization_id=org-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(4), decodeBody(t, rec)["unread"])
	})
}
