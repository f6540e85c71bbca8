package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_notification_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain NotificationRepository
//go:generate mockgen -destination mocks/mock_notification_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain NotificationService

type NotificationChannel string

const (
	NotifyInApp NotificationChannel = "in_app"
	NotifyEmail NotificationChannel = "email"
	NotifySMS   NotificationChannel = "sms"
)

type NotificationType string

const (
	NotificationAchievement  NotificationType = "achievement"
	NotificationLevelUp      NotificationType = "level_up"
	NotificationAnalysis     NotificationType = "analysis"
	NotificationRegistration NotificationType = "registration"
	NotificationEnrollment   NotificationType = "enrollment"
	NotificationSystem       NotificationType = "system"
)

type Notification struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Link           string           `json:"link,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"created_at"`
}

// NotifyRequest fans a message out to the in-app feed plus any extra channels
type NotifyRequest struct {
	OrganizationID string                `json:"organization_id"`
	UserID         string                `json:"user_id"`
	Type           NotificationType      `json:"type"`
	Title          string                `json:"title"`
	Message        string                `json:"message"`
	Link           string                `json:"link,omitempty"`
	Channels       []NotificationChannel `json:"channels,omitempty"`
}

func (r *NotifyRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.OrganizationID == "" || r.UserID == "" {
		return NewValidationError("organization_id and user_id are required")
	}
	if r.Title == "" {
		return NewValidationError("notification title is required")
	}
	if r.Type == "" {
		r.Type = NotificationSystem
	}
	for _, c := range r.Channels {
		switch c {
		case NotifyInApp, NotifyEmail, NotifySMS:
		default:
			return NewValidationError("invalid notification channel: " + string(c))
		}
	}
	return nil
}

// Wants reports whether the request asked for channel c
func (r *NotifyRequest) Wants(c NotificationChannel) bool {
	for _, ch := range r.Channels {
		if ch == c {
			return true
		}
	}
	return false
}

type ListNotificationsRequest struct {
	OrganizationID string
	UnreadOnly     bool
	Limit          int
}

type NotificationService interface {
	// Notify is internal and does not check the caller
	Notify(ctx context.Context, req NotifyRequest) (*Notification, error)
	// Send lets staff notify a member of the organization
	Send(ctx context.Context, req NotifyRequest) (*Notification, error)
	List(ctx context.Context, req ListNotificationsRequest) ([]*Notification, error)
	MarkRead(ctx context.Context, organizationID, id string) error
	MarkAllRead(ctx context.Context, organizationID string) (int64, error)
	UnreadCount(ctx context.Context, organizationID string) (int, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, organizationID, userID string, unreadOnly bool, limit int) ([]*Notification, error)
	// MarkRead only touches notifications owned by userID
	MarkRead(ctx context.Context, organizationID, userID, id string) (bool, error)
	MarkAllRead(ctx context.Context, organizationID, userID string) (int64, error)
	UnreadCount(ctx context.Context, organizationID, userID string) (int, error)
}
