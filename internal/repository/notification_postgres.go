package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// NotificationRepository stores the in-app notification feed
type NotificationRepository struct {
	systemDB *sql.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &NotificationRepository{systemDB: db}
}

var notificationColumns = []string{"id", "organization_id", "user_id", "type", "title", "message", "link", "read", "created_at"}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("notifications").
		Columns(notificationColumns...).
		Values(n.ID, n.OrganizationID, n.UserID, n.Type, n.Title, nullString(n.Message), nullString(n.Link), n.Read, n.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListForUser(ctx context.Context, organizationID, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	where := sq.Eq{"organization_id": organizationID, "user_id": userID}
	if unreadOnly {
		where["read"] = false
	}
	query, args, err := psql.Select(notificationColumns...).
		From("notifications").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(pageLimit(limit, 50, 200)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*domain.Notification{}
	for rows.Next() {
		var (
			n             domain.Notification
			message, link sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.OrganizationID, &n.UserID, &n.Type, &n.Title, &message, &link, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Message = message.String
		n.Link = link.String
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, organizationID, userID, id string) (bool, error) {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("notifications").
		Set("read", true).
		Where(sq.Eq{"id": id, "organization_id": organizationID, "user_id": userID}))
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, organizationID, userID string) (int64, error) {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("notifications").
		Set("read", true).
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID, "read": false}))
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return res.RowsAffected()
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, organizationID, userID string) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"organization_id": organizationID, "user_id": userID, "read": false}))
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return n, nil
}
