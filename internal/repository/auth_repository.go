package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// SQLAuthRepository is a SQL implementation of the AuthRepository interface
type SQLAuthRepository struct {
	systemDB *sql.DB
	logger   logger.Logger
}

// NewSQLAuthRepository creates a new SQLAuthRepository
func NewSQLAuthRepository(db *sql.DB, logger logger.Logger) *SQLAuthRepository {
	return &SQLAuthRepository{
		systemDB: db,
		logger:   logger,
	}
}

// GetSessionByID returns the expiry of a session owned by userID
func (r *SQLAuthRepository) GetSessionByID(ctx context.Context, sessionID string, userID string) (*time.Time, error) {
	var expiresAt time.Time
	err := r.systemDB.QueryRowContext(ctx,
		"SELECT expires_at FROM user_sessions WHERE id = $1 AND user_id = $2",
		sessionID, userID,
	).Scan(&expiresAt)
	if err != nil {
		return nil, notFoundOr(err, "session", sessionID, "get session")
	}

	return &expiresAt, nil
}

// GetUserByID retrieves a user by ID
func (r *SQLAuthRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.systemDB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1",
		userID,
	))
	if err != nil {
		return nil, notFoundOr(err, "user", userID, "get user")
	}
	return user, nil
}

// GetMember loads the caller's membership of an organization
func (r *SQLAuthRepository) GetMember(ctx context.Context, organizationID, userID string) (*domain.OrganizationMember, error) {
	var m domain.OrganizationMember
	err := r.systemDB.QueryRowContext(ctx,
		"SELECT organization_id, user_id, role, created_at FROM organization_members WHERE organization_id = $1 AND user_id = $2",
		organizationID, userID,
	).Scan(&m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.WithField("organization_id", organizationID).
				WithField("user_id", userID).
				Debug("User is not a member of the organization")
		}
		return nil, notFoundOr(err, "organization_member", userID, "get organization member")
	}
	return &m, nil
}

var _ domain.AuthRepository = (*SQLAuthRepository)(nil)
