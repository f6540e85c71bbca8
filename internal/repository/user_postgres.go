package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opencensus.io/trace"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

type userRepository struct {
	systemDB *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{systemDB: db}
}

const userColumns = `id, email, name, phone, carrier, created_at, updated_at`

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user                 domain.User
		name, phone, carrier sql.NullString
	)
	if err := row.Scan(&user.ID, &user.Email, &name, &phone, &carrier, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	user.Name = name.String
	user.Phone = phone.String
	user.Carrier = carrier.String
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = strings.ToLower(user.Email)
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, name, phone, carrier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.systemDB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullString(user.Name),
		nullString(user.Phone),
		nullString(user.Carrier),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("user", "email already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.systemDB.QueryRowContext(ctx, query, strings.ToLower(email)))
	if err != nil {
		return nil, notFoundOr(err, "user", email, "get user")
	}
	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "UserRepository", "GetUserByID")
	defer span.End()

	span.AddAttributes(trace.StringAttribute("user.id", id))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	startTime := time.Now()
	user, err := scanUser(r.systemDB.QueryRowContext(ctx, query, id))
	span.AddAttributes(trace.Int64Attribute("db.query_duration_ms", time.Since(startTime).Milliseconds()))

	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(trace.Status{Code: trace.StatusCodeNotFound, Message: "user not found"})
		return nil, domain.NewNotFound("user", id)
	}
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE users SET name = $1, phone = $2, carrier = $3, updated_at = $4
		WHERE id = $5
	`
	res, err := r.systemDB.ExecContext(ctx, query,
		nullString(user.Name),
		nullString(user.Phone),
		nullString(user.Carrier),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectOneRow(res, "user", user.ID)
}

const sessionColumns = `id, user_id, expires_at, created_at, magic_code, magic_code_expires_at`

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		session     domain.Session
		magicCode   sql.NullString
		codeExpires sql.NullTime
	)
	if err := row.Scan(&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt, &magicCode, &codeExpires); err != nil {
		return nil, err
	}
	session.MagicCode = magicCode.String
	session.MagicCodeExpires = timePtr(codeExpires)
	return &session, nil
}

func (r *userRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now().UTC()
	session.ExpiresAt = session.ExpiresAt.UTC()

	query := `
		INSERT INTO user_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.systemDB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.ExpiresAt,
		session.CreatedAt,
		nullString(session.MagicCode),
		nullTime(session.MagicCodeExpires),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *userRepository) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM user_sessions WHERE id = $1`
	session, err := scanSession(r.systemDB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "session", id, "get session")
	}
	return session, nil
}

func (r *userRepository) GetSessionsByUserID(ctx context.Context, userID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM user_sessions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.systemDB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *userRepository) UpdateSession(ctx context.Context, session *domain.Session) error {
	query := `
		UPDATE user_sessions
		SET expires_at = $1, magic_code = $2, magic_code_expires_at = $3
		WHERE id = $4
	`
	res, err := r.systemDB.ExecContext(ctx, query,
		session.ExpiresAt.UTC(),
		nullString(session.MagicCode),
		nullTime(session.MagicCodeExpires),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return expectOneRow(res, "session", session.ID)
}

func (r *userRepository) DeleteSession(ctx context.Context, id string) error {
	res, err := r.systemDB.ExecContext(ctx, `DELETE FROM user_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return expectOneRow(res, "session", id)
}
