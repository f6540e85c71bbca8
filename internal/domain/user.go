package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain UserRepository
//go:generate mockgen -destination mocks/mock_user_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain UserServiceInterface

// Key for storing user ID and session ID in context
type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionIDKey contextKey = "session_id"
	UserTypeKey  contextKey = "type"
	AuthUserKey  contextKey = "auth_user"
)

type UserType string

const (
	UserTypeUser UserType = "user"
)

// OrganizationMemberKey creates a context key for caching the caller's membership
func OrganizationMemberKey(organizationID string) contextKey {
	return contextKey("organization_member_" + organizationID)
}

// User represents a user in the system
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Carrier   string    `json:"carrier,omitempty" db:"carrier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Session represents a user session. MagicCode holds the HMAC of the code, never the code itself.
type Session struct {
	ID               string     `json:"id" db:"id"`
	UserID           string     `json:"user_id" db:"user_id"`
	ExpiresAt        time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	MagicCode        string     `json:"-" db:"magic_code"`
	MagicCodeExpires *time.Time `json:"-" db:"magic_code_expires_at"`
}

type SignInInput struct {
	Email string `json:"email"`
}

// Validate normalizes the email and checks its format
func (i *SignInInput) Validate() error {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	if i.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(i.Email) {
		return NewValidationError("invalid email format")
	}
	return nil
}

type VerifyCodeInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (i *VerifyCodeInput) Validate() error {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Code = strings.TrimSpace(i.Code)
	if !govalidator.IsEmail(i.Email) {
		return NewValidationError("invalid email format")
	}
	if len(i.Code) != 6 || !govalidator.IsNumeric(i.Code) {
		return NewValidationError("code must be 6 digits")
	}
	return nil
}

type AuthResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateProfileInput is what a user may change about themselves
type UpdateProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Carrier string `json:"carrier,omitempty"`
}

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	SignIn(ctx context.Context, input SignInInput) (string, error)
	VerifyCode(ctx context.Context, input VerifyCodeInput) (*AuthResponse, error)
	VerifyUserSession(ctx context.Context, userID string, sessionID string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	Me(ctx context.Context) (*User, []*OrganizationWithRole, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*User, error)
	Logout(ctx context.Context) error
}

type UserRepository interface {
	// CreateUser creates a new user in the database
	CreateUser(ctx context.Context, user *User) error

	// GetUserByEmail retrieves a user by their email address
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID retrieves a user by their ID
	GetUserByID(ctx context.Context, id string) (*User, error)

	UpdateUser(ctx context.Context, user *User) error

	// CreateSession creates a new session for a user
	CreateSession(ctx context.Context, session *Session) error

	// GetSessionByID retrieves a session by its ID
	GetSessionByID(ctx context.Context, id string) (*Session, error)

	// GetSessionsByUserID retrieves all sessions for a user
	GetSessionsByUserID(ctx context.Context, userID string) ([]*Session, error)

	// UpdateSession updates an existing session
	UpdateSession(ctx context.Context, session *Session) error

	// DeleteSession deletes a session by its ID
	DeleteSession(ctx context.Context, id string) error
}
