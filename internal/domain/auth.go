package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain AuthService
//go:generate mockgen -destination mocks/mock_auth_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain AuthRepository

// AuthRepository defines the interface for auth-related database operations
type AuthRepository interface {
	GetSessionByID(ctx context.Context, sessionID string, userID string) (*time.Time, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetMember(ctx context.Context, organizationID, userID string) (*OrganizationMember, error)
}

// TokenClaims are the claims carried by a session token
type TokenClaims struct {
	UserID    string
	SessionID string
	Type      UserType
	ExpiresAt time.Time
}

type AuthService interface {
	AuthenticateUserFromContext(ctx context.Context) (*User, error)
	// AuthorizeOrganization authenticates the caller, loads its membership and checks the role matrix
	AuthorizeOrganization(ctx context.Context, organizationID string, resource Resource, action Action) (context.Context, *User, *OrganizationMember, error)
	VerifyUserSession(ctx context.Context, userID, sessionID string) (*User, error)
	GenerateUserAuthToken(user *User, sessionID string, expiresAt time.Time) (string, error)
	ParseUserAuthToken(token string) (*TokenClaims, error)
}
