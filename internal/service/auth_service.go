package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

var (
	ErrSessionExpired = errors.New("session expired")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidToken   = errors.New("invalid token")
)

// sessionClaims is the JWT body of a user session token
type sessionClaims struct {
	UserID    string          `json:"user_id"`
	SessionID string          `json:"session_id"`
	Type      domain.UserType `json:"type"`
	jwt.RegisteredClaims
}

type AuthService struct {
	repo   domain.AuthRepository
	logger logger.Logger
	secret []byte
	now    func() time.Time
}

type AuthServiceConfig struct {
	Repository domain.AuthRepository
	JWTSecret  string
	Logger     logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("jwt secret must be at least 16 characters")
	}
	return &AuthService{
		repo:   cfg.Repository,
		logger: cfg.Logger,
		secret: []byte(cfg.JWTSecret),
		now:    time.Now,
	}, nil
}

var _ domain.AuthService = (*AuthService)(nil)

// AuthenticateUserFromContext resolves the user stored in ctx by the auth middleware
func (s *AuthService) AuthenticateUserFromContext(ctx context.Context) (*domain.User, error) {
	if user, ok := ctx.Value(domain.AuthUserKey).(*domain.User); ok && user != nil {
		return user, nil
	}

	userID, ok := ctx.Value(domain.UserIDKey).(string)
	if !ok || userID == "" {
		return nil, domain.ErrUnauthorized
	}
	userType, _ := ctx.Value(domain.UserTypeKey).(string)
	if userType != string(domain.UserTypeUser) {
		return nil, domain.ErrUnauthorized
	}
	sessionID, ok := ctx.Value(domain.SessionIDKey).(string)
	if !ok || sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.VerifyUserSession(ctx, userID, sessionID)
}

// AuthorizeOrganization authenticates the caller and checks its role against the permission matrix.
// The membership is cached in the returned context so nested calls skip the lookup.
func (s *AuthService) AuthorizeOrganization(ctx context.Context, organizationID string, resource domain.Resource, action domain.Action) (context.Context, *domain.User, *domain.OrganizationMember, error) {
	if organizationID == "" {
		return ctx, nil, nil, domain.NewValidationError("organization_id is required")
	}

	user, err := s.AuthenticateUserFromContext(ctx)
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = context.WithValue(ctx, domain.AuthUserKey, user)

	key := domain.OrganizationMemberKey(organizationID)
	member, ok := ctx.Value(key).(*domain.OrganizationMember)
	if !ok || member == nil {
		member, err = s.repo.GetMember(ctx, organizationID, user.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				return ctx, nil, nil, domain.NewPermissionError(resource, action, "you are not a member of this organization")
			}
			s.logger.WithField("organization_id", organizationID).
				WithField("user_id", user.ID).
				Error(fmt.Sprintf("Failed to load organization membership: %v", err))
			return ctx, nil, nil, err
		}
		ctx = context.WithValue(ctx, key, member)
	}

	if !member.Can(resource, action) {
		return ctx, user, member, domain.NewPermissionError(resource, action,
			fmt.Sprintf("role %s cannot %s %s", member.Role, action, resource))
	}
	return ctx, user, member, nil
}

// VerifyUserSession checks that the session exists and has not expired
func (s *AuthService) VerifyUserSession(ctx context.Context, userID, sessionID string) (*domain.User, error) {
	expiresAt, err := s.repo.GetSessionByID(ctx, sessionID, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		s.logger.WithField("session_id", sessionID).Error(fmt.Sprintf("Failed to get session: %v", err))
		return nil, err
	}

	if s.now().After(*expiresAt) {
		s.logger.WithField("session_id", sessionID).Debug("Session expired")
		return nil, ErrSessionExpired
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.WithField("user_id", userID).Error(fmt.Sprintf("Failed to get user: %v", err))
		return nil, err
	}
	return user, nil
}

// GenerateUserAuthToken signs an HS256 token for a session
func (s *AuthService) GenerateUserAuthToken(user *domain.User, sessionID string, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		UserID:    user.ID,
		SessionID: sessionID,
		Type:      domain.UserTypeUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ParseUserAuthToken verifies the signature and expiry of a session token
func (s *AuthService) ParseUserAuthToken(tokenString string) (*domain.TokenClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" || claims.SessionID == "" || claims.Type != domain.UserTypeUser {
		return nil, ErrInvalidToken
	}

	return &domain.TokenClaims{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Type:      claims.Type,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
