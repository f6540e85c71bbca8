package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

const testJWTSecret = "test-jwt-secret-0123456789"

func setupAuthTest(t *testing.T) (*mocks.MockAuthRepository, *AuthService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuthRepository(ctrl)

	svc, err := NewAuthService(AuthServiceConfig{
		Repository: repo,
		JWTSecret:  testJWTSecret,
		Logger:     logger.NewMockLogger(t),
	})
	require.NoError(t, err)
	return repo, svc
}

func userContext(userID, sessionID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.UserIDKey, userID)
	ctx = context.WithValue(ctx, domain.SessionIDKey, sessionID)
	return context.WithValue(ctx, domain.UserTypeKey, string(domain.UserTypeUser))
}

func TestNewAuthService_ShortSecret(t *testing.T) {
	_, err := NewAuthService(AuthServiceConfig{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	_, svc := setupAuthTest(t)
	user := &domain.User{ID: "user-1"}
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := svc.GenerateUserAuthToken(user, "sess-1", expires)
	require.NoError(t, err)

	claims, err := svc.ParseUserAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, domain.UserTypeUser, claims.Type)
	assert.True(t, claims.ExpiresAt.Equal(expires))
}

func TestAuthService_ParseUserAuthToken_Rejects(t *testing.T) {
	_, svc := setupAuthTest(t)
	user := &domain.User{ID: "user-1"}

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateUserAuthToken(user, "sess-1", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		_, err = svc.ParseUserAuthToken(token)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(AuthServiceConfig{JWTSecret: "another-secret-abcdefgh", Logger: logger.NewMockLogger()})
		require.NoError(t, err)
		token, err := other.GenerateUserAuthToken(user, "sess-1", time.Now().Add(time.Hour))
		require.NoError(t, err)
		_, err = svc.ParseUserAuthToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id":    "user-1",
			"session_id": "sess-1",
			"type":       "user",
			"exp":        time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ParseUserAuthToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseUserAuthToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_VerifyUserSession(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "coach@example.com"}

	t.Run("valid", func(t *testing.T) {
		repo, svc := setupAuthTest(t)
		expires := time.Now().Add(time.Hour)
		repo.EXPECT().GetSessionByID(gomock.Any(), "sess-1", "user-1").Return(&expires, nil)
		repo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)

		got, err := svc.VerifyUserSession(context.Background(), "user-1", "sess-1")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("expired", func(t *testing.T) {
		repo, svc := setupAuthTest(t)
		expires := time.Now().Add(-time.Hour)
		repo.EXPECT().GetSessionByID(gomock.Any(), "sess-1", "user-1").Return(&expires, nil)

		_, err := svc.VerifyUserSession(context.Background(), "user-1", "sess-1")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("unknown session", func(t *testing.T) {
		repo, svc := setupAuthTest(t)
		repo.EXPECT().GetSessionByID(gomock.Any(), "sess-1", "user-1").Return(nil, domain.NewNotFound("session", "sess-1"))

		_, err := svc.VerifyUserSession(context.Background(), "user-1", "sess-1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("database error", func(t *testing.T) {
		repo, svc := setupAuthTest(t)
		repo.EXPECT().GetSessionByID(gomock.Any(), "sess-1", "user-1").Return(nil, errors.New("db down"))

		_, err := svc.VerifyUserSession(context.Background(), "user-1", "sess-1")
		assert.EqualError(t, err, "db down")
	})
}

func TestAuthService_AuthenticateUserFromContext(t *testing.T) {
	t.Run("missing values", func(t *testing.T) {
		_, svc := setupAuthTest(t)
		_, err := svc.AuthenticateUserFromContext(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("cached user", func(t *testing.T) {
		_, svc := setupAuthTest(t)
		user := &domain.User{ID: "user-1"}
		ctx := context.WithValue(context.Background(), domain.AuthUserKey, user)
		got, err := svc.AuthenticateUserFromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, user, got)
	})
}

func TestAuthService_AuthorizeOrganization(t *testing.T) {
	user := &domain.User{ID: "user-1"}

	tests := []struct {
		name      string
		role      domain.Role
		resource  domain.Resource
		action    domain.Action
		memberErr error
		wantPerm  bool
	}{
		{name: "owner writes payments", role: domain.RoleOwner, resource: domain.ResourcePayments, action: domain.ActionWrite},
		{name: "coach writes teams", role: domain.RoleCoach, resource: domain.ResourceTeams, action: domain.ActionWrite},
		{name: "coach cannot read payments", role: domain.RoleCoach, resource: domain.ResourcePayments, action: domain.ActionRead, wantPerm: true},
		{name: "scout cannot write athletes", role: domain.RoleScout, resource: domain.ResourceAthletes, action: domain.ActionWrite, wantPerm: true},
		{name: "not a member", memberErr: domain.NewNotFound("organization_member", "user-1"), resource: domain.ResourceAthletes, action: domain.ActionRead, wantPerm: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setupAuthTest(t)
			expires := time.Now().Add(time.Hour)
			repo.EXPECT().GetSessionByID(gomock.Any(), "sess-1", "user-1").Return(&expires, nil)
			repo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
			if tt.memberErr != nil {
				repo.EXPECT().GetMember(gomock.Any(), "org-1", "user-1").Return(nil, tt.memberErr)
			} else {
				repo.EXPECT().GetMember(gomock.Any(), "org-1", "user-1").
					Return(&domain.OrganizationMember{OrganizationID: "org-1", UserID: "user-1", Role: tt.role}, nil)
			}

			_, gotUser, _, err := svc.AuthorizeOrganization(userContext("user-1", "sess-1"), "org-1", tt.resource, tt.action)
			if tt.wantPerm {
				var perm *domain.PermissionError
				require.ErrorAs(t, err, &perm)
				assert.Equal(t, tt.resource, perm.Resource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, gotUser)
		})
	}

	t.Run("membership cached in context", func(t *testing.T) {
		repo, svc := setupAuthTest(t)
		expires := time.Now().Add(time.Hour)
		repo.EXPECT().GetSessionByID(gomock.Any(), "sess-1", "user-1").Return(&expires, nil)
		repo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
		repo.EXPECT().GetMember(gomock.Any(), "org-1", "user-1").
			Return(&domain.OrganizationMember{Role: domain.RoleAdmin}, nil).Times(1)

		ctx, _, _, err := svc.AuthorizeOrganization(userContext("user-1", "sess-1"), "org-1", domain.ResourceAdmin, domain.ActionRead)
		require.NoError(t, err)
		_, _, member, err := svc.AuthorizeOrganization(ctx, "org-1", domain.ResourceCamps, domain.ActionWrite)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, member.Role)
	})

	t.Run("missing organization", func(t *testing.T) {
		_, svc := setupAuthTest(t)
		_, _, _, err := svc.AuthorizeOrganization(context.Background(), "", domain.ResourceCamps, domain.ActionRead)
		assert.True(t, domain.IsValidation(err))
	})
}
