package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/crypto"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/ratelimiter"
)

const testSecretKey = "test-secret-key-for-hmac-verification"

type userTestDeps struct {
	repo    *mocks.MockUserRepository
	orgRepo *mocks.MockOrganizationRepository
	auth    *mocks.MockAuthService
	mailer  *mocks.MockMailer
	limiter *ratelimiter.RateLimiter
}

func setupUserTest(t *testing.T, production bool) (*userTestDeps, *UserService) {
	ctrl := gomock.NewController(t)
	deps := &userTestDeps{
		repo:    mocks.NewMockUserRepository(ctrl),
		orgRepo: mocks.NewMockOrganizationRepository(ctrl),
		auth:    mocks.NewMockAuthService(ctrl),
		mailer:  mocks.NewMockMailer(ctrl),
		limiter: ratelimiter.NewRateLimiter(),
	}
	deps.limiter.SetPolicy(SignInNamespace, 5, 5*time.Minute)
	deps.limiter.SetPolicy(VerifyCodeNamespace, 5, 5*time.Minute)
	t.Cleanup(deps.limiter.Stop)

	svc, err := NewUserService(UserServiceConfig{
		Repository:             deps.repo,
		OrganizationRepository: deps.orgRepo,
		AuthService:            deps.auth,
		Mailer:                 deps.mailer,
		RateLimiter:            deps.limiter,
		SecretKey:              testSecretKey,
		SessionExpiry:          24 * time.Hour,
		IsProduction:           production,
		Logger:                 logger.NewMockLogger(t),
	})
	require.NoError(t, err)
	return deps, svc
}

func TestUserService_SignIn(t *testing.T) {
	email := "coach@example.com"

	t.Run("existing user gets a hashed code", func(t *testing.T) {
		deps, svc := setupUserTest(t, false)
		user := &domain.User{ID: "user-1", Email: email}

		var stored *domain.Session
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
		deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Session) error {
				stored = s
				return nil
			})
		deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mailer.Message) error {
				assert.Equal(t, email, msg.To)
				assert.NotEmpty(t, msg.HTML)
				return nil
			})

		code, err := svc.SignIn(context.Background(), domain.SignInInput{Email: "  Coach@Example.com "})
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.NotNil(t, stored)
		assert.NotEqual(t, code, stored.MagicCode)
		assert.True(t, crypto.VerifyMagicCode(code, stored.MagicCode, testSecretKey))
		assert.WithinDuration(t, time.Now().Add(magicCodeTTL), *stored.MagicCodeExpires, time.Minute)
	})

	t.Run("unknown email creates the user", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, domain.NewNotFound("user", email))
		deps.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) error {
				assert.Equal(t, email, u.Email)
				u.ID = "user-new"
				return nil
			})
		deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Session) error {
				assert.Equal(t, "user-new", s.UserID)
				return nil
			})
		deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		code, err := svc.SignIn(context.Background(), domain.SignInInput{Email: email})
		require.NoError(t, err)
		assert.Empty(t, code, "production never returns the code")
	})

	t.Run("mail failure", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(&domain.User{ID: "u", Email: email}, nil)
		deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
		deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := svc.SignIn(context.Background(), domain.SignInInput{Email: email})
		assert.EqualError(t, err, "smtp down")
	})

	t.Run("invalid email", func(t *testing.T) {
		_, svc := setupUserTest(t, true)
		_, err := svc.SignIn(context.Background(), domain.SignInInput{Email: "nope"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("rate limited after five attempts", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(&domain.User{ID: "u", Email: email}, nil).Times(5)
		deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil).Times(5)
		deps.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(5)

		for i := 0; i < 5; i++ {
			_, err := svc.SignIn(context.Background(), domain.SignInInput{Email: email})
			require.NoError(t, err)
		}
		_, err := svc.SignIn(context.Background(), domain.SignInInput{Email: email})
		var limited *domain.ErrRateLimited
		require.ErrorAs(t, err, &limited)
		assert.Greater(t, limited.RetryAfter, time.Duration(0))
	})
}

func TestUserService_VerifyCode(t *testing.T) {
	email := "coach@example.com"
	user := &domain.User{ID: "user-1", Email: email}

	sessionWithCode := func(code string, expires time.Time) *domain.Session {
		return &domain.Session{
			ID:               "sess-1",
			UserID:           user.ID,
			ExpiresAt:        time.Now().Add(24 * time.Hour),
			MagicCode:        crypto.HashMagicCode(code, testSecretKey),
			MagicCodeExpires: &expires,
		}
	}

	t.Run("valid code", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		session := sessionWithCode("123456", time.Now().Add(time.Minute))

		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
		deps.repo.EXPECT().GetSessionsByUserID(gomock.Any(), user.ID).Return([]*domain.Session{session}, nil)
		deps.repo.EXPECT().UpdateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Session) error {
				assert.Empty(t, s.MagicCode)
				assert.Nil(t, s.MagicCodeExpires)
				return nil
			})
		deps.auth.EXPECT().GenerateUserAuthToken(user, "sess-1", session.ExpiresAt).Return("jwt-token", nil)

		resp, err := svc.VerifyCode(context.Background(), domain.VerifyCodeInput{Email: email, Code: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("expired code", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		session := sessionWithCode("123456", time.Now().Add(-time.Minute))
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
		deps.repo.EXPECT().GetSessionsByUserID(gomock.Any(), user.ID).Return([]*domain.Session{session}, nil)

		_, err := svc.VerifyCode(context.Background(), domain.VerifyCodeInput{Email: email, Code: "123456"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("wrong code", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		session := sessionWithCode("123456", time.Now().Add(time.Minute))
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
		deps.repo.EXPECT().GetSessionsByUserID(gomock.Any(), user.ID).Return([]*domain.Session{session}, nil)

		_, err := svc.VerifyCode(context.Background(), domain.VerifyCodeInput{Email: email, Code: "654321"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("unknown email looks like a bad code", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, domain.NewNotFound("user", email))

		_, err := svc.VerifyCode(context.Background(), domain.VerifyCodeInput{Email: email, Code: "123456"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.repo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil).Times(5)
		deps.repo.EXPECT().GetSessionsByUserID(gomock.Any(), user.ID).Return(nil, nil).Times(5)

		for i := 0; i < 5; i++ {
			_, err := svc.VerifyCode(context.Background(), domain.VerifyCodeInput{Email: email, Code: "000000"})
			require.True(t, domain.IsValidation(err))
		}
		_, err := svc.VerifyCode(context.Background(), domain.VerifyCodeInput{Email: email, Code: "000000"})
		var limited *domain.ErrRateLimited
		assert.ErrorAs(t, err, &limited)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "a@example.com"}

	t.Run("normalizes phone and carrier", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.auth.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(user, nil)
		deps.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.UpdateProfile(context.Background(), domain.UpdateProfileInput{
			Name: " Sam ", Phone: "+1 (555) 123-4567", Carrier: "T-Mobile",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sam", got.Name)
		assert.Equal(t, "5551234567", got.Phone)
		assert.Equal(t, "tmobile", got.Carrier)
	})

	t.Run("bad phone", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.auth.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(user, nil)

		_, err := svc.UpdateProfile(context.Background(), domain.UpdateProfileInput{Phone: "12345"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("unknown carrier", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.auth.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(user, nil)

		_, err := svc.UpdateProfile(context.Background(), domain.UpdateProfileInput{Phone: "5551234567", Carrier: "acme"})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestUserService_MeAndLogout(t *testing.T) {
	user := &domain.User{ID: "user-1"}

	t.Run("me", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		orgs := []*domain.OrganizationWithRole{{Organization: domain.Organization{ID: "org-1"}, Role: domain.RoleOwner}}
		deps.auth.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(user, nil)
		deps.orgRepo.EXPECT().ListForUser(gomock.Any(), "user-1").Return(orgs, nil)

		got, gotOrgs, err := svc.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, orgs, gotOrgs)
	})

	t.Run("logout deletes the current session", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		ctx := userContext("user-1", "sess-9")
		deps.auth.EXPECT().AuthenticateUserFromContext(ctx).Return(user, nil)
		deps.repo.EXPECT().DeleteSession(ctx, "sess-9").Return(nil)

		require.NoError(t, svc.Logout(ctx))
	})

	t.Run("logout unauthenticated", func(t *testing.T) {
		deps, svc := setupUserTest(t, true)
		deps.auth.EXPECT().AuthenticateUserFromContext(gomock.Any()).Return(nil, domain.ErrUnauthorized)

		assert.ErrorIs(t, svc.Logout(context.Background()), domain.ErrUnauthorized)
	})
}
