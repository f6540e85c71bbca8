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
)

const testSocialSecret = "social-token-secret"

var socialNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func setupSocialTest(t *testing.T) (*mocks.MockSocialRepository, *mocks.MockSocialPoster, *mocks.MockAuthService, *SocialService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSocialRepository(ctrl)
	poster := mocks.NewMockSocialPoster(ctrl)
	auth := mocks.NewMockAuthService(ctrl)
	svc := NewSocialService(SocialServiceConfig{
		Repository:  repo,
		Poster:      poster,
		AuthService: auth,
		SecretKey:   testSocialSecret,
		Logger:      logger.NewMockLogger(t),
	})
	svc.now = func() time.Time { return socialNow }
	return repo, poster, auth, svc
}

func connectedAccount(t *testing.T, platform domain.SocialPlatform, token string) *domain.SocialAccount {
	enc, err := crypto.EncryptString(token, testSocialSecret)
	require.NoError(t, err)
	return &domain.SocialAccount{ID: "acc-" + string(platform), OrganizationID: "org-1", Platform: platform, Handle: "go4it", EncryptedAccessToken: enc}
}

func TestSocialService_ConnectAccount(t *testing.T) {
	admin := &domain.User{ID: "admin-1"}

	t.Run("encrypts token", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		var saved *domain.SocialAccount
		repo.EXPECT().UpsertAccount(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.SocialAccount) error {
			saved = a
			return nil
		})

		account, err := svc.ConnectAccount(context.Background(), domain.ConnectAccountRequest{
			OrganizationID: "org-1", Platform: domain.PlatformTwitter, Handle: "@go4it", AccessToken: "tok-123",
		})
		require.NoError(t, err)
		assert.Equal(t, "go4it", account.Handle)
		assert.NotContains(t, saved.EncryptedAccessToken, "tok-123")
		plain, err := crypto.DecryptString(saved.EncryptedAccessToken, testSocialSecret)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", plain)
	})

	t.Run("coach cannot connect", func(t *testing.T) {
		_, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", &domain.User{ID: "coach-1"}, domain.RoleCoach)
		_, err := svc.ConnectAccount(context.Background(), domain.ConnectAccountRequest{
			OrganizationID: "org-1", Platform: domain.PlatformTwitter, Handle: "go4it", AccessToken: "tok",
		})
		var permErr *domain.PermissionError
		assert.True(t, errors.As(err, &permErr))
	})

	t.Run("unsupported platform", func(t *testing.T) {
		_, _, _, svc := setupSocialTest(t)
		_, err := svc.ConnectAccount(context.Background(), domain.ConnectAccountRequest{
			OrganizationID: "org-1", Platform: "myspace", Handle: "go4it", AccessToken: "tok",
		})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestSocialService_CreatePost(t *testing.T) {
	admin := &domain.User{ID: "admin-1"}

	t.Run("requires connected accounts", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return([]*domain.SocialAccount{connectedAccount(t, domain.PlatformTwitter, "x")}, nil)

		err := svc.CreatePost(context.Background(), &domain.SocialPost{
			OrganizationID: "org-1", Content: "Camp opens Monday",
			Platforms: []domain.SocialPlatform{domain.PlatformTwitter, domain.PlatformLinkedIn},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "linkedin")
	})

	t.Run("scheduled when time given", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return([]*domain.SocialAccount{connectedAccount(t, domain.PlatformTwitter, "x")}, nil)
		repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil)

		at := socialNow.Add(time.Hour)
		post := &domain.SocialPost{
			OrganizationID: "org-1", Content: "Camp opens Monday", ScheduledAt: &at,
			Platforms: []domain.SocialPlatform{domain.PlatformTwitter},
		}
		require.NoError(t, svc.CreatePost(context.Background(), post))
		assert.Equal(t, domain.PostScheduled, post.Status)
		assert.Equal(t, "admin-1", post.CreatedBy)
		assert.NotEmpty(t, post.ID)
	})

	t.Run("past schedule rejected", func(t *testing.T) {
		_, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		at := socialNow.Add(-time.Minute)
		err := svc.CreatePost(context.Background(), &domain.SocialPost{
			OrganizationID: "org-1", Content: "late", ScheduledAt: &at,
			Platforms: []domain.SocialPlatform{domain.PlatformTwitter},
		})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestSocialService_SchedulePost(t *testing.T) {
	admin := &domain.User{ID: "admin-1"}

	t.Run("published post cannot be rescheduled", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").Return(&domain.SocialPost{ID: "post-1", Status: domain.PostPublished}, nil)

		_, err := svc.SchedulePost(context.Background(), domain.SchedulePostRequest{
			OrganizationID: "org-1", PostID: "post-1", ScheduledAt: socialNow.Add(time.Hour),
		})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("draft becomes scheduled", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").Return(&domain.SocialPost{ID: "post-1", Status: domain.PostDraft}, nil)
		repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(nil)

		post, err := svc.SchedulePost(context.Background(), domain.SchedulePostRequest{
			OrganizationID: "org-1", PostID: "post-1", ScheduledAt: socialNow.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PostScheduled, post.Status)
		assert.Equal(t, socialNow.Add(time.Hour), *post.ScheduledAt)
	})
}

func TestSocialService_PublishNow(t *testing.T) {
	admin := &domain.User{ID: "admin-1"}
	post := func() *domain.SocialPost {
		return &domain.SocialPost{
			ID: "post-1", OrganizationID: "org-1", Content: "Signing day!", Status: domain.PostDraft,
			Platforms: []domain.SocialPlatform{domain.PlatformTwitter, domain.PlatformFacebook},
		}
	}

	t.Run("partial success", func(t *testing.T) {
		repo, poster, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").Return(post(), nil)
		repo.EXPECT().ClaimPost(gomock.Any(), "org-1", "post-1").Return(true, nil)
		repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return([]*domain.SocialAccount{
			connectedAccount(t, domain.PlatformTwitter, "tw-token"),
			connectedAccount(t, domain.PlatformFacebook, "fb-token"),
		}, nil)
		poster.EXPECT().Post(gomock.Any(), domain.PlatformTwitter, "tw-token", "Signing day!", gomock.Any()).Return("tw-99", nil)
		poster.EXPECT().Post(gomock.Any(), domain.PlatformFacebook, "fb-token", "Signing day!", gomock.Any()).Return("", errors.New("token expired"))
		repo.EXPECT().FinishPost(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.PublishNow(context.Background(), "org-1", "post-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PostPartiallyPublished, got.Status)
		assert.Equal(t, "tw-99", got.Results[domain.PlatformTwitter].ExternalID)
		assert.Equal(t, "token expired", got.Results[domain.PlatformFacebook].Error)
		require.NotNil(t, got.PublishedAt)
	})

	t.Run("already claimed", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").Return(post(), nil)
		repo.EXPECT().ClaimPost(gomock.Any(), "org-1", "post-1").Return(false, nil)

		_, err := svc.PublishNow(context.Background(), "org-1", "post-1")
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("disconnected account fails platform", func(t *testing.T) {
		repo, _, auth, svc := setupSocialTest(t)
		expectAuthorize(auth, "org-1", admin, domain.RoleAdmin)
		repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").Return(post(), nil)
		repo.EXPECT().ClaimPost(gomock.Any(), "org-1", "post-1").Return(true, nil)
		repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return(nil, nil)
		repo.EXPECT().FinishPost(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.PublishNow(context.Background(), "org-1", "post-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PostFailed, got.Status)
		assert.Nil(t, got.PublishedAt)
	})
}

func TestSocialService_PublishDue(t *testing.T) {
	repo, poster, _, svc := setupSocialTest(t)
	due := []*domain.SocialPost{
		{ID: "p1", OrganizationID: "org-1", Content: "one", Status: domain.PostPublishing, Platforms: []domain.SocialPlatform{domain.PlatformTwitter}},
		{ID: "p2", OrganizationID: "org-1", Content: "two", Status: domain.PostPublishing, Platforms: []domain.SocialPlatform{domain.PlatformTwitter}},
	}
	repo.EXPECT().FailStalePosts(gomock.Any(), socialNow.Add(-15*time.Minute)).Return(int64(1), nil)
	repo.EXPECT().ClaimDuePosts(gomock.Any(), socialNow, 10).Return(due, nil)
	repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return([]*domain.SocialAccount{connectedAccount(t, domain.PlatformTwitter, "tw")}, nil).Times(2)
	poster.EXPECT().Post(gomock.Any(), domain.PlatformTwitter, "tw", gomock.Any(), gomock.Any()).Return("id", nil).Times(2)
	repo.EXPECT().FinishPost(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	repo.EXPECT().FinishPost(gomock.Any(), gomock.Any()).Return(nil)

	n, err := svc.PublishDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSocialService_PublishDue_AccountLookupFailure(t *testing.T) {
	repo, _, _, svc := setupSocialTest(t)
	at := socialNow.Add(-time.Minute)
	due := []*domain.SocialPost{
		{ID: "p1", OrganizationID: "org-1", Content: "one", Status: domain.PostPublishing, ScheduledAt: &at, Platforms: []domain.SocialPlatform{domain.PlatformTwitter}},
	}
	repo.EXPECT().FailStalePosts(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().ClaimDuePosts(gomock.Any(), socialNow, 10).Return(due, nil)
	repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return(nil, errors.New("db down"))
	repo.EXPECT().RequeuePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.SocialPost) error {
			assert.Equal(t, domain.PostScheduled, p.Status)
			return nil
		})

	n, err := svc.PublishDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, domain.PostScheduled, due[0].Status)
}

func TestSocialService_PublishNow_AccountLookupFailure(t *testing.T) {
	repo, _, auth, svc := setupSocialTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "admin-1"}, domain.RoleAdmin)
	repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").
		Return(&domain.SocialPost{ID: "post-1", OrganizationID: "org-1", Status: domain.PostDraft, Platforms: []domain.SocialPlatform{domain.PlatformTwitter}}, nil)
	repo.EXPECT().ClaimPost(gomock.Any(), "org-1", "post-1").Return(true, nil)
	repo.EXPECT().ListAccounts(gomock.Any(), "org-1").Return(nil, errors.New("db down"))
	repo.EXPECT().RequeuePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.SocialPost) error {
			assert.Equal(t, domain.PostDraft, p.Status)
			return nil
		})

	_, err := svc.PublishNow(context.Background(), "org-1", "post-1")
	assert.EqualError(t, err, "db down")
}

func TestSocialService_DeletePost_Publishing(t *testing.T) {
	repo, _, auth, svc := setupSocialTest(t)
	expectAuthorize(auth, "org-1", &domain.User{ID: "admin-1"}, domain.RoleAdmin)
	repo.EXPECT().GetPost(gomock.Any(), "org-1", "post-1").Return(&domain.SocialPost{ID: "post-1", Status: domain.PostPublishing}, nil)

	err := svc.DeletePost(context.Background(), "org-1", "post-1")
	assert.True(t, domain.IsConflict(err))
}
