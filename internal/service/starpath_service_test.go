package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// recordingBus captures published events synchronously
type recordingBus struct {
	mu     sync.Mutex
	events []domain.EventPayload
}

func (b *recordingBus) Publish(_ context.Context, e domain.EventPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) PublishWithAck(ctx context.Context, e domain.EventPayload, cb domain.EventAckCallback) {
	b.Publish(ctx, e)
	if cb != nil {
		cb(nil)
	}
}

func (b *recordingBus) Subscribe(domain.EventType, domain.EventHandler)   {}
func (b *recordingBus) Unsubscribe(domain.EventType, domain.EventHandler) {}

func (b *recordingBus) types() []domain.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.EventType, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}

// runInTx makes a mocked WithTransaction call its callback with a nil tx
func runInTx(_ context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

type starPathDeps struct {
	repo     *mocks.MockStarPathRepository
	athletes *mocks.MockAthleteRepository
	auth     *mocks.MockAuthService
	bus      *recordingBus
}

func setupStarPathTest(t *testing.T, now time.Time) (*starPathDeps, *StarPathService) {
	ctrl := gomock.NewController(t)
	deps := &starPathDeps{
		repo:     mocks.NewMockStarPathRepository(ctrl),
		athletes: mocks.NewMockAthleteRepository(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
		bus:      &recordingBus{},
	}
	svc := NewStarPathService(deps.repo, deps.athletes, deps.auth, deps.bus, logger.NewMockLogger(t))
	svc.now = func() time.Time { return now }
	return deps, svc
}

func TestStarPathService_AwardXP(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	t.Run("level up and achievements", func(t *testing.T) {
		deps, svc := setupStarPathTest(t, now)
		progress := &domain.StarPathProgress{AthleteID: "ath-1", OrganizationID: "org-1", TotalXP: 80, Level: 1, CurrentStreak: 6, LongestStreak: 6, LastActivityDate: &yesterday}

		deps.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		deps.athletes.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), "org-1", "ath-1").Return(&domain.AthleteProfile{ID: "ath-1"}, nil)
		deps.repo.EXPECT().LockProgressTx(gomock.Any(), gomock.Any(), "org-1", "ath-1").Return(progress, nil)
		deps.repo.EXPECT().InsertTransactionTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, txn *domain.XPTransaction) error {
				assert.Equal(t, 40, txn.Amount)
				assert.Equal(t, domain.XPSourceVideoAnalysis, txn.Source)
				return nil
			})
		deps.repo.EXPECT().SaveProgressTx(gomock.Any(), gomock.Any(), progress).Return(nil)
		// first_steps already unlocked, streak_7 and elite_gar are new
		deps.repo.EXPECT().UnlockAchievementTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, a *domain.Achievement) (bool, error) {
				return a.Code != domain.AchievementFirstSteps, nil
			}).Times(3)

		result, err := svc.AwardXP(context.Background(), domain.AwardXPInput{
			OrganizationID: "org-1", AthleteID: "ath-1", Amount: 40, Source: domain.XPSourceVideoAnalysis, GARScore: 92,
		})
		require.NoError(t, err)
		assert.Equal(t, 120, result.Progress.TotalXP)
		assert.Equal(t, 2, result.Progress.Level)
		assert.Equal(t, 7, result.Progress.CurrentStreak)
		assert.True(t, result.LeveledUp)
		require.Len(t, result.NewAchievements, 2)
		assert.Equal(t, domain.AchievementStreak7, result.NewAchievements[0].Code)
		assert.Equal(t, domain.AchievementEliteGAR, result.NewAchievements[1].Code)

		assert.Equal(t, []domain.EventType{
			domain.EventStarPathLevelUp,
			domain.EventStarPathAchievement,
			domain.EventStarPathAchievement,
		}, deps.bus.types())
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, svc := setupStarPathTest(t, now)
		_, err := svc.AwardXP(context.Background(), domain.AwardXPInput{OrganizationID: "o", AthleteID: "a", Amount: 0, Source: domain.XPSourceManual})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("athlete outside organization", func(t *testing.T) {
		deps, svc := setupStarPathTest(t, now)
		deps.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		deps.athletes.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), "org-1", "ath-x").Return(nil, domain.NewNotFound("athlete", "ath-x"))

		_, err := svc.AwardXP(context.Background(), domain.AwardXPInput{OrganizationID: "org-1", AthleteID: "ath-x", Amount: 10, Source: domain.XPSourceManual})
		assert.True(t, domain.IsNotFound(err))
		assert.Empty(t, deps.bus.types())
	})

	t.Run("failure publishes nothing", func(t *testing.T) {
		deps, svc := setupStarPathTest(t, now)
		deps.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		deps.athletes.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), "org-1", "ath-1").Return(&domain.AthleteProfile{}, nil)
		deps.repo.EXPECT().LockProgressTx(gomock.Any(), gomock.Any(), "org-1", "ath-1").Return(nil, errors.New("lock timeout"))

		_, err := svc.AwardXP(context.Background(), domain.AwardXPInput{OrganizationID: "org-1", AthleteID: "ath-1", Amount: 10, Source: domain.XPSourceManual})
		assert.EqualError(t, err, "lock timeout")
		assert.Empty(t, deps.bus.types())
	})
}

func TestStarPathService_GetProgress_DefaultsToLevelOne(t *testing.T) {
	deps, svc := setupStarPathTest(t, time.Now())
	expectAuthorize(deps.auth, "org-1", &domain.User{ID: "u"}, domain.RoleAthlete)
	deps.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(&domain.AthleteProfile{ID: "ath-1"}, nil)
	deps.repo.EXPECT().GetProgress(gomock.Any(), "org-1", "ath-1").Return(nil, domain.NewNotFound("starpath_progress", "ath-1"))

	view, err := svc.GetProgress(context.Background(), "org-1", "ath-1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.Level)
	assert.Equal(t, 100, view.Next.NextLevelXP)
	assert.Equal(t, 0, view.Next.Percent)
}

func TestStarPathService_GrantXP_RequiresWrite(t *testing.T) {
	deps, svc := setupStarPathTest(t, time.Now())
	expectAuthorize(deps.auth, "org-1", &domain.User{ID: "u"}, domain.RoleCoach)

	_, err := svc.GrantXP(context.Background(), domain.AwardXPInput{OrganizationID: "org-1", AthleteID: "a", Amount: 5})
	var perm *domain.PermissionError
	assert.ErrorAs(t, err, &perm)
}

func TestStarPathService_Leaderboard_Ranks(t *testing.T) {
	deps, svc := setupStarPathTest(t, time.Now())
	expectAuthorize(deps.auth, "org-1", &domain.User{ID: "u"}, domain.RoleCoach)
	deps.repo.EXPECT().Leaderboard(gomock.Any(), "org-1", 10).Return([]*domain.LeaderboardEntry{
		{AthleteID: "a", TotalXP: 900}, {AthleteID: "b", TotalXP: 300},
	}, nil)

	entries, err := svc.Leaderboard(context.Background(), "org-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
}
