package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type StarPathService struct {
	repo        domain.StarPathRepository
	athleteRepo domain.AthleteRepository
	authService domain.AuthService
	eventBus    domain.EventBus
	logger      logger.Logger
	now         func() time.Time
}

func NewStarPathService(repo domain.StarPathRepository, athleteRepo domain.AthleteRepository, authService domain.AuthService, eventBus domain.EventBus, logger logger.Logger) *StarPathService {
	return &StarPathService{
		repo:        repo,
		athleteRepo: athleteRepo,
		authService: authService,
		eventBus:    eventBus,
		logger:      logger,
		now:         time.Now,
	}
}

var _ domain.StarPathService = (*StarPathService)(nil)

// AwardXP credits XP inside one transaction: lock progress, record the ledger entry,
// apply streak and level, then unlock any newly met achievements.
func (s *StarPathService) AwardXP(ctx context.Context, input domain.AwardXPInput) (*domain.AwardXPResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result := &domain.AwardXPResult{NewAchievements: []*domain.Achievement{}}

	err := s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := s.athleteRepo.GetByIDTx(ctx, tx, input.OrganizationID, input.AthleteID); err != nil {
			return err
		}

		progress, err := s.repo.LockProgressTx(ctx, tx, input.OrganizationID, input.AthleteID)
		if err != nil {
			return err
		}

		txn := &domain.XPTransaction{
			ID:          uuid.New().String(),
			AthleteID:   input.AthleteID,
			Amount:      input.Amount,
			Source:      input.Source,
			ReferenceID: input.ReferenceID,
			CreatedAt:   now,
		}
		if err := s.repo.InsertTransactionTx(ctx, tx, txn); err != nil {
			return err
		}

		result.PreviousLevel = progress.AddXP(input.Amount, now)
		if err := s.repo.SaveProgressTx(ctx, tx, progress); err != nil {
			return err
		}

		for _, code := range domain.EligibleAchievements(progress, input.Source, input.GARScore) {
			achievement := &domain.Achievement{
				ID:         uuid.New().String(),
				AthleteID:  input.AthleteID,
				Code:       code,
				Title:      domain.AchievementTitle(code),
				UnlockedAt: now,
			}
			unlocked, err := s.repo.UnlockAchievementTx(ctx, tx, achievement)
			if err != nil {
				return err
			}
			if unlocked {
				result.NewAchievements = append(result.NewAchievements, achievement)
			}
		}

		result.Progress = progress
		result.Transaction = txn
		return nil
	})
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithField("athlete_id", input.AthleteID).Error(fmt.Sprintf("Failed to award xp: %v", err))
		}
		return nil, err
	}

	result.LeveledUp = result.Progress.Level > result.PreviousLevel
	s.publish(ctx, input, result)
	return result, nil
}

func (s *StarPathService) publish(ctx context.Context, input domain.AwardXPInput, result *domain.AwardXPResult) {
	if s.eventBus == nil {
		return
	}
	if result.LeveledUp {
		s.eventBus.Publish(ctx, domain.EventPayload{
			Type:           domain.EventStarPathLevelUp,
			OrganizationID: input.OrganizationID,
			EntityID:       input.AthleteID,
			Data: map[string]interface{}{
				"athlete_id":     input.AthleteID,
				"level":          result.Progress.Level,
				"previous_level": result.PreviousLevel,
			},
		})
	}
	for _, a := range result.NewAchievements {
		s.eventBus.Publish(ctx, domain.EventPayload{
			Type:           domain.EventStarPathAchievement,
			OrganizationID: input.OrganizationID,
			EntityID:       input.AthleteID,
			Data: map[string]interface{}{
				"athlete_id": input.AthleteID,
				"code":       string(a.Code),
				"title":      a.Title,
			},
		})
	}
}

// GrantXP is a manual award by staff
func (s *StarPathService) GrantXP(ctx context.Context, input domain.AwardXPInput) (*domain.AwardXPResult, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, input.OrganizationID, domain.ResourceStarPath, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	input.Source = domain.XPSourceManual
	return s.AwardXP(ctx, input)
}

// GetProgress returns the athlete's progress; athletes with no XP yet start at level 1
func (s *StarPathService) GetProgress(ctx context.Context, organizationID, athleteID string) (*domain.StarPathView, error) {
	ctx, err := s.authorizeAthlete(ctx, organizationID, athleteID)
	if err != nil {
		return nil, err
	}

	progress, err := s.repo.GetProgress(ctx, organizationID, athleteID)
	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}
		progress = &domain.StarPathProgress{
			AthleteID:      athleteID,
			OrganizationID: organizationID,
			Level:          1,
		}
	}
	return &domain.StarPathView{
		Progress: progress,
		Next:     domain.ProgressToNextLevel(progress.TotalXP),
	}, nil
}

func (s *StarPathService) ListAchievements(ctx context.Context, organizationID, athleteID string) ([]*domain.Achievement, error) {
	ctx, err := s.authorizeAthlete(ctx, organizationID, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAchievements(ctx, athleteID)
}

func (s *StarPathService) ListXPHistory(ctx context.Context, organizationID, athleteID string, limit int) ([]*domain.XPTransaction, error) {
	ctx, err := s.authorizeAthlete(ctx, organizationID, athleteID)
	if err != nil {
		return nil, err
	}
	limit, _ = domain.NormalizePage(limit, 0)
	return s.repo.ListTransactions(ctx, athleteID, limit)
}

func (s *StarPathService) Leaderboard(ctx context.Context, organizationID string, limit int) ([]*domain.LeaderboardEntry, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceStarPath, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	entries, err := s.repo.Leaderboard(ctx, organizationID, limit)
	if err != nil {
		s.logger.WithField("organization_id", organizationID).Error(fmt.Sprintf("Failed to load leaderboard: %v", err))
		return nil, err
	}
	for i, e := range entries {
		e.Rank = i + 1
	}
	return entries, nil
}

// authorizeAthlete checks read access and that the athlete belongs to the organization
func (s *StarPathService) authorizeAthlete(ctx context.Context, organizationID, athleteID string) (context.Context, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceStarPath, domain.ActionRead)
	if err != nil {
		return ctx, err
	}
	if _, err := s.athleteRepo.GetByID(ctx, organizationID, athleteID); err != nil {
		return ctx, err
	}
	return ctx, nil
}
