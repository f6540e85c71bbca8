package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

type VideoAnalysisService struct {
	repo        domain.VideoAnalysisRepository
	athleteRepo domain.AthleteRepository
	starPath    domain.StarPathService
	storage     domain.VideoStorage
	authService domain.AuthService
	eventBus    domain.EventBus
	logger      logger.Logger
	tracer      tracing.Tracer
	now         func() time.Time
}

type VideoAnalysisServiceConfig struct {
	Repository        domain.VideoAnalysisRepository
	AthleteRepository domain.AthleteRepository
	StarPathService   domain.StarPathService
	Storage           domain.VideoStorage
	AuthService       domain.AuthService
	EventBus          domain.EventBus
	Logger            logger.Logger
	Tracer            tracing.Tracer
}

func NewVideoAnalysisService(cfg VideoAnalysisServiceConfig) *VideoAnalysisService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	return &VideoAnalysisService{
		repo:        cfg.Repository,
		athleteRepo: cfg.AthleteRepository,
		starPath:    cfg.StarPathService,
		storage:     cfg.Storage,
		authService: cfg.AuthService,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		tracer:      tracer,
		now:         time.Now,
	}
}

var _ domain.VideoAnalysisService = (*VideoAnalysisService)(nil)

// authorizeAthlete loads the athlete and, for athlete members, checks it is their own profile
func (s *VideoAnalysisService) authorizeAthlete(ctx context.Context, organizationID, athleteID string, action domain.Action) (context.Context, *domain.AthleteProfile, error) {
	ctx, user, member, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAnalyses, action)
	if err != nil {
		return ctx, nil, err
	}
	athlete, err := s.athleteRepo.GetByID(ctx, organizationID, athleteID)
	if err != nil {
		return ctx, nil, err
	}
	if action == domain.ActionWrite && member.Role == domain.RoleAthlete {
		if athlete.UserID == nil || *athlete.UserID != user.ID {
			return ctx, nil, domain.NewPermissionError(domain.ResourceAnalyses, action, "athletes can only submit their own videos")
		}
	}
	return ctx, athlete, nil
}

// RequestUploadURL presigns an S3 upload for a new athlete video
func (s *VideoAnalysisService) RequestUploadURL(ctx context.Context, req domain.UploadURLRequest) (*domain.UploadURLResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, _, err := s.authorizeAthlete(ctx, req.OrganizationID, req.AthleteID, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, fmt.Errorf("video storage is not configured")
	}

	key := req.ObjectKey(uuid.New().String())
	uploadURL, expiresAt, err := s.storage.PresignUpload(ctx, key, req.ContentType)
	if err != nil {
		s.logger.WithField("athlete_id", req.AthleteID).Error(fmt.Sprintf("Failed to presign upload: %v", err))
		return nil, err
	}
	return &domain.UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: key,
		VideoURL:  s.storage.ObjectURL(key),
		ExpiresAt: expiresAt,
	}, nil
}

// Analyze scores a video, stores the result on the athlete and awards StarPath XP
func (s *VideoAnalysisService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.VideoAnalysis, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "VideoAnalysisService", "Analyze")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, athlete, err := s.authorizeAthlete(ctx, req.OrganizationID, req.AthleteID, domain.ActionWrite)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	sport := req.Sport
	if sport == "" {
		sport = athlete.Sport
	}
	s.tracer.AddAttribute(ctx, "analysis.sport", sport)

	analysis := &domain.VideoAnalysis{
		ID:              uuid.New().String(),
		OrganizationID:  req.OrganizationID,
		AthleteID:       req.AthleteID,
		VideoURL:        req.VideoURL,
		Sport:           sport,
		DurationSeconds: req.DurationSeconds,
		Status:          domain.AnalysisStatusPending,
		Strengths:       []string{},
		Improvements:    []string{},
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, analysis); err != nil {
		s.logger.WithField("athlete_id", req.AthleteID).Error(fmt.Sprintf("Failed to create analysis: %v", err))
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	result := domain.ScoreGAR(req.VideoURL, sport, req.DurationSeconds, req.Metrics)
	analysis.ApplyResult(result, s.now().UTC())

	if err := s.repo.Complete(ctx, analysis); err != nil {
		s.logger.WithField("analysis_id", analysis.ID).Error(fmt.Sprintf("Failed to complete analysis: %v", err))
		if markErr := s.repo.MarkFailed(ctx, analysis.OrganizationID, analysis.ID, err.Error()); markErr != nil {
			s.logger.WithField("analysis_id", analysis.ID).Error(fmt.Sprintf("Failed to mark analysis failed: %v", markErr))
		}
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}
	s.tracer.AddAttribute(ctx, "analysis.gar_score", analysis.GARScore)

	if s.starPath != nil {
		_, err := s.starPath.AwardXP(ctx, domain.AwardXPInput{
			OrganizationID: analysis.OrganizationID,
			AthleteID:      analysis.AthleteID,
			Amount:         domain.AnalysisXP(analysis.GARScore),
			Source:         domain.XPSourceVideoAnalysis,
			ReferenceID:    analysis.ID,
			GARScore:       analysis.GARScore,
		})
		if err != nil {
			s.logger.WithField("analysis_id", analysis.ID).Error(fmt.Sprintf("Failed to award analysis xp: %v", err))
		}
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, domain.EventPayload{
			Type:           domain.EventAnalysisCompleted,
			OrganizationID: analysis.OrganizationID,
			EntityID:       analysis.ID,
			Data: map[string]interface{}{
				"athlete_id": analysis.AthleteID,
				"gar_score":  analysis.GARScore,
				"tier":       string(analysis.Tier),
			},
		})
	}
	return analysis, nil
}

func (s *VideoAnalysisService) GetAnalysis(ctx context.Context, organizationID, id string) (*domain.VideoAnalysis, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAnalyses, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

// ListAnalyses returns the athlete's analyses, newest first
func (s *VideoAnalysisService) ListAnalyses(ctx context.Context, organizationID, athleteID string, limit int) ([]*domain.VideoAnalysis, error) {
	ctx, _, err := s.authorizeAthlete(ctx, organizationID, athleteID, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	limit, _ = domain.NormalizePage(limit, 0)
	return s.repo.ListByAthlete(ctx, organizationID, athleteID, limit)
}
