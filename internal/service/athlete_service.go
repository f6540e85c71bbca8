package service

import (
	"context"
	"fmt"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type AthleteService struct {
	repo        domain.AthleteRepository
	orgRepo     domain.OrganizationRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewAthleteService(repo domain.AthleteRepository, orgRepo domain.OrganizationRepository, authService domain.AuthService, logger logger.Logger) *AthleteService {
	return &AthleteService{
		repo:        repo,
		orgRepo:     orgRepo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.AthleteService = (*AthleteService)(nil)

// checkLinkedUser makes sure a linked account belongs to the same organization
func (s *AthleteService) checkLinkedUser(ctx context.Context, athlete *domain.AthleteProfile) error {
	if athlete.UserID == nil || *athlete.UserID == "" {
		athlete.UserID = nil
		return nil
	}
	if _, err := s.orgRepo.GetMember(ctx, athlete.OrganizationID, *athlete.UserID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewValidationError("linked user is not a member of the organization")
		}
		return err
	}
	return nil
}

func (s *AthleteService) CreateAthlete(ctx context.Context, athlete *domain.AthleteProfile) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, athlete.OrganizationID, domain.ResourceAthletes, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := athlete.Validate(); err != nil {
		return err
	}
	if err := s.checkLinkedUser(ctx, athlete); err != nil {
		return err
	}
	// scores only come from video analysis
	athlete.GARScore = nil

	if err := s.repo.Create(ctx, athlete); err != nil {
		s.logger.WithField("organization_id", athlete.OrganizationID).Error(fmt.Sprintf("Failed to create athlete: %v", err))
		return err
	}
	return nil
}

func (s *AthleteService) GetAthlete(ctx context.Context, organizationID, id string) (*domain.AthleteProfile, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAthletes, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

// UpdateAthlete replaces the editable profile fields; the GAR score is kept
func (s *AthleteService) UpdateAthlete(ctx context.Context, athlete *domain.AthleteProfile) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, athlete.OrganizationID, domain.ResourceAthletes, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := athlete.Validate(); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, athlete.OrganizationID, athlete.ID)
	if err != nil {
		return err
	}
	if err := s.checkLinkedUser(ctx, athlete); err != nil {
		return err
	}
	athlete.GARScore = existing.GARScore
	athlete.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, athlete); err != nil {
		s.logger.WithField("athlete_id", athlete.ID).Error(fmt.Sprintf("Failed to update athlete: %v", err))
		return err
	}
	return nil
}

func (s *AthleteService) DeleteAthlete(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAthletes, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		s.logger.WithField("athlete_id", id).Error(fmt.Sprintf("Failed to delete athlete: %v", err))
		return err
	}
	return nil
}

func (s *AthleteService) ListAthletes(ctx context.Context, filter domain.AthleteFilter) (*domain.AthleteListResponse, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, filter.OrganizationID, domain.ResourceAthletes, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = domain.NormalizePage(filter.Limit, filter.Offset)

	athletes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithField("organization_id", filter.OrganizationID).Error(fmt.Sprintf("Failed to list athletes: %v", err))
		return nil, err
	}
	if athletes == nil {
		athletes = []*domain.AthleteProfile{}
	}
	return &domain.AthleteListResponse{Athletes: athletes, TotalCount: total}, nil
}
