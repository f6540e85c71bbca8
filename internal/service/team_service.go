package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type TeamService struct {
	repo        domain.TeamRepository
	athleteRepo domain.AthleteRepository
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

func NewTeamService(repo domain.TeamRepository, athleteRepo domain.AthleteRepository, authService domain.AuthService, logger logger.Logger) *TeamService {
	return &TeamService{
		repo:        repo,
		athleteRepo: athleteRepo,
		authService: authService,
		logger:      logger,
		now:         time.Now,
	}
}

var _ domain.TeamService = (*TeamService)(nil)

func (s *TeamService) CreateTeam(ctx context.Context, team *domain.Team) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, team.OrganizationID, domain.ResourceTeams, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := team.Validate(); err != nil {
		return err
	}
	team.ID = uuid.New().String()
	team.CreatedAt = s.now().UTC()
	team.UpdatedAt = team.CreatedAt
	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.WithField("organization_id", team.OrganizationID).Error(fmt.Sprintf("Failed to create team: %v", err))
		return err
	}
	return nil
}

func (s *TeamService) GetTeam(ctx context.Context, organizationID, id string) (*domain.Team, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTeams, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

// UpdateTeam rejects shrinking the roster limit below the current active count
func (s *TeamService) UpdateTeam(ctx context.Context, team *domain.Team) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, team.OrganizationID, domain.ResourceTeams, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := team.Validate(); err != nil {
		return err
	}
	return s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		existing, err := s.repo.LockTeamTx(ctx, tx, team.OrganizationID, team.ID)
		if err != nil {
			return err
		}
		active, err := s.repo.CountActiveTx(ctx, tx, team.ID)
		if err != nil {
			return err
		}
		if team.MaxRosterSize < active {
			return domain.NewConflict("team", fmt.Sprintf("roster already has %d active athletes", active))
		}
		team.CreatedAt = existing.CreatedAt
		team.UpdatedAt = s.now().UTC()
		return s.repo.Update(ctx, team)
	})
}

func (s *TeamService) DeleteTeam(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTeams, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithField("team_id", id).Error(fmt.Sprintf("Failed to delete team: %v", err))
		}
		return err
	}
	return nil
}

func (s *TeamService) ListTeams(ctx context.Context, organizationID string) ([]*domain.Team, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTeams, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	teams, err := s.repo.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []*domain.Team{}
	}
	return teams, nil
}

func (s *TeamService) checkJersey(ctx context.Context, tx *sql.Tx, teamID string, jersey *int, excludeEntryID string) error {
	if jersey == nil {
		return nil
	}
	taken, err := s.repo.JerseyTakenTx(ctx, tx, teamID, *jersey, excludeEntryID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewConflict("roster", fmt.Sprintf("jersey number %d is already taken", *jersey))
	}
	return nil
}

// AddToRoster puts an athlete of the same organization on the team. An
// inactive entry for the athlete is reactivated.
func (s *TeamService) AddToRoster(ctx context.Context, req domain.AddToRosterRequest) (*domain.RosterEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceTeams, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	if _, err := s.athleteRepo.GetByID(ctx, req.OrganizationID, req.AthleteID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("athlete does not belong to this organization")
		}
		return nil, err
	}

	var entry *domain.RosterEntry
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		team, err := s.repo.LockTeamTx(ctx, tx, req.OrganizationID, req.TeamID)
		if err != nil {
			return err
		}

		existing, err := s.repo.GetEntryByAthleteTx(ctx, tx, team.ID, req.AthleteID)
		if err != nil && !domain.IsNotFound(err) {
			return err
		}
		if existing != nil && existing.Status == domain.RosterActive {
			return domain.NewConflict("roster", "athlete is already on this team")
		}

		active, err := s.repo.CountActiveTx(ctx, tx, team.ID)
		if err != nil {
			return err
		}
		if active >= team.MaxRosterSize {
			return domain.NewConflict("roster", fmt.Sprintf("roster is full (%d)", team.MaxRosterSize))
		}

		excludeID := ""
		if existing != nil {
			excludeID = existing.ID
		}
		if err := s.checkJersey(ctx, tx, team.ID, req.JerseyNumber, excludeID); err != nil {
			return err
		}

		now := s.now().UTC()
		if existing != nil {
			existing.Status = domain.RosterActive
			existing.JerseyNumber = req.JerseyNumber
			existing.Position = strings.TrimSpace(req.Position)
			existing.JoinedAt = now
			existing.UpdatedAt = now
			entry = existing
			return s.repo.UpdateEntryTx(ctx, tx, entry)
		}
		entry = &domain.RosterEntry{
			ID:           uuid.New().String(),
			TeamID:       team.ID,
			AthleteID:    req.AthleteID,
			JerseyNumber: req.JerseyNumber,
			Position:     strings.TrimSpace(req.Position),
			Status:       domain.RosterActive,
			JoinedAt:     now,
			UpdatedAt:    now,
		}
		return s.repo.CreateEntryTx(ctx, tx, entry)
	})
	if err != nil {
		if !domain.IsConflict(err) && !domain.IsNotFound(err) {
			s.logger.WithField("team_id", req.TeamID).Error(fmt.Sprintf("Failed to add athlete to roster: %v", err))
		}
		return nil, err
	}
	return entry, nil
}

func (s *TeamService) UpdateRosterEntry(ctx context.Context, req domain.UpdateRosterEntryRequest) (*domain.RosterEntry, error) {
	if req.OrganizationID == "" || req.EntryID == "" {
		return nil, domain.NewValidationError("organization_id and entry_id are required")
	}
	if err := domain.ValidateJersey(req.JerseyNumber); err != nil {
		return nil, err
	}
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, req.OrganizationID, domain.ResourceTeams, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	var entry *domain.RosterEntry
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		entry, err = s.repo.LockEntryTx(ctx, tx, req.OrganizationID, req.EntryID)
		if err != nil {
			return err
		}
		if entry.Status == domain.RosterActive {
			if err := s.checkJersey(ctx, tx, entry.TeamID, req.JerseyNumber, entry.ID); err != nil {
				return err
			}
		}
		entry.JerseyNumber = req.JerseyNumber
		entry.Position = strings.TrimSpace(req.Position)
		entry.UpdatedAt = s.now().UTC()
		return s.repo.UpdateEntryTx(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveFromRoster marks the entry inactive so history is kept
func (s *TeamService) RemoveFromRoster(ctx context.Context, organizationID, entryID string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTeams, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		entry, err := s.repo.LockEntryTx(ctx, tx, organizationID, entryID)
		if err != nil {
			return err
		}
		if entry.Status == domain.RosterInactive {
			return nil
		}
		entry.Status = domain.RosterInactive
		entry.UpdatedAt = s.now().UTC()
		return s.repo.UpdateEntryTx(ctx, tx, entry)
	})
}

func (s *TeamService) ListRoster(ctx context.Context, organizationID, teamID string, includeInactive bool) ([]*domain.RosterEntryWithAthlete, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceTeams, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, organizationID, teamID); err != nil {
		return nil, err
	}
	roster, err := s.repo.ListRoster(ctx, teamID, includeInactive)
	if err != nil {
		return nil, err
	}
	if roster == nil {
		roster = []*domain.RosterEntryWithAthlete{}
	}
	return roster, nil
}
