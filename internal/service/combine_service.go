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

type CombineService struct {
	repo        domain.CombineRepository
	athleteRepo domain.AthleteRepository
	payments    domain.PaymentService
	starPath    domain.StarPathService
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

type CombineServiceConfig struct {
	Repository        domain.CombineRepository
	AthleteRepository domain.AthleteRepository
	PaymentService    domain.PaymentService
	StarPathService   domain.StarPathService
	AuthService       domain.AuthService
	Logger            logger.Logger
}

func NewCombineService(cfg CombineServiceConfig) *CombineService {
	return &CombineService{
		repo:        cfg.Repository,
		athleteRepo: cfg.AthleteRepository,
		payments:    cfg.PaymentService,
		starPath:    cfg.StarPathService,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

var _ domain.CombineService = (*CombineService)(nil)

func (s *CombineService) CreateEvent(ctx context.Context, event *domain.CombineEvent) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, event.OrganizationID, domain.ResourceCombine, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}
	event.ID = uuid.New().String()
	event.CreatedAt = s.now().UTC()
	event.UpdatedAt = event.CreatedAt
	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.WithField("organization_id", event.OrganizationID).Error(fmt.Sprintf("Failed to create combine event: %v", err))
		return err
	}
	return nil
}

func (s *CombineService) GetEvent(ctx context.Context, organizationID, id string) (*domain.CombineEvent, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCombine, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

func (s *CombineService) UpdateEvent(ctx context.Context, event *domain.CombineEvent) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, event.OrganizationID, domain.ResourceCombine, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, event.OrganizationID, event.ID)
	if err != nil {
		return err
	}
	if existing.Status == domain.CombineCompleted {
		return domain.NewValidationError("completed combine events cannot be changed")
	}
	if err := event.Validate(); err != nil {
		return err
	}
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, event)
}

func (s *CombineService) DeleteEvent(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCombine, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, organizationID, id)
}

// ListUpcoming returns events on or after from, soonest first. A zero from means now.
func (s *CombineService) ListUpcoming(ctx context.Context, organizationID string, from time.Time) ([]*domain.CombineEvent, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCombine, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if from.IsZero() {
		from = s.now()
	}
	events, err := s.repo.ListUpcoming(ctx, organizationID, from.UTC())
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.CombineEvent{}
	}
	return events, nil
}

func (s *CombineService) authorizeAthlete(ctx context.Context, organizationID, athleteID string) (context.Context, *domain.AthleteProfile, error) {
	ctx, user, member, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEnrollments, domain.ActionWrite)
	if err != nil {
		return ctx, nil, err
	}
	athlete, err := s.athleteRepo.GetByID(ctx, organizationID, athleteID)
	if err != nil {
		return ctx, nil, err
	}
	if member.Role == domain.RoleAthlete && (athlete.UserID == nil || *athlete.UserID != user.ID) {
		return ctx, nil, domain.NewPermissionError(domain.ResourceEnrollments, domain.ActionWrite, "athletes can only register themselves")
	}
	return ctx, athlete, nil
}

func sportListed(sports []string, sport string) bool {
	if len(sports) == 0 {
		return true
	}
	for _, s := range sports {
		if s == sport {
			return true
		}
	}
	return false
}

// RegisterAthlete holds a spot at a combine. Priced events leave the spot
// pending until the checkout is paid.
func (s *CombineService) RegisterAthlete(ctx context.Context, req domain.CombineRegisterRequest) (*domain.CombineRegistrationResult, error) {
	if req.OrganizationID == "" || req.CombineEventID == "" || req.AthleteID == "" {
		return nil, domain.NewValidationError("organization_id, combine_event_id and athlete_id are required")
	}
	ctx, athlete, err := s.authorizeAthlete(ctx, req.OrganizationID, req.AthleteID)
	if err != nil {
		return nil, err
	}

	var event *domain.CombineEvent
	var reg *domain.CombineRegistration
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		event, err = s.repo.LockEventTx(ctx, tx, req.OrganizationID, req.CombineEventID)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		if !event.AcceptsRegistrations(now) {
			return domain.NewValidationError("registration is closed for this combine")
		}
		if !sportListed(event.Sports, athlete.Sport) {
			return domain.NewValidationError("this combine does not test " + athlete.Sport)
		}

		existing, err := s.repo.GetRegistrationTx(ctx, tx, event.ID, athlete.ID)
		if err != nil && !domain.IsNotFound(err) {
			return err
		}
		if existing != nil && existing.Status == domain.CombinePendingPayment {
			reg = existing
			return nil
		}
		if existing != nil && existing.Status != domain.CombineCancelled {
			return domain.NewConflict("combine_registration", "athlete is already registered")
		}

		count, err := s.repo.CountActiveRegistrationsTx(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		if count >= event.Capacity {
			return domain.NewConflict("combine", "combine is full")
		}

		status := domain.CombineRegistered
		if event.PriceCents > 0 {
			status = domain.CombinePendingPayment
		}
		if existing != nil {
			if err := s.repo.UpdateRegistrationStatusTx(ctx, tx, existing.ID, status); err != nil {
				return err
			}
			existing.Status = status
			existing.UpdatedAt = now
			reg = existing
			return nil
		}
		reg = &domain.CombineRegistration{
			ID:             uuid.New().String(),
			CombineEventID: event.ID,
			OrganizationID: event.OrganizationID,
			AthleteID:      athlete.ID,
			Status:         status,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return s.repo.CreateRegistrationTx(ctx, tx, reg)
	})
	if err != nil {
		return nil, err
	}

	result := &domain.CombineRegistrationResult{Registration: reg}
	if reg.Status != domain.CombinePendingPayment {
		return result, nil
	}
	if s.payments == nil {
		return nil, fmt.Errorf("payments are not configured")
	}
	email := req.Email
	if email == "" {
		email = athlete.Email
	}
	checkout, err := s.payments.CreateCheckout(ctx, domain.CheckoutRequest{
		OrganizationID: reg.OrganizationID,
		Purpose:        domain.PurposeCombine,
		ReferenceID:    reg.ID,
		Email:          email,
		AmountCents:    event.PriceCents,
		Description:    event.Name,
	})
	if err != nil {
		s.logger.WithField("registration_id", reg.ID).Error(fmt.Sprintf("Failed to open combine checkout: %v", err))
		if uerr := s.repo.UpdateRegistrationStatus(ctx, reg.ID, domain.CombineCancelled); uerr != nil {
			s.logger.WithField("registration_id", reg.ID).Error(fmt.Sprintf("Failed to release combine spot: %v", uerr))
		}
		return nil, err
	}
	result.CheckoutURL = checkout.URL
	return result, nil
}

func (s *CombineService) ListRegistrations(ctx context.Context, organizationID, eventID string) ([]*domain.CombineRegistration, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCombine, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	regs, err := s.repo.ListRegistrations(ctx, organizationID, eventID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.CombineRegistration{}
	}
	return regs, nil
}

// RecordResult stores measured drills for a registered athlete. The first
// result marks the athlete attended and earns combine XP.
func (s *CombineService) RecordResult(ctx context.Context, organizationID string, result *domain.CombineResult) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCombine, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := result.Validate(); err != nil {
		return err
	}

	firstResult := false
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		event, err := s.repo.LockEventTx(ctx, tx, organizationID, result.CombineEventID)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		if !event.ResultsOpen(now) {
			return domain.NewValidationError("results can only be recorded from the event date")
		}
		reg, err := s.repo.GetRegistrationTx(ctx, tx, event.ID, result.AthleteID)
		if err != nil {
			if domain.IsNotFound(err) {
				return domain.NewValidationError("athlete is not registered for this combine")
			}
			return err
		}
		switch reg.Status {
		case domain.CombineRegistered:
			firstResult = true
		case domain.CombineAttended:
		default:
			return domain.NewValidationError("athlete is not registered for this combine")
		}

		result.ID = uuid.New().String()
		result.OrganizationID = organizationID
		result.RecordedAt = now
		if err := s.repo.InsertResultTx(ctx, tx, result); err != nil {
			return err
		}
		if firstResult {
			return s.repo.UpdateRegistrationStatusTx(ctx, tx, reg.ID, domain.CombineAttended)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if firstResult && s.starPath != nil {
		_, err := s.starPath.AwardXP(ctx, domain.AwardXPInput{
			OrganizationID: organizationID,
			AthleteID:      result.AthleteID,
			Amount:         domain.CombineResultXP,
			Source:         domain.XPSourceCombine,
			ReferenceID:    result.CombineEventID,
		})
		if err != nil {
			s.logger.WithField("athlete_id", result.AthleteID).Error(fmt.Sprintf("Failed to award combine XP: %v", err))
		}
	}
	return nil
}

func (s *CombineService) ListResults(ctx context.Context, organizationID, eventID string) ([]*domain.CombineResult, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCombine, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	results, err := s.repo.ListResults(ctx, organizationID, eventID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*domain.CombineResult{}
	}
	return results, nil
}

// ConfirmPaidRegistration settles a pending spot once its checkout is paid
func (s *CombineService) ConfirmPaidRegistration(ctx context.Context, registrationID string) error {
	reg, err := s.repo.GetRegistrationByID(ctx, registrationID)
	if err != nil {
		return err
	}
	switch reg.Status {
	case domain.CombineRegistered, domain.CombineAttended:
		return nil
	case domain.CombineCancelled:
		s.logger.WithField("registration_id", registrationID).Warn("Payment received for a cancelled combine registration")
		return nil
	}
	if err := s.repo.UpdateRegistrationStatus(ctx, registrationID, domain.CombineRegistered); err != nil {
		s.logger.WithField("registration_id", registrationID).Error(fmt.Sprintf("Failed to confirm combine registration: %v", err))
		return err
	}
	return nil
}
