package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"
	"github.com/tidwall/gjson"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type EventService struct {
	repo          domain.EventRepository
	leads         domain.LeadRepository
	authService   domain.AuthService
	webhookSecret string
	logger        logger.Logger
	now           func() time.Time
}

type EventServiceConfig struct {
	Repository     domain.EventRepository
	LeadRepository domain.LeadRepository
	AuthService    domain.AuthService
	// WebhookSecret is the whsec_ key shared with the booking provider
	WebhookSecret string
	Logger        logger.Logger
}

func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		repo:          cfg.Repository,
		leads:         cfg.LeadRepository,
		authService:   cfg.AuthService,
		webhookSecret: cfg.WebhookSecret,
		logger:        cfg.Logger,
		now:           time.Now,
	}
}

var _ domain.EventService = (*EventService)(nil)

func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, event.OrganizationID, domain.ResourceEvents, domain.ActionWrite)
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
		s.logger.WithField("organization_id", event.OrganizationID).Error(fmt.Sprintf("Failed to create event: %v", err))
		return err
	}
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, organizationID, id string) (*domain.Event, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEvents, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

func (s *EventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, event.OrganizationID, domain.ResourceEvents, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, event.OrganizationID, event.ID)
	if err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, event)
}

func (s *EventService) DeleteEvent(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEvents, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, organizationID, id)
}

func (s *EventService) ListEvents(ctx context.Context, organizationID string, upcomingOnly bool) ([]*domain.Event, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEvents, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	var from *time.Time
	if upcomingOnly {
		now := s.now().UTC()
		from = &now
	}
	events, err := s.repo.List(ctx, organizationID, from)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// CreateRSVP records the lead and seats the party, or waitlists it when the
// confirmed headcount leaves no room
func (s *EventService) CreateRSVP(ctx context.Context, req domain.CreateRSVPRequest) (*domain.RSVP, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var rsvp *domain.RSVP
	err := s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		event, err := s.repo.LockEventTx(ctx, tx, req.EventID)
		if err != nil {
			return err
		}
		if req.OrganizationID != "" && event.OrganizationID != req.OrganizationID {
			return domain.NewNotFound("event", req.EventID)
		}
		now := s.now().UTC()
		if !event.StartsAt.After(now) {
			return domain.NewValidationError("event has already started")
		}

		source := req.Source
		if source == "" {
			source = "rsvp"
		}
		lead := &domain.Lead{
			ID:             uuid.New().String(),
			OrganizationID: event.OrganizationID,
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Source:         source,
			Status:         domain.LeadNew,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.leads.UpsertByEmailTx(ctx, tx, lead); err != nil {
			return err
		}

		existing, err := s.repo.FindActiveRSVPTx(ctx, tx, event.ID, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewConflict("rsvp", "this email already has an RSVP for the event")
		}

		headcount, err := s.repo.ConfirmedHeadcountTx(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		rsvp = &domain.RSVP{
			ID:             uuid.New().String(),
			EventID:        event.ID,
			OrganizationID: event.OrganizationID,
			LeadID:         lead.ID,
			Name:           req.Name,
			Email:          req.Email,
			Guests:         req.Guests,
			Status:         domain.RSVPStatusFor(event.Capacity, headcount, req.Guests),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return s.repo.CreateRSVPTx(ctx, tx, rsvp)
	})
	if err != nil {
		if !domain.IsValidation(err) && !domain.IsConflict(err) && !domain.IsNotFound(err) {
			s.logger.WithField("event_id", req.EventID).Error(fmt.Sprintf("Failed to create RSVP: %v", err))
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"event_id": rsvp.EventID,
		"rsvp_id":  rsvp.ID,
		"status":   string(rsvp.Status),
	}).Info("RSVP created")
	return rsvp, nil
}

// CancelRSVP frees the party's seats and confirms the longest leading run of
// the waitlist that now fits
func (s *EventService) CancelRSVP(ctx context.Context, organizationID, rsvpID string) (*domain.RSVP, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEvents, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	var rsvp *domain.RSVP
	var promoted []*domain.RSVP
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		locked, err := s.repo.LockRSVPTx(ctx, tx, organizationID, rsvpID)
		if err != nil {
			return err
		}
		rsvp = locked
		if rsvp.Status == domain.RSVPCancelled {
			return nil
		}
		event, err := s.repo.LockEventTx(ctx, tx, rsvp.EventID)
		if err != nil {
			return err
		}
		if err := s.repo.UpdateRSVPStatusTx(ctx, tx, rsvp.ID, domain.RSVPCancelled); err != nil {
			return err
		}
		rsvp.Status = domain.RSVPCancelled
		rsvp.UpdatedAt = s.now().UTC()

		headcount, err := s.repo.ConfirmedHeadcountTx(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		waitlist, err := s.repo.ListWaitlistedTx(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		promoted = domain.PromotableRSVPs(event.Capacity, headcount, waitlist)
		for _, p := range promoted {
			if err := s.repo.UpdateRSVPStatusTx(ctx, tx, p.ID, domain.RSVPConfirmed); err != nil {
				return err
			}
			p.Status = domain.RSVPConfirmed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(promoted) > 0 {
		s.logger.WithFields(map[string]interface{}{
			"event_id": rsvp.EventID,
			"promoted": len(promoted),
		}).Info("Waitlisted RSVPs promoted")
	}
	return rsvp, nil
}

func (s *EventService) ListRSVPs(ctx context.Context, organizationID, eventID string) ([]*domain.RSVP, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEvents, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, organizationID, eventID); err != nil {
		return nil, err
	}
	rsvps, err := s.repo.ListRSVPs(ctx, organizationID, eventID)
	if err != nil {
		return nil, err
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}

// bookingField reads a field from the payload root or its data envelope
func bookingField(payload []byte, name string) gjson.Result {
	if r := gjson.GetBytes(payload, name); r.Exists() {
		return r
	}
	return gjson.GetBytes(payload, "data."+name)
}

// HandleBookingWebhook turns a signed booking notification into an RSVP
func (s *EventService) HandleBookingWebhook(ctx context.Context, payload []byte, headers http.Header) (*domain.RSVP, error) {
	if s.webhookSecret == "" {
		return nil, fmt.Errorf("booking webhook is not configured")
	}
	wh, err := svix.NewWebhook(s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook verifier: %w", err)
	}
	if err := wh.Verify(payload, headers); err != nil {
		s.logger.WithField("webhook_id", headers.Get("Webhook-Id")).Warn(fmt.Sprintf("Booking webhook rejected: %v", err))
		return nil, domain.NewValidationError("invalid webhook signature")
	}
	if !gjson.ValidBytes(payload) {
		return nil, domain.NewValidationError("webhook payload is not valid JSON")
	}

	req := domain.CreateRSVPRequest{
		EventID: bookingField(payload, "event_id").String(),
		Name:    bookingField(payload, "name").String(),
		Email:   bookingField(payload, "email").String(),
		Phone:   bookingField(payload, "phone").String(),
		Guests:  int(bookingField(payload, "guests").Int()),
		Source:  "booking",
	}
	return s.CreateRSVP(ctx, req)
}
