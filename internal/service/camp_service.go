package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/templates"
)

type CampService struct {
	repo        domain.CampRepository
	coupons     domain.CouponService
	payments    domain.PaymentService
	mailer      mailer.Mailer
	authService domain.AuthService
	eventBus    domain.EventBus
	logger      logger.Logger
	now         func() time.Time
}

type CampServiceConfig struct {
	Repository     domain.CampRepository
	CouponService  domain.CouponService
	PaymentService domain.PaymentService
	Mailer         mailer.Mailer
	AuthService    domain.AuthService
	EventBus       domain.EventBus
	Logger         logger.Logger
}

func NewCampService(cfg CampServiceConfig) *CampService {
	return &CampService{
		repo:        cfg.Repository,
		coupons:     cfg.CouponService,
		payments:    cfg.PaymentService,
		mailer:      cfg.Mailer,
		authService: cfg.AuthService,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

var _ domain.CampService = (*CampService)(nil)

func (s *CampService) CreateCamp(ctx context.Context, camp *domain.Camp) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, camp.OrganizationID, domain.ResourceCamps, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := camp.Validate(); err != nil {
		return err
	}
	camp.ID = uuid.New().String()
	camp.CreatedAt = s.now().UTC()
	camp.UpdatedAt = camp.CreatedAt
	if err := s.repo.Create(ctx, camp); err != nil {
		s.logger.WithField("organization_id", camp.OrganizationID).Error(fmt.Sprintf("Failed to create camp: %v", err))
		return err
	}
	return nil
}

func (s *CampService) GetCamp(ctx context.Context, organizationID, id string) (*domain.Camp, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCamps, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID, id)
}

func (s *CampService) UpdateCamp(ctx context.Context, camp *domain.Camp) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, camp.OrganizationID, domain.ResourceCamps, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, camp.OrganizationID, camp.ID)
	if err != nil {
		return err
	}
	if err := camp.Validate(); err != nil {
		return err
	}
	camp.CreatedAt = existing.CreatedAt
	camp.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, camp); err != nil {
		s.logger.WithField("camp_id", camp.ID).Error(fmt.Sprintf("Failed to update camp: %v", err))
		return err
	}
	return nil
}

func (s *CampService) DeleteCamp(ctx context.Context, organizationID, id string) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCamps, domain.ActionWrite)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, organizationID, id)
}

// ListCamps lists camps. Members without write access only see open camps.
func (s *CampService) ListCamps(ctx context.Context, organizationID string, status domain.CampStatus) ([]*domain.Camp, error) {
	ctx, _, member, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCamps, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if !member.Can(domain.ResourceCamps, domain.ActionWrite) {
		status = domain.CampStatusOpen
	}
	camps, err := s.repo.List(ctx, organizationID, status)
	if err != nil {
		return nil, err
	}
	if camps == nil {
		camps = []*domain.Camp{}
	}
	return camps, nil
}

// Register books a seat from the public form. Capacity, coupon redemption and
// the insert share one transaction with the camp row locked. Checkout is
// opened after commit for registrations that still owe money.
func (s *CampService) Register(ctx context.Context, req domain.CampRegistrationRequest) (*domain.CampRegistrationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var camp *domain.Camp
	now := s.now().UTC()
	reg := &domain.CampRegistration{
		ID:              uuid.New().String(),
		CampID:          req.CampID,
		OrganizationID:  req.OrganizationID,
		AthleteID:       req.AthleteID,
		ParticipantName: req.ParticipantName,
		Email:           req.Email,
		Phone:           req.Phone,
		CouponCode:      req.CouponCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		camp, err = s.repo.LockCampTx(ctx, tx, req.OrganizationID, req.CampID)
		if err != nil {
			return err
		}
		if camp.Status != domain.CampStatusOpen {
			return domain.NewValidationError("camp is not open for registration")
		}
		taken, err := s.repo.CountActiveRegistrationsTx(ctx, tx, camp.ID)
		if err != nil {
			return err
		}
		if taken >= camp.Capacity {
			return domain.NewConflict("camp", "camp is full")
		}

		reg.AmountCents = camp.PriceCents
		reg.TotalCents = camp.PriceCents
		if req.CouponCode != "" && camp.PriceCents > 0 {
			eval, err := s.coupons.RedeemInTx(ctx, tx, domain.RedeemCouponInput{
				OrganizationID: camp.OrganizationID,
				Code:           req.CouponCode,
				AmountCents:    camp.PriceCents,
				Purpose:        domain.PurposeCamp,
				Email:          req.Email,
				ReferenceID:    reg.ID,
			})
			if err != nil {
				return err
			}
			reg.DiscountCents = eval.DiscountCents
			reg.TotalCents = eval.FinalCents
		}

		reg.Status = domain.RegistrationConfirmed
		if reg.TotalCents > 0 {
			reg.Status = domain.RegistrationPendingPayment
		}
		return s.repo.CreateRegistrationTx(ctx, tx, reg)
	})
	if err != nil {
		if !domain.IsValidation(err) && !domain.IsConflict(err) && !domain.IsNotFound(err) {
			s.logger.WithField("camp_id", req.CampID).Error(fmt.Sprintf("Failed to register for camp: %v", err))
		}
		return nil, err
	}

	result := &domain.CampRegistrationResult{Registration: reg}
	if reg.Status == domain.RegistrationPendingPayment {
		checkout, err := s.payments.CreateCheckout(ctx, domain.CheckoutRequest{
			OrganizationID: reg.OrganizationID,
			Purpose:        domain.PurposeCamp,
			ReferenceID:    reg.ID,
			Email:          reg.Email,
			AmountCents:    reg.TotalCents,
			Description:    camp.Name,
		})
		if err != nil {
			s.logger.WithField("registration_id", reg.ID).Error(fmt.Sprintf("Failed to open camp checkout: %v", err))
			s.releaseRegistration(ctx, reg)
			return nil, err
		}
		reg.CheckoutSessionID = checkout.SessionID
		reg.UpdatedAt = s.now().UTC()
		if err := s.repo.UpdateRegistration(ctx, reg); err != nil {
			s.logger.WithField("registration_id", reg.ID).Error(fmt.Sprintf("Failed to store checkout session: %v", err))
		}
		result.CheckoutURL = checkout.URL
	}

	s.sendRegistrationEmail(ctx, camp, reg, result.CheckoutURL)
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, domain.EventPayload{
			Type:           domain.EventRegistrationCreated,
			OrganizationID: reg.OrganizationID,
			EntityID:       reg.ID,
			Data: map[string]interface{}{
				"camp_id": camp.ID,
				"status":  string(reg.Status),
			},
		})
	}
	return result, nil
}

// releaseRegistration frees the seat and coupon use of a registration whose
// checkout never opened
func (s *CampService) releaseRegistration(ctx context.Context, reg *domain.CampRegistration) {
	if err := s.cancelRegistration(ctx, reg, true); err != nil {
		s.logger.WithField("registration_id", reg.ID).Error(fmt.Sprintf("Failed to release registration: %v", err))
	}
}

// cancelRegistration marks reg cancelled and, when releaseCoupon is set,
// returns its coupon redemption in the same transaction
func (s *CampService) cancelRegistration(ctx context.Context, reg *domain.CampRegistration, releaseCoupon bool) error {
	reg.Status = domain.RegistrationCancelled
	reg.UpdatedAt = s.now().UTC()
	return s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.UpdateRegistrationTx(ctx, tx, reg); err != nil {
			return err
		}
		if releaseCoupon && reg.CouponCode != "" {
			return s.coupons.ReleaseInTx(ctx, tx, domain.PurposeCamp, reg.ID)
		}
		return nil
	})
}

func (s *CampService) sendRegistrationEmail(ctx context.Context, camp *domain.Camp, reg *domain.CampRegistration, checkoutURL string) {
	if s.mailer == nil {
		return
	}
	dates := camp.StartDate.Format("Jan 2, 2006")
	if !camp.EndDate.Equal(camp.StartDate) {
		dates += " - " + camp.EndDate.Format("Jan 2, 2006")
	}
	content := templates.EmailContent{
		Preheader: "Registration for " + camp.Name,
		Heading:   "You're registered for " + camp.Name,
		Paragraphs: []string{
			fmt.Sprintf("Hi %s, thanks for registering.", reg.ParticipantName),
			fmt.Sprintf("%s at %s.", dates, camp.Location),
		},
		Footer: "Questions? Reply to this email.",
	}
	subject := "Camp registration confirmed: " + camp.Name
	if reg.Status == domain.RegistrationPendingPayment {
		content.Heading = "Complete your registration for " + camp.Name
		content.Paragraphs = append(content.Paragraphs,
			fmt.Sprintf("Your seat is held until payment of $%.2f is received.", float64(reg.TotalCents)/100))
		content.ButtonText = "Pay now"
		content.ButtonURL = checkoutURL
		subject = "Complete your camp registration: " + camp.Name
	}
	if reg.DiscountCents > 0 {
		content.Paragraphs = append(content.Paragraphs,
			fmt.Sprintf("Coupon %s saved you $%.2f.", reg.CouponCode, float64(reg.DiscountCents)/100))
	}
	if err := sendLayoutEmail(ctx, s.mailer, reg.Email, reg.ParticipantName, subject, "camp_registration", content); err != nil {
		s.logger.WithField("registration_id", reg.ID).Warn(fmt.Sprintf("Failed to send registration email: %v", err))
	}
}

func (s *CampService) CancelRegistration(ctx context.Context, organizationID, registrationID string) (*domain.CampRegistration, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCamps, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	reg, err := s.repo.GetRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.OrganizationID != organizationID {
		return nil, domain.NewNotFound("camp_registration", registrationID)
	}
	if reg.Status == domain.RegistrationCancelled {
		return reg, nil
	}
	// an unpaid registration gives its coupon use back
	unpaid := reg.Status == domain.RegistrationPendingPayment
	if err := s.cancelRegistration(ctx, reg, unpaid); err != nil {
		s.logger.WithField("registration_id", registrationID).Error(fmt.Sprintf("Failed to cancel registration: %v", err))
		return nil, err
	}
	return reg, nil
}

func (s *CampService) ListRegistrations(ctx context.Context, organizationID, campID string) ([]*domain.CampRegistration, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceCamps, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	regs, err := s.repo.ListRegistrations(ctx, organizationID, campID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.CampRegistration{}
	}
	return regs, nil
}

// ConfirmPaidRegistration is the camp payment confirmer. Repeated calls are no-ops.
func (s *CampService) ConfirmPaidRegistration(ctx context.Context, registrationID string) error {
	reg, err := s.repo.GetRegistration(ctx, registrationID)
	if err != nil {
		return err
	}
	switch reg.Status {
	case domain.RegistrationConfirmed:
		return nil
	case domain.RegistrationCancelled:
		s.logger.WithField("registration_id", reg.ID).Warn("Payment received for a cancelled camp registration")
		return nil
	}
	reg.Status = domain.RegistrationConfirmed
	reg.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateRegistration(ctx, reg); err != nil {
		return err
	}

	camp, err := s.repo.GetByID(ctx, reg.OrganizationID, reg.CampID)
	if err != nil {
		s.logger.WithField("camp_id", reg.CampID).Warn(fmt.Sprintf("Failed to load camp for confirmation email: %v", err))
		return nil
	}
	s.sendRegistrationEmail(ctx, camp, reg, "")
	return nil
}
