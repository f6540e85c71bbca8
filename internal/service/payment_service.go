package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type PaymentService struct {
	repo        domain.PaymentRepository
	provider    domain.PaymentProvider
	authService domain.AuthService
	eventBus    domain.EventBus
	logger      logger.Logger
	currency    string
	now         func() time.Time

	mu         sync.RWMutex
	confirmers map[domain.Purpose]domain.PaymentConfirmer
}

type PaymentServiceConfig struct {
	Repository  domain.PaymentRepository
	Provider    domain.PaymentProvider
	AuthService domain.AuthService
	EventBus    domain.EventBus
	Currency    string
	Logger      logger.Logger
}

func NewPaymentService(cfg PaymentServiceConfig) *PaymentService {
	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		repo:        cfg.Repository,
		provider:    cfg.Provider,
		authService: cfg.AuthService,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		currency:    currency,
		now:         time.Now,
		confirmers:  make(map[domain.Purpose]domain.PaymentConfirmer),
	}
}

var _ domain.PaymentService = (*PaymentService)(nil)

// RegisterConfirmer sets the fulfilment callback run when a checkout for purpose is paid
func (s *PaymentService) RegisterConfirmer(purpose domain.Purpose, confirmer domain.PaymentConfirmer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmers[purpose] = confirmer
}

func (s *PaymentService) confirmer(purpose domain.Purpose) domain.PaymentConfirmer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confirmers[purpose]
}

// CreateCheckout records a pending payment and opens a hosted checkout for it.
// Callers are the owning services, which have already authorized the request.
func (s *PaymentService) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, fmt.Errorf("payment provider is not configured")
	}

	payment := &domain.Payment{
		ID:             uuid.New().String(),
		OrganizationID: req.OrganizationID,
		Purpose:        req.Purpose,
		ReferenceID:    req.ReferenceID,
		Email:          req.Email,
		AmountCents:    req.AmountCents,
		Currency:       s.currency,
		Status:         domain.PaymentPending,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		s.logger.WithField("reference_id", req.ReferenceID).Error(fmt.Sprintf("Failed to create payment: %v", err))
		return nil, err
	}

	session, err := s.provider.CreateCheckoutSession(ctx, domain.CheckoutSessionParams{
		PaymentID:      payment.ID,
		OrganizationID: payment.OrganizationID,
		Purpose:        payment.Purpose,
		ReferenceID:    payment.ReferenceID,
		Email:          payment.Email,
		AmountCents:    payment.AmountCents,
		Currency:       payment.Currency,
		Description:    req.Description,
	})
	if err != nil {
		s.logger.WithField("payment_id", payment.ID).Error(fmt.Sprintf("Failed to create checkout session: %v", err))
		if markErr := s.repo.MarkFailed(ctx, payment.ID); markErr != nil {
			s.logger.WithField("payment_id", payment.ID).Error(fmt.Sprintf("Failed to mark payment failed: %v", markErr))
		}
		return nil, err
	}

	if err := s.repo.SetProviderSession(ctx, payment.ID, session.ID); err != nil {
		s.logger.WithField("payment_id", payment.ID).Error(fmt.Sprintf("Failed to store checkout session: %v", err))
		return nil, err
	}

	return &domain.CheckoutResult{
		PaymentID: payment.ID,
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *PaymentService) lookupPayment(ctx context.Context, event *domain.PaymentWebhookEvent) (*domain.Payment, error) {
	if event.PaymentID != "" {
		payment, err := s.repo.GetByID(ctx, event.PaymentID)
		if err == nil || !domain.IsNotFound(err) {
			return payment, err
		}
	}
	if event.SessionID == "" {
		return nil, domain.NewNotFound("payment", event.PaymentID)
	}
	return s.repo.GetByProviderSession(ctx, event.SessionID)
}

// HandleWebhook verifies a provider callback and fulfils the paid purchase.
// The confirmer runs before the payment is marked paid so a failed
// fulfilment is retried on the provider's next delivery.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.provider == nil {
		return fmt.Errorf("payment provider is not configured")
	}
	event, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if event.Type != domain.PaymentEventCheckoutCompleted || !event.Paid {
		s.logger.WithField("event_type", event.Type).Debug("Ignoring payment webhook")
		return nil
	}

	payment, err := s.lookupPayment(ctx, event)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.WithField("session_id", event.SessionID).Warn("Payment webhook for unknown checkout")
			return nil
		}
		return err
	}
	if payment.Status == domain.PaymentPaid {
		return nil
	}

	if confirm := s.confirmer(payment.Purpose); confirm != nil {
		if err := confirm(ctx, payment.ReferenceID); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"payment_id":   payment.ID,
				"reference_id": payment.ReferenceID,
			}).Error(fmt.Sprintf("Failed to confirm paid %s: %v", payment.Purpose, err))
			return err
		}
	} else {
		s.logger.WithField("purpose", string(payment.Purpose)).Warn("No confirmer registered for payment purpose")
	}

	updated, err := s.repo.MarkPaid(ctx, payment.ID, s.now().UTC())
	if err != nil {
		s.logger.WithField("payment_id", payment.ID).Error(fmt.Sprintf("Failed to mark payment paid: %v", err))
		return err
	}
	if !updated || s.eventBus == nil {
		return nil
	}

	s.eventBus.Publish(ctx, domain.EventPayload{
		Type:           domain.EventPaymentSucceeded,
		OrganizationID: payment.OrganizationID,
		EntityID:       payment.ID,
		Data: map[string]interface{}{
			"purpose":      string(payment.Purpose),
			"reference_id": payment.ReferenceID,
			"amount_cents": payment.AmountCents,
			"email":        payment.Email,
		},
	})
	return nil
}

func (s *PaymentService) ListPayments(ctx context.Context, organizationID string, status domain.PaymentStatus) ([]*domain.Payment, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourcePayments, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	switch status {
	case "", domain.PaymentPending, domain.PaymentPaid, domain.PaymentFailed:
	default:
		return nil, domain.NewValidationError("invalid payment status: " + string(status))
	}
	payments, err := s.repo.List(ctx, organizationID, status)
	if err != nil {
		s.logger.WithField("organization_id", organizationID).Error(fmt.Sprintf("Failed to list payments: %v", err))
		return nil, err
	}
	if payments == nil {
		payments = []*domain.Payment{}
	}
	return payments, nil
}
