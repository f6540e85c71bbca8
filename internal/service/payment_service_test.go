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
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type paymentDeps struct {
	repo     *mocks.MockPaymentRepository
	provider *mocks.MockPaymentProvider
	auth     *mocks.MockAuthService
	bus      *recordingBus
}

func setupPaymentTest(t *testing.T) (*paymentDeps, *PaymentService) {
	ctrl := gomock.NewController(t)
	d := &paymentDeps{
		repo:     mocks.NewMockPaymentRepository(ctrl),
		provider: mocks.NewMockPaymentProvider(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
		bus:      &recordingBus{},
	}
	svc := NewPaymentService(PaymentServiceConfig{
		Repository:  d.repo,
		Provider:    d.provider,
		AuthService: d.auth,
		EventBus:    d.bus,
		Logger:      logger.NewMockLogger(t),
	})
	return d, svc
}

func TestPaymentService_CreateCheckout(t *testing.T) {
	req := domain.CheckoutRequest{
		OrganizationID: "org-1",
		Purpose:        domain.PurposeCourse,
		ReferenceID:    "enr-1",
		Email:          "athlete@example.com",
		AmountCents:    1999,
	}

	t.Run("opens a session", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		var paymentID string
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Payment) error {
				paymentID = p.ID
				assert.Equal(t, domain.PaymentPending, p.Status)
				assert.Equal(t, "usd", p.Currency)
				return nil
			})
		d.provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {
				assert.Equal(t, paymentID, params.PaymentID)
				assert.Equal(t, "Go4It Sports course", params.Description)
				return &domain.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
			})
		d.repo.EXPECT().SetProviderSession(gomock.Any(), gomock.Any(), "cs_1").Return(nil)

		res, err := svc.CreateCheckout(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, paymentID, res.PaymentID)
		assert.Equal(t, "https://pay.example.com/cs_1", res.URL)
	})

	t.Run("provider failure marks payment failed", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe down"))
		d.repo.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreateCheckout(context.Background(), req)
		assert.EqualError(t, err, "stripe down")
	})

	t.Run("validation", func(t *testing.T) {
		_, svc := setupPaymentTest(t)
		bad := req
		bad.AmountCents = 0
		_, err := svc.CreateCheckout(context.Background(), bad)
		assert.True(t, domain.IsValidation(err))

		bad = req
		bad.Purpose = domain.PurposeAll
		_, err = svc.CreateCheckout(context.Background(), bad)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	pending := func() *domain.Payment {
		return &domain.Payment{
			ID: "pay-1", OrganizationID: "org-1", Purpose: domain.PurposeCamp,
			ReferenceID: "reg-1", Status: domain.PaymentPending, AmountCents: 5000,
		}
	}
	completed := &domain.PaymentWebhookEvent{
		Type: domain.PaymentEventCheckoutCompleted, SessionID: "cs_1", PaymentID: "pay-1", Paid: true,
	}

	t.Run("confirms then marks paid", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		var confirmed []string
		svc.RegisterConfirmer(domain.PurposeCamp, func(_ context.Context, ref string) error {
			confirmed = append(confirmed, ref)
			return nil
		})
		d.provider.EXPECT().ParseWebhook([]byte("body"), "sig").Return(completed, nil)
		d.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pending(), nil)
		d.repo.EXPECT().MarkPaid(gomock.Any(), "pay-1", gomock.Any()).Return(true, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), []byte("body"), "sig"))
		assert.Equal(t, []string{"reg-1"}, confirmed)
		assert.Equal(t, []domain.EventType{domain.EventPaymentSucceeded}, d.bus.types())
	})

	t.Run("falls back to session lookup", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(completed, nil)
		d.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(nil, domain.NewNotFound("payment", "pay-1"))
		d.repo.EXPECT().GetByProviderSession(gomock.Any(), "cs_1").Return(pending(), nil)
		d.repo.EXPECT().MarkPaid(gomock.Any(), "pay-1", gomock.Any()).Return(true, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, ""))
	})

	t.Run("already paid is a no-op", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		svc.RegisterConfirmer(domain.PurposeCamp, func(context.Context, string) error {
			t.Fatal("confirmer must not run twice")
			return nil
		})
		paid := pending()
		paid.Status = domain.PaymentPaid
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(completed, nil)
		d.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(paid, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, ""))
		assert.Empty(t, d.bus.types())
	})

	t.Run("confirmer failure leaves payment pending", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		svc.RegisterConfirmer(domain.PurposeCamp, func(context.Context, string) error {
			return errors.New("camp full")
		})
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(completed, nil)
		d.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(pending(), nil)

		assert.EqualError(t, svc.HandleWebhook(context.Background(), nil, ""), "camp full")
	})

	t.Run("unpaid and other events are ignored", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
			Return(&domain.PaymentWebhookEvent{Type: domain.PaymentEventCheckoutCompleted, Paid: false}, nil)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
			Return(&domain.PaymentWebhookEvent{Type: "charge.refunded"}, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, ""))
		require.NoError(t, svc.HandleWebhook(context.Background(), nil, ""))
	})

	t.Run("unknown payment is acknowledged", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
			Return(&domain.PaymentWebhookEvent{Type: domain.PaymentEventCheckoutCompleted, SessionID: "cs_x", Paid: true}, nil)
		d.repo.EXPECT().GetByProviderSession(gomock.Any(), "cs_x").Return(nil, domain.NewNotFound("payment", "cs_x"))

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, ""))
	})

	t.Run("bad signature", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(nil, domain.NewValidationError("invalid webhook signature"))
		assert.True(t, domain.IsValidation(svc.HandleWebhook(context.Background(), nil, "")))
	})
}

func TestPaymentService_ListPayments(t *testing.T) {
	t.Run("admin lists", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "u1"}, domain.RoleAdmin)
		now := time.Now()
		d.repo.EXPECT().List(gomock.Any(), "org-1", domain.PaymentPaid).
			Return([]*domain.Payment{{ID: "pay-1", PaidAt: &now}}, nil)

		payments, err := svc.ListPayments(context.Background(), "org-1", domain.PaymentPaid)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("coach denied", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "u1"}, domain.RoleCoach)
		_, err := svc.ListPayments(context.Background(), "org-1", "")
		var perm *domain.PermissionError
		assert.ErrorAs(t, err, &perm)
	})

	t.Run("bad status", func(t *testing.T) {
		d, svc := setupPaymentTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "u1"}, domain.RoleOwner)
		_, err := svc.ListPayments(context.Background(), "org-1", "refunded")
		assert.True(t, domain.IsValidation(err))
	})
}
