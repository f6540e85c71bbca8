package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_payment_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain PaymentRepository
//go:generate mockgen -destination mocks/mock_payment_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain PaymentService
//go:generate mockgen -destination mocks/mock_payment_provider.go -package mocks github.com/Go4ItSports/go4it/internal/domain PaymentProvider

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID                string        `json:"id"`
	OrganizationID    string        `json:"organization_id"`
	Purpose           Purpose       `json:"purpose"`
	ReferenceID       string        `json:"reference_id"`
	Email             string        `json:"email"`
	AmountCents       int64         `json:"amount_cents"`
	Currency          string        `json:"currency"`
	Status            PaymentStatus `json:"status"`
	ProviderSessionID string        `json:"provider_session_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`
}

type CheckoutRequest struct {
	OrganizationID string
	Purpose        Purpose
	ReferenceID    string
	Email          string
	AmountCents    int64
	Description    string
}

func (r *CheckoutRequest) Validate() error {
	if r.OrganizationID == "" || r.ReferenceID == "" {
		return NewValidationError("organization_id and reference_id are required")
	}
	if !r.Purpose.IsPayable() {
		return NewValidationError("invalid payment purpose: " + string(r.Purpose))
	}
	if r.AmountCents <= 0 {
		return NewValidationError("checkout amount must be positive")
	}
	if r.Description == "" {
		r.Description = "Go4It Sports " + string(r.Purpose)
	}
	return nil
}

type CheckoutResult struct {
	PaymentID string `json:"payment_id"`
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CheckoutSessionParams is what the provider needs to open a hosted checkout
type CheckoutSessionParams struct {
	PaymentID      string
	OrganizationID string
	Purpose        Purpose
	ReferenceID    string
	Email          string
	AmountCents    int64
	Currency       string
	Description    string
}

type CheckoutSession struct {
	ID  string
	URL string
}

const PaymentEventCheckoutCompleted = "checkout.session.completed"

// PaymentWebhookEvent is the provider neutral view of a verified webhook
type PaymentWebhookEvent struct {
	Type        string
	SessionID   string
	PaymentID   string
	Purpose     Purpose
	ReferenceID string
	Paid        bool
}

// PaymentProvider wraps the hosted checkout vendor
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	// ParseWebhook verifies the signature and decodes the event
	ParseWebhook(payload []byte, signature string) (*PaymentWebhookEvent, error)
}

// PaymentConfirmer fulfils the purchase behind a paid checkout
type PaymentConfirmer func(ctx context.Context, referenceID string) error

type PaymentService interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	RegisterConfirmer(purpose Purpose, confirmer PaymentConfirmer)
	ListPayments(ctx context.Context, organizationID string, status PaymentStatus) ([]*Payment, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	SetProviderSession(ctx context.Context, id, sessionID string) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetByProviderSession(ctx context.Context, sessionID string) (*Payment, error)
	// MarkPaid reports false when the payment was already paid
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id string) error
	List(ctx context.Context, organizationID string, status PaymentStatus) ([]*Payment, error)
	SumPaid(ctx context.Context, organizationID string) (int64, error)
}
