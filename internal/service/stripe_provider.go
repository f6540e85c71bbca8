package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/domain"
)

const (
	metadataPaymentID   = "payment_id"
	metadataPurpose     = "purpose"
	metadataReferenceID = "reference_id"
	metadataOrgID       = "organization_id"
)

// StripeProvider opens hosted Stripe checkouts and verifies Stripe webhooks
type StripeProvider struct {
	cfg         config.StripeConfig
	newCheckout func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewStripeProvider(cfg config.StripeConfig) *StripeProvider {
	stripe.Key = cfg.SecretKey
	return &StripeProvider{
		cfg:         cfg,
		newCheckout: checkoutsession.New,
	}
}

var _ domain.PaymentProvider = (*StripeProvider)(nil)

// checkoutParams builds a payment mode session with one inline priced line item
func (p *StripeProvider) checkoutParams(params domain.CheckoutSessionParams) *stripe.CheckoutSessionParams {
	currency := strings.ToLower(params.Currency)
	if currency == "" {
		currency = "usd"
	}
	sp := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.cfg.SuccessURL),
		CancelURL:         stripe.String(p.cfg.CancelURL),
		ClientReferenceID: stripe.String(params.PaymentID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(params.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(params.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
	}
	if params.Email != "" {
		sp.CustomerEmail = stripe.String(params.Email)
	}
	sp.AddMetadata(metadataPaymentID, params.PaymentID)
	sp.AddMetadata(metadataPurpose, string(params.Purpose))
	sp.AddMetadata(metadataReferenceID, params.ReferenceID)
	sp.AddMetadata(metadataOrgID, params.OrganizationID)
	return sp
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {
	if p.cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe is not configured")
	}
	sess, err := p.newCheckout(p.checkoutParams(params))
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &domain.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes checkout events
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*domain.PaymentWebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, domain.NewValidationError("invalid webhook signature")
	}

	out := &domain.PaymentWebhookEvent{Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") {
		return out, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, domain.NewValidationError("invalid checkout.session data")
	}
	out.SessionID = cs.ID
	out.PaymentID = cs.Metadata[metadataPaymentID]
	if out.PaymentID == "" {
		out.PaymentID = cs.ClientReferenceID
	}
	out.Purpose = domain.Purpose(cs.Metadata[metadataPurpose])
	out.ReferenceID = cs.Metadata[metadataReferenceID]
	out.Paid = cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid ||
		cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusNoPaymentRequired
	return out, nil
}
