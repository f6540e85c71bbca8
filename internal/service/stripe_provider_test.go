package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/domain"
)

const testWebhookSecret = "whsec_test_secret"

func newTestStripeProvider() *StripeProvider {
	return NewStripeProvider(config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		SuccessURL:    "https://app.go4it.test/checkout/success",
		CancelURL:     "https://app.go4it.test/checkout/cancel",
	})
}

func signedPayload(t *testing.T, body string) ([]byte, string) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(body),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestStripeProvider_CreateCheckoutSession(t *testing.T) {
	p := newTestStripeProvider()
	var captured *stripe.CheckoutSessionParams
	p.newCheckout = func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		captured = params
		return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}, nil
	}

	sess, err := p.CreateCheckoutSession(context.Background(), domain.CheckoutSessionParams{
		PaymentID:      "pay-1",
		OrganizationID: "org-1",
		Purpose:        domain.PurposeCamp,
		ReferenceID:    "reg-1",
		Email:          "parent@example.com",
		AmountCents:    4999,
		Currency:       "USD",
		Description:    "Summer Camp",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_test_1", sess.URL)

	require.NotNil(t, captured)
	assert.Equal(t, "payment", *captured.Mode)
	assert.Equal(t, "pay-1", *captured.ClientReferenceID)
	assert.Equal(t, "parent@example.com", *captured.CustomerEmail)
	require.Len(t, captured.LineItems, 1)
	assert.Equal(t, "usd", *captured.LineItems[0].PriceData.Currency)
	assert.Equal(t, int64(4999), *captured.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "Summer Camp", *captured.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, "reg-1", captured.Metadata["reference_id"])
	assert.Equal(t, string(domain.PurposeCamp), captured.Metadata["purpose"])
}

func TestStripeProvider_CreateCheckoutSession_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		p := NewStripeProvider(config.StripeConfig{})
		_, err := p.CreateCheckoutSession(context.Background(), domain.CheckoutSessionParams{})
		assert.Error(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		p := newTestStripeProvider()
		p.newCheckout = func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return nil, errors.New("card_declined")
		}
		_, err := p.CreateCheckoutSession(context.Background(), domain.CheckoutSessionParams{AmountCents: 100})
		assert.ErrorContains(t, err, "card_declined")
	})
}

func TestStripeProvider_ParseWebhook(t *testing.T) {
	p := newTestStripeProvider()

	t.Run("completed checkout", func(t *testing.T) {
		payload, header := signedPayload(t, `{
			"id": "evt_1",
			"object": "event",
			"type": "checkout.session.completed",
			"data": {"object": {
				"id": "cs_test_1",
				"object": "checkout.session",
				"client_reference_id": "pay-1",
				"payment_status": "paid",
				"metadata": {"payment_id": "pay-1", "purpose": "camp", "reference_id": "reg-1"}
			}}
		}`)
		event, err := p.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentEventCheckoutCompleted, event.Type)
		assert.Equal(t, "cs_test_1", event.SessionID)
		assert.Equal(t, "pay-1", event.PaymentID)
		assert.Equal(t, domain.PurposeCamp, event.Purpose)
		assert.Equal(t, "reg-1", event.ReferenceID)
		assert.True(t, event.Paid)
	})

	t.Run("unpaid falls back to client reference", func(t *testing.T) {
		payload, header := signedPayload(t, `{
			"id": "evt_2",
			"object": "event",
			"type": "checkout.session.completed",
			"data": {"object": {"id": "cs_test_2", "client_reference_id": "pay-2", "payment_status": "unpaid"}}
		}`)
		event, err := p.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "pay-2", event.PaymentID)
		assert.False(t, event.Paid)
	})

	t.Run("other event types pass through", func(t *testing.T) {
		payload, header := signedPayload(t, `{"id": "evt_3", "object": "event", "type": "charge.refunded", "data": {"object": {}}}`)
		event, err := p.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "charge.refunded", event.Type)
		assert.Empty(t, event.SessionID)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, err := p.ParseWebhook([]byte(`{"id":"evt_4"}`), "t=1,v1=deadbeef")
		assert.True(t, domain.IsValidation(err))
	})
}
