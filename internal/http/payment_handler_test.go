package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func TestPaymentHandler_Webhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentService(ctrl)
	handler := NewPaymentHandler(payments, logger.NewMockLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, passthrough)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	tests := []struct {
		name       string
		method     string
		err        error
		expect     bool
		wantStatus int
	}{
		{"acknowledged", http.MethodPost, nil, true, http.StatusOK},
		{"invalid signature", http.MethodPost, domain.NewValidationError("invalid webhook signature"), true, http.StatusBadRequest},
		{"confirmer failed", http.MethodPost, errors.New("db down"), true, http.StatusInternalServerError},
		{"get not allowed", http.MethodGet, nil, false, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expect {
				payments.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").Return(tt.err)
			}
			req := httptest.NewRequest(tt.method, "/api/payments.webhook", bytes.NewReader(payload))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPaymentHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockPaymentService(ctrl)
	handler := NewPaymentHandler(payments, logger.NewMockLogger(t))

	payments.EXPECT().ListPayments(gomock.Any(), "org-1", domain.PaymentPaid).
		Return([]*domain.Payment{{ID: "pay-1"}}, nil)

	rec := serve(handler, http.MethodGet, "/api/payments.list?organization_id=org-1&status=paid", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["payments"], 1)
}
