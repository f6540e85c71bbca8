package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func TestLeadHandler_RSVP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leads := mocks.NewMockLeadService(ctrl)
	events := mocks.NewMockEventService(ctrl)
	handler := NewLeadHandler(leads, events, logger.NewMockLogger(t))

	req := domain.CreateRSVPRequest{
		OrganizationID: "org-1",
		EventID:        "evt-1",
		Name:           "Pat Rivers",
		Email:          "pat@example.com",
		Guests:         2,
	}

	t.Run("waitlisted when full", func(t *testing.T) {
		events.EXPECT().CreateRSVP(gomock.Any(), req).
			Return(&domain.RSVP{ID: "r1", Status: domain.RSVPWaitlisted}, nil)

		rec := serve(handler, http.MethodPost, "/api/events.rsvp", req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		rsvp := decodeBody(t, rec)["rsvp"].(map[string]interface{})
		assert.Equal(t, "waitlisted", rsvp["status"])
	})

	t.Run("duplicate rsvp", func(t *testing.T) {
		events.EXPECT().CreateRSVP(gomock.Any(), req).Return(nil, domain.NewConflict("rsvp", "already registered"))

		rec := serve(handler, http.MethodPost, "/api/events.rsvp", req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("cancel", func(t *testing.T) {
		events.EXPECT().CancelRSVP(gomock.Any(), "org-1", "r1").Return(&domain.RSVP{ID: "r1", Status: domain.RSVPCancelled}, nil)

		rec := serve(handler, http.MethodPost, "/api/rsvps.cancel", rsvpRequest{OrganizationID: "org-1", RSVPID: "r1"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLeadHandler_BookingWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventService(ctrl)
	handler := NewLeadHandler(mocks.NewMockLeadService(ctrl), events, logger.NewMockLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, passthrough)

	payload := []byte(`{"data":{"event_id":"evt-1","email":"pat@example.com","name":"Pat"}}`)

	t.Run("passes raw body and headers", func(t *testing.T) {
		events.EXPECT().
			HandleBookingWebhook(gomock.Any(), payload, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []byte, headers http.Header) (*domain.RSVP, error) {
				assert.Equal(t, "msg_1", headers.Get("webhook-id"))
				return &domain.RSVP{ID: "r9", Status: domain.RSVPConfirmed}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/events.bookingWebhook", bytes.NewReader(payload))
		req.Header.Set("webhook-id", "msg_1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad signature", func(t *testing.T) {
		events.EXPECT().HandleBookingWebhook(gomock.Any(), payload, gomock.Any()).Return(nil, domain.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/api/events.bookingWebhook", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLeadHandler_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leads := mocks.NewMockLeadService(ctrl)
	handler := NewLeadHandler(leads, mocks.NewMockEventService(ctrl), logger.NewMockLogger(t))

	leads.EXPECT().ConvertLeadToProspect(gomock.Any(), "org-1", "lead-1").Return(&domain.Prospect{ID: "p1"}, nil)

	rec := serve(handler, http.MethodPost, "/api/leads.convert", leadConvertRequest{OrganizationID: "org-1", LeadID: "lead-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "prospect")
}
