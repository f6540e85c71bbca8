package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func TestCombineHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	combines := mocks.NewMockCombineService(ctrl)
	handler := NewCombineHandler(combines, logger.NewMockLogger(t))

	t.Run("from defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		combines.EXPECT().ListUpcoming(gomock.Any(), "org-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, from time.Time) ([]*domain.CombineEvent, error) {
				assert.False(t, from.Before(before))
				return []*domain.CombineEvent{{ID: "cb1", Status: domain.CombineOpen}}, nil
			})

		rec := serve(handler, http.MethodGet, "/api/combines.list?organization_id=org-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["combines"], 1)
	})

	t.Run("explicit from", func(t *testing.T) {
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		combines.EXPECT().ListUpcoming(gomock.Any(), "org-1", from).Return([]*domain.CombineEvent{}, nil)

		rec := serve(handler, http.MethodGet, "/api/combines.list?organization_id=org-1&from=2026-06-01T00:00:00Z", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad from", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/api/combines.list?organization_id=org-1&from=june", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCombineHandler_Events(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	combines := mocks.NewMockCombineService(ctrl)
	handler := NewCombineHandler(combines, logger.NewMockLogger(t))

	t.Run("get", func(t *testing.T) {
		combines.EXPECT().GetEvent(gomock.Any(), "org-1", "cb1").Return(&domain.CombineEvent{ID: "cb1", City: "Dallas"}, nil)

		rec := serve(handler, http.MethodGet, "/api/combines.get?organization_id=org-1&id=cb1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Dallas", decodeBody(t, rec)["combine"].(map[string]interface{})["city"])
	})

	t.Run("create deadline after event", func(t *testing.T) {
		combines.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(domain.NewValidationError("registration_deadline must be before event_date"))

		rec := serve(handler, http.MethodPost, "/api/combines.create", domain.CombineEvent{OrganizationID: "org-1", Name: "Spring Combine"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update requires id", func(t *testing.T) {
		rec := serve(handler, http.MethodPost, "/api/combines.update", domain.CombineEvent{OrganizationID: "org-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		combines.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).Return(nil)

		rec := serve(handler, http.MethodPost, "/api/combines.update", domain.CombineEvent{ID: "cb1", OrganizationID: "org-1"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		combines.EXPECT().DeleteEvent(gomock.Any(), "org-1", "cb1").Return(nil)

		rec := serve(handler, http.MethodPost, "/api/combines.delete", orgIDRequest{OrganizationID: "org-1", ID: "cb1"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCombineHandler_RegistrationAndResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	combines := mocks.NewMockCombineService(ctrl)
	handler := NewCombineHandler(combines, logger.NewMockLogger(t))

	req := domain.CombineRegisterRequest{OrganizationID: "org-1", CombineEventID: "cb1", AthleteID: "ath-1"}

	tests := []struct {
		name       string
		result     *domain.CombineRegistrationResult
		err        error
		wantStatus int
	}{
		{
			name: "paid event returns checkout",
			result: &domain.CombineRegistrationResult{
				Registration: &domain.CombineRegistration{ID: "cr1", Status: domain.CombinePendingPayment},
				CheckoutURL:  "https://checkout.stripe.com/c/pay/cs_2",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "deadline passed",
			err:        domain.NewValidationError("registration is closed"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate",
			err:        domain.NewConflict("combine_registration", "athlete already registered"),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combines.EXPECT().RegisterAthlete(gomock.Any(), req).Return(tt.result, tt.err)

			rec := serve(handler, http.MethodPost, "/api/combines.register", req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.result != nil {
				assert.Equal(t, tt.result.CheckoutURL, decodeBody(t, rec)["checkout_url"])
			}
		})
	}

	t.Run("registrations", func(t *testing.T) {
		combines.EXPECT().ListRegistrations(gomock.Any(), "org-1", "cb1").Return([]*domain.CombineRegistration{{ID: "cr1"}}, nil)

		rec := serve(handler, http.MethodGet, "/api/combines.registrations?organization_id=org-1&combine_event_id=cb1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["registrations"], 1)
	})

	t.Run("record result", func(t *testing.T) {
		dash := 4.52
		combines.EXPECT().RecordResult(gomock.Any(), "org-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, result *domain.CombineResult) error {
				require.NotNil(t, result.FortyYardDash)
				assert.Equal(t, dash, *result.FortyYardDash)
				result.ID = "res-1"
				return nil
			})

		rec := serve(handler, http.MethodPost, "/api/combines.recordResult", domain.CombineResult{
			OrganizationID: "org-1",
			CombineEventID: "cb1",
			AthleteID:      "ath-1",
			FortyYardDash:  &dash,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "res-1", decodeBody(t, rec)["result"].(map[string]interface{})["id"])
	})

	t.Run("results", func(t *testing.T) {
		combines.EXPECT().ListResults(gomock.Any(), "org-1", "cb1").Return([]*domain.CombineResult{}, nil)

		rec := serve(handler, http.MethodGet, "/api/combines.results?organization_id=org-1&combine_event_id=cb1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
