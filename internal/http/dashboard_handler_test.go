package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboards := mocks.NewMockDashboardService(ctrl)
	handler := NewDashboardHandler(dashboards, logger.NewMockLogger(t))

	t.Run("coach is forbidden", func(t *testing.T) {
		dashboards.EXPECT().GetDashboard(gomock.Any(), "org-1").
			Return(nil, domain.NewPermissionError(domain.ResourceAdmin, domain.ActionRead, "admins only"))

		rec := serve(handler, http.MethodGet, "/api/admin.dashboard?organization_id=org-1", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("refresh invalidates then reloads", func(t *testing.T) {
		gomock.InOrder(
			dashboards.EXPECT().InvalidateDashboard(gomock.Any(), "org-1").Return(nil),
			dashboards.EXPECT().GetDashboard(gomock.Any(), "org-1").
				Return(&domain.Dashboard{OrganizationID: "org-1", AthleteCount: 12}, nil),
		)

		rec := serve(handler, http.MethodPost, "/api/admin.refreshDashboard", orgRequest{OrganizationID: "org-1"})

		assert.Equal(t, http.StatusOK, rec.Code)
		dash := decodeBody(t, rec)["dashboard"].(map[string]interface{})
		assert.Equal(t, float64(12), dash["athlete_count"])
	})
}

func TestSocialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	social := mocks.NewMockSocialService(ctrl)
	handler := NewSocialHandler(social, logger.NewMockLogger(t))

	t.Run("publish already claimed", func(t *testing.T) {
		social.EXPECT().PublishNow(gomock.Any(), "org-1", "post-1").
			Return(nil, domain.NewConflict("social post", "post is already being published"))

		rec := serve(handler, http.MethodPost, "/api/social.publish", orgIDRequest{OrganizationID: "org-1", ID: "post-1"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("schedule", func(t *testing.T) {
		at := time.Date(2030, 1, 2, 15, 0, 0, 0, time.UTC)
		req := domain.SchedulePostRequest{OrganizationID: "org-1", PostID: "post-1", ScheduledAt: at}
		social.EXPECT().SchedulePost(gomock.Any(), req).
			Return(&domain.SocialPost{ID: "post-1", Status: domain.PostScheduled}, nil)

		rec := serve(handler, http.MethodPost, "/api/social.schedule", req)

		assert.Equal(t, http.StatusOK, rec.Code)
		post := decodeBody(t, rec)["post"].(map[string]interface{})
		assert.Equal(t, "scheduled", post["status"])
	})

	t.Run("list posts by status", func(t *testing.T) {
		social.EXPECT().ListPosts(gomock.Any(), "org-1", domain.PostFailed).Return([]*domain.SocialPost{}, nil)

		rec := serve(handler, http.MethodGet, "/api/social.posts?organization_id=org-1&status=failed", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
