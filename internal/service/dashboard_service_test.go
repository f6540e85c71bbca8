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
	"github.com/Go4ItSports/go4it/pkg/cache"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type dashboardDeps struct {
	athletes  *mocks.MockAthleteRepository
	analyses  *mocks.MockVideoAnalysisRepository
	academy   *mocks.MockAcademyRepository
	camps     *mocks.MockCampRepository
	payments  *mocks.MockPaymentRepository
	leads     *mocks.MockLeadRepository
	prospects *mocks.MockProspectRepository
	events    *mocks.MockEventRepository
	auth      *mocks.MockAuthService
}

var dashboardNow = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func setupDashboardTest(t *testing.T) (*dashboardDeps, *DashboardService) {
	ctrl := gomock.NewController(t)
	d := &dashboardDeps{
		athletes:  mocks.NewMockAthleteRepository(ctrl),
		analyses:  mocks.NewMockVideoAnalysisRepository(ctrl),
		academy:   mocks.NewMockAcademyRepository(ctrl),
		camps:     mocks.NewMockCampRepository(ctrl),
		payments:  mocks.NewMockPaymentRepository(ctrl),
		leads:     mocks.NewMockLeadRepository(ctrl),
		prospects: mocks.NewMockProspectRepository(ctrl),
		events:    mocks.NewMockEventRepository(ctrl),
		auth:      mocks.NewMockAuthService(ctrl),
	}
	c := cache.NewInMemoryCache(0)
	t.Cleanup(c.Stop)
	svc := NewDashboardService(DashboardServiceConfig{
		AthleteRepository:       d.athletes,
		VideoAnalysisRepository: d.analyses,
		AcademyRepository:       d.academy,
		CampRepository:          d.camps,
		PaymentRepository:       d.payments,
		LeadRepository:          d.leads,
		ProspectRepository:      d.prospects,
		EventRepository:         d.events,
		Cache:                   c,
		AuthService:             d.auth,
		Logger:                  logger.NewMockLogger(t),
	})
	svc.now = func() time.Time { return dashboardNow }
	return d, svc
}

func (d *dashboardDeps) expectAggregates(times int) {
	score := 88
	d.athletes.EXPECT().GARStats(gomock.Any(), "org-1").Return(12, 71.5, nil).Times(times)
	d.analyses.EXPECT().CountSince(gomock.Any(), "org-1", dashboardNow.Add(-domain.DashboardWindow)).Return(4, nil).Times(times)
	d.academy.EXPECT().CountActiveEnrollments(gomock.Any(), "org-1").Return(30, nil).Times(times)
	d.academy.EXPECT().CountPublishedCourses(gomock.Any(), "org-1").Return(3, nil).Times(times)
	d.camps.EXPECT().CountConfirmedRegistrations(gomock.Any(), "org-1").Return(9, nil).Times(times)
	d.payments.EXPECT().SumPaid(gomock.Any(), "org-1").Return(int64(125000), nil).Times(times)
	d.leads.EXPECT().CountByStatus(gomock.Any(), "org-1").Return(map[string]int{"new": 2}, nil).Times(times)
	d.prospects.EXPECT().CountByStatus(gomock.Any(), "org-1").Return(nil, nil).Times(times)
	d.athletes.EXPECT().TopByGAR(gomock.Any(), "org-1", domain.DashboardTopAthletes).Return([]*domain.AthleteProfile{
		{ID: "ath-1", FirstName: "Jordan", LastName: "Reyes", Sport: "basketball", GARScore: &score},
	}, nil).Times(times)
	d.events.EXPECT().CountUpcoming(gomock.Any(), "org-1", dashboardNow).Return(2, nil).Times(times)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	admin := &domain.User{ID: "admin-1"}

	t.Run("aggregates and caches", func(t *testing.T) {
		d, svc := setupDashboardTest(t)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin).Times(2)
		d.expectAggregates(1)

		dash, err := svc.GetDashboard(context.Background(), "org-1")
		require.NoError(t, err)
		assert.Equal(t, 12, dash.AthleteCount)
		assert.Equal(t, 71.5, dash.AverageGAR)
		assert.Equal(t, int64(125000), dash.RevenueCents)
		assert.Equal(t, map[string]int{}, dash.ProspectsByStatus)
		require.Len(t, dash.TopAthletes, 1)
		assert.Equal(t, domain.TopAthlete{AthleteID: "ath-1", Name: "Jordan Reyes", Sport: "basketball", GARScore: 88}, dash.TopAthletes[0])

		again, err := svc.GetDashboard(context.Background(), "org-1")
		require.NoError(t, err)
		assert.Same(t, dash, again)
	})

	t.Run("invalidate forces recompute", func(t *testing.T) {
		d, svc := setupDashboardTest(t)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleOwner).Times(3)
		d.expectAggregates(2)

		_, err := svc.GetDashboard(context.Background(), "org-1")
		require.NoError(t, err)
		require.NoError(t, svc.InvalidateDashboard(context.Background(), "org-1"))
		_, err = svc.GetDashboard(context.Background(), "org-1")
		require.NoError(t, err)
	})

	t.Run("coach denied", func(t *testing.T) {
		d, svc := setupDashboardTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "coach-1"}, domain.RoleCoach)
		_, err := svc.GetDashboard(context.Background(), "org-1")
		var permErr *domain.PermissionError
		assert.True(t, errors.As(err, &permErr))
	})

	t.Run("query failure is not cached", func(t *testing.T) {
		d, svc := setupDashboardTest(t)
		expectAuthorize(d.auth, "org-1", admin, domain.RoleAdmin)
		d.athletes.EXPECT().GARStats(gomock.Any(), "org-1").Return(0, 0.0, errors.New("timeout"))
		d.analyses.EXPECT().CountSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		d.academy.EXPECT().CountActiveEnrollments(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		d.academy.EXPECT().CountPublishedCourses(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		d.camps.EXPECT().CountConfirmedRegistrations(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		d.payments.EXPECT().SumPaid(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
		d.leads.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		d.prospects.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		d.athletes.EXPECT().TopByGAR(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		d.events.EXPECT().CountUpcoming(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

		_, err := svc.GetDashboard(context.Background(), "org-1")
		assert.EqualError(t, err, "timeout")
		_, cached := svc.cache.Get(domain.DashboardCacheKey("org-1"))
		assert.False(t, cached)
	})
}

func TestDashboardService_InvalidateOnEvent(t *testing.T) {
	_, svc := setupDashboardTest(t)
	svc.cache.Set(domain.DashboardCacheKey("org-1"), &domain.Dashboard{}, time.Minute)

	svc.invalidateOnEvent(context.Background(), domain.EventPayload{Type: domain.EventAnalysisCompleted, OrganizationID: "org-1"})
	_, ok := svc.cache.Get(domain.DashboardCacheKey("org-1"))
	assert.False(t, ok)
}
