package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/cache"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

// DashboardService aggregates organization metrics for owners and admins
type DashboardService struct {
	athletes    domain.AthleteRepository
	analyses    domain.VideoAnalysisRepository
	academy     domain.AcademyRepository
	camps       domain.CampRepository
	payments    domain.PaymentRepository
	leads       domain.LeadRepository
	prospects   domain.ProspectRepository
	events      domain.EventRepository
	cache       cache.Cache
	authService domain.AuthService
	logger      logger.Logger
	tracer      tracing.Tracer
	now         func() time.Time
}

type DashboardServiceConfig struct {
	AthleteRepository       domain.AthleteRepository
	VideoAnalysisRepository domain.VideoAnalysisRepository
	AcademyRepository       domain.AcademyRepository
	CampRepository          domain.CampRepository
	PaymentRepository       domain.PaymentRepository
	LeadRepository          domain.LeadRepository
	ProspectRepository      domain.ProspectRepository
	EventRepository         domain.EventRepository
	Cache                   cache.Cache
	AuthService             domain.AuthService
	Logger                  logger.Logger
	Tracer                  tracing.Tracer
}

func NewDashboardService(cfg DashboardServiceConfig) *DashboardService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	return &DashboardService{
		athletes:    cfg.AthleteRepository,
		analyses:    cfg.VideoAnalysisRepository,
		academy:     cfg.AcademyRepository,
		camps:       cfg.CampRepository,
		payments:    cfg.PaymentRepository,
		leads:       cfg.LeadRepository,
		prospects:   cfg.ProspectRepository,
		events:      cfg.EventRepository,
		cache:       cfg.Cache,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		tracer:      tracer,
		now:         time.Now,
	}
}

var _ domain.DashboardService = (*DashboardService)(nil)

func (s *DashboardService) authorize(ctx context.Context, organizationID string) (context.Context, error) {
	ctx, _, member, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAdmin, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if member.Role != domain.RoleOwner && member.Role != domain.RoleAdmin {
		return nil, domain.NewPermissionError(domain.ResourceAdmin, domain.ActionRead, "dashboard requires owner or admin")
	}
	return ctx, nil
}

func (s *DashboardService) GetDashboard(ctx context.Context, organizationID string) (*domain.Dashboard, error) {
	ctx, err := s.authorize(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	v, err := s.cache.GetOrSet(domain.DashboardCacheKey(organizationID), domain.DashboardTTL, func() (interface{}, error) {
		return s.compute(ctx, organizationID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dashboard), nil
}

func (s *DashboardService) InvalidateDashboard(ctx context.Context, organizationID string) error {
	if _, err := s.authorize(ctx, organizationID); err != nil {
		return err
	}
	s.cache.Delete(domain.DashboardCacheKey(organizationID))
	return nil
}

// compute runs every aggregate query in parallel. Any failure fails the dashboard.
func (s *DashboardService) compute(ctx context.Context, organizationID string) (*domain.Dashboard, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "DashboardService", "compute")
	defer span.End()

	now := s.now().UTC()
	d := &domain.Dashboard{OrganizationID: organizationID, GeneratedAt: now}
	var top []*domain.AthleteProfile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.AthleteCount, d.AverageGAR, err = s.athletes.GARStats(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		d.RecentAnalyses, err = s.analyses.CountSince(gctx, organizationID, now.Add(-domain.DashboardWindow))
		return err
	})
	g.Go(func() (err error) {
		d.ActiveEnrollments, err = s.academy.CountActiveEnrollments(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		d.PublishedCourses, err = s.academy.CountPublishedCourses(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		d.ConfirmedCampSignups, err = s.camps.CountConfirmedRegistrations(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		d.RevenueCents, err = s.payments.SumPaid(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		d.LeadsByStatus, err = s.leads.CountByStatus(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		d.ProspectsByStatus, err = s.prospects.CountByStatus(gctx, organizationID)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.athletes.TopByGAR(gctx, organizationID, domain.DashboardTopAthletes)
		return err
	})
	g.Go(func() (err error) {
		d.UpcomingEvents, err = s.events.CountUpcoming(gctx, organizationID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		s.logger.WithField("organization_id", organizationID).Error(fmt.Sprintf("Failed to compute dashboard: %v", err))
		return nil, err
	}

	if d.LeadsByStatus == nil {
		d.LeadsByStatus = map[string]int{}
	}
	if d.ProspectsByStatus == nil {
		d.ProspectsByStatus = map[string]int{}
	}
	d.TopAthletes = make([]domain.TopAthlete, 0, len(top))
	for _, a := range top {
		entry := domain.TopAthlete{AthleteID: a.ID, Name: a.FullName(), Sport: a.Sport}
		if a.GARScore != nil {
			entry.GARScore = *a.GARScore
		}
		d.TopAthletes = append(d.TopAthletes, entry)
	}
	return d, nil
}

func (s *DashboardService) invalidateOnEvent(_ context.Context, payload domain.EventPayload) {
	if payload.OrganizationID == "" {
		return
	}
	s.cache.Delete(domain.DashboardCacheKey(payload.OrganizationID))
}

// RegisterWithEventBus drops the cached dashboard when its numbers change
func (s *DashboardService) RegisterWithEventBus(eventBus domain.EventBus) {
	eventBus.Subscribe(domain.EventAnalysisCompleted, s.invalidateOnEvent)
	eventBus.Subscribe(domain.EventCampaignCompleted, s.invalidateOnEvent)
}
