package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_dashboard_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain DashboardService

const (
	DashboardTTL         = 60 * time.Second
	DashboardTopAthletes = 5
	DashboardWindow      = 30 * 24 * time.Hour
)

type TopAthlete struct {
	AthleteID string `json:"athlete_id"`
	Name      string `json:"name"`
	Sport     string `json:"sport"`
	GARScore  int    `json:"gar_score"`
}

// Dashboard is the organization overview for admins
type Dashboard struct {
	OrganizationID       string         `json:"organization_id"`
	AthleteCount         int            `json:"athlete_count"`
	AverageGAR           float64        `json:"average_gar"`
	RecentAnalyses       int            `json:"recent_analyses"`
	ActiveEnrollments    int            `json:"active_enrollments"`
	PublishedCourses     int            `json:"published_courses"`
	ConfirmedCampSignups int            `json:"confirmed_camp_registrations"`
	RevenueCents         int64          `json:"revenue_cents"`
	LeadsByStatus        map[string]int `json:"leads_by_status"`
	ProspectsByStatus    map[string]int `json:"prospects_by_status"`
	TopAthletes          []TopAthlete   `json:"top_athletes"`
	UpcomingEvents       int            `json:"upcoming_events"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

func DashboardCacheKey(organizationID string) string {
	return "dashboard:" + organizationID
}

type DashboardService interface {
	GetDashboard(ctx context.Context, organizationID string) (*Dashboard, error)
	InvalidateDashboard(ctx context.Context, organizationID string) error
}
