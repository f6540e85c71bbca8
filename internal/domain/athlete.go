package domain

import (
	"context"
	"database/sql"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_athlete_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain AthleteRepository
//go:generate mockgen -destination mocks/mock_athlete_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain AthleteService

// SupportedSports is the closed list of sports the platform scores and recruits for
var SupportedSports = []string{
	"football", "basketball", "baseball", "soccer", "volleyball",
	"track", "softball", "lacrosse", "hockey", "wrestling",
}

func IsSupportedSport(sport string) bool {
	for _, s := range SupportedSports {
		if s == sport {
			return true
		}
	}
	return false
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// NormalizePage clamps limit and offset to sane values
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// AthleteProfile is the recruiting profile of one athlete
type AthleteProfile struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         *string   `json:"user_id,omitempty"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email,omitempty"`
	Sport          string    `json:"sport"`
	Position       string    `json:"position,omitempty"`
	GraduationYear int       `json:"graduation_year,omitempty"`
	School         string    `json:"school,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	HeightInches   int       `json:"height_inches,omitempty"`
	WeightLbs      int       `json:"weight_lbs,omitempty"`
	GPA            float64   `json:"gpa,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	GARScore       *int      `json:"gar_score,omitempty"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName joins first and last name
func (a *AthleteProfile) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Validate normalizes and checks the profile. Zero numeric fields mean unknown.
func (a *AthleteProfile) Validate() error {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Sport = strings.ToLower(strings.TrimSpace(a.Sport))
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.State = strings.ToUpper(strings.TrimSpace(a.State))

	if a.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if a.FirstName == "" {
		return NewValidationError("first name is required")
	}
	if a.LastName == "" {
		return NewValidationError("last name is required")
	}
	if !IsSupportedSport(a.Sport) {
		return NewValidationError("unsupported sport: " + a.Sport)
	}
	if a.GraduationYear != 0 && (a.GraduationYear < 2000 || a.GraduationYear > 2100) {
		return NewValidationError("graduation year must be between 2000 and 2100")
	}
	if a.GPA < 0 || a.GPA > 5 {
		return NewValidationError("gpa must be between 0 and 5")
	}
	if a.HeightInches != 0 && (a.HeightInches < 36 || a.HeightInches > 96) {
		return NewValidationError("height must be between 36 and 96 inches")
	}
	if a.WeightLbs != 0 && (a.WeightLbs < 50 || a.WeightLbs > 400) {
		return NewValidationError("weight must be between 50 and 400 lbs")
	}
	if a.Email != "" && !govalidator.IsEmail(a.Email) {
		return NewValidationError("invalid email format")
	}
	if len(a.Bio) > 5000 {
		return NewValidationError("bio must be at most 5000 characters")
	}
	return nil
}

// AthleteFilter narrows ListAthletes
type AthleteFilter struct {
	OrganizationID string `json:"organization_id"`
	Sport          string `json:"sport,omitempty"`
	Position       string `json:"position,omitempty"`
	GraduationYear int    `json:"graduation_year,omitempty"`
	State          string `json:"state,omitempty"`
	MinGAR         int    `json:"min_gar,omitempty"`
	Search         string `json:"search,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

func (f *AthleteFilter) FromURLParams(q url.Values) error {
	f.OrganizationID = q.Get("organization_id")
	if f.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	f.Sport = strings.ToLower(q.Get("sport"))
	f.Position = q.Get("position")
	f.State = strings.ToUpper(q.Get("state"))
	f.Search = strings.TrimSpace(q.Get("search"))

	var err error
	if f.GraduationYear, err = intParam(q, "graduation_year"); err != nil {
		return err
	}
	if f.MinGAR, err = intParam(q, "min_gar"); err != nil {
		return err
	}
	if f.Limit, err = intParam(q, "limit"); err != nil {
		return err
	}
	if f.Offset, err = intParam(q, "offset"); err != nil {
		return err
	}
	f.Limit, f.Offset = NormalizePage(f.Limit, f.Offset)
	return nil
}

func intParam(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError(key + " must be an integer")
	}
	return v, nil
}

type AthleteListResponse struct {
	Athletes   []*AthleteProfile `json:"athletes"`
	TotalCount int               `json:"total_count"`
}

type AthleteService interface {
	CreateAthlete(ctx context.Context, athlete *AthleteProfile) error
	GetAthlete(ctx context.Context, organizationID, id string) (*AthleteProfile, error)
	UpdateAthlete(ctx context.Context, athlete *AthleteProfile) error
	DeleteAthlete(ctx context.Context, organizationID, id string) error
	ListAthletes(ctx context.Context, filter AthleteFilter) (*AthleteListResponse, error)
}

type AthleteRepository interface {
	Create(ctx context.Context, athlete *AthleteProfile) error
	GetByID(ctx context.Context, organizationID, id string) (*AthleteProfile, error)
	GetByIDTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*AthleteProfile, error)
	Update(ctx context.Context, athlete *AthleteProfile) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, filter AthleteFilter) ([]*AthleteProfile, int, error)
	UpdateGARScore(ctx context.Context, organizationID, id string, score int) error
	// TopByGAR returns the highest scored athletes, unscored ones excluded
	TopByGAR(ctx context.Context, organizationID string, limit int) ([]*AthleteProfile, error)
	// GARStats returns the athlete count and the average GAR of scored athletes
	GARStats(ctx context.Context, organizationID string) (int, float64, error)
}
