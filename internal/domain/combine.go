package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_combine_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain CombineRepository
//go:generate mockgen -destination mocks/mock_combine_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain CombineService

type CombineStatus string

const (
	CombineScheduled CombineStatus = "scheduled"
	CombineOpen      CombineStatus = "open"
	CombineClosed    CombineStatus = "closed"
	CombineCompleted CombineStatus = "completed"
)

type CombineEvent struct {
	ID                   string        `json:"id"`
	OrganizationID       string        `json:"organization_id"`
	Name                 string        `json:"name"`
	City                 string        `json:"city"`
	State                string        `json:"state"`
	Venue                string        `json:"venue,omitempty"`
	EventDate            time.Time     `json:"event_date"`
	RegistrationDeadline time.Time     `json:"registration_deadline"`
	Capacity             int           `json:"capacity"`
	PriceCents           int64         `json:"price_cents"`
	Sports               []string      `json:"sports"`
	Status               CombineStatus `json:"status"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (e *CombineEvent) Validate() error {
	e.Name = strings.TrimSpace(e.Name)
	e.City = strings.TrimSpace(e.City)
	e.State = strings.ToUpper(strings.TrimSpace(e.State))
	if e.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if e.Name == "" {
		return NewValidationError("combine name is required")
	}
	if e.City == "" || e.State == "" {
		return NewValidationError("city and state are required")
	}
	if e.EventDate.IsZero() {
		return NewValidationError("event_date is required")
	}
	if e.RegistrationDeadline.IsZero() {
		e.RegistrationDeadline = e.EventDate
	}
	if e.RegistrationDeadline.After(e.EventDate) {
		return NewValidationError("registration deadline must not be after the event date")
	}
	if e.Capacity < 1 {
		return NewValidationError("capacity must be at least 1")
	}
	if e.PriceCents < 0 {
		return NewValidationError("price cannot be negative")
	}
	for i, s := range e.Sports {
		e.Sports[i] = strings.ToLower(strings.TrimSpace(s))
		if !IsSupportedSport(e.Sports[i]) {
			return NewValidationError("unsupported sport: " + s)
		}
	}
	if e.Status == "" {
		e.Status = CombineScheduled
	}
	switch e.Status {
	case CombineScheduled, CombineOpen, CombineClosed, CombineCompleted:
	default:
		return NewValidationError("invalid combine status: " + string(e.Status))
	}
	return nil
}

// AcceptsRegistrations is true while the event is open and the deadline has not passed
func (e *CombineEvent) AcceptsRegistrations(now time.Time) bool {
	return e.Status == CombineOpen && !now.After(e.RegistrationDeadline)
}

// ResultsOpen is true from the event's calendar day onward
func (e *CombineEvent) ResultsOpen(now time.Time) bool {
	y, m, d := e.EventDate.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !now.UTC().Before(day)
}

type CombineRegistrationStatus string

const (
	CombinePendingPayment CombineRegistrationStatus = "pending_payment"
	CombineRegistered     CombineRegistrationStatus = "registered"
	CombineCancelled      CombineRegistrationStatus = "cancelled"
	CombineAttended       CombineRegistrationStatus = "attended"
)

type CombineRegistration struct {
	ID             string                    `json:"id"`
	CombineEventID string                    `json:"combine_event_id"`
	OrganizationID string                    `json:"organization_id"`
	AthleteID      string                    `json:"athlete_id"`
	Status         CombineRegistrationStatus `json:"status"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// CombineResult holds measured drills; nil means the drill was not run
type CombineResult struct {
	ID              string    `json:"id"`
	CombineEventID  string    `json:"combine_event_id"`
	OrganizationID  string    `json:"organization_id"`
	AthleteID       string    `json:"athlete_id"`
	FortyYardDash   *float64  `json:"forty_yard_dash,omitempty"`
	VerticalInches  *float64  `json:"vertical_inches,omitempty"`
	BroadJumpInches *float64  `json:"broad_jump_inches,omitempty"`
	ShuttleSeconds  *float64  `json:"shuttle_seconds,omitempty"`
	BenchReps       *int      `json:"bench_reps,omitempty"`
	RecordedAt      time.Time `json:"recorded_at"`
}

func (r *CombineResult) Validate() error {
	if r.CombineEventID == "" || r.AthleteID == "" {
		return NewValidationError("combine_event_id and athlete_id are required")
	}
	if r.FortyYardDash == nil && r.VerticalInches == nil && r.BroadJumpInches == nil &&
		r.ShuttleSeconds == nil && r.BenchReps == nil {
		return NewValidationError("at least one measurement is required")
	}
	if r.FortyYardDash != nil && (*r.FortyYardDash < 3.5 || *r.FortyYardDash > 10) {
		return NewValidationError("forty yard dash must be between 3.5 and 10 seconds")
	}
	if r.VerticalInches != nil && (*r.VerticalInches <= 0 || *r.VerticalInches > 60) {
		return NewValidationError("vertical must be between 0 and 60 inches")
	}
	if r.BroadJumpInches != nil && (*r.BroadJumpInches <= 0 || *r.BroadJumpInches > 180) {
		return NewValidationError("broad jump must be between 0 and 180 inches")
	}
	if r.ShuttleSeconds != nil && (*r.ShuttleSeconds < 3 || *r.ShuttleSeconds > 10) {
		return NewValidationError("shuttle must be between 3 and 10 seconds")
	}
	if r.BenchReps != nil && (*r.BenchReps < 0 || *r.BenchReps > 100) {
		return NewValidationError("bench reps must be between 0 and 100")
	}
	return nil
}

type CombineRegisterRequest struct {
	OrganizationID string `json:"organization_id"`
	CombineEventID string `json:"combine_event_id"`
	AthleteID      string `json:"athlete_id"`
	Email          string `json:"email,omitempty"`
}

type CombineRegistrationResult struct {
	Registration *CombineRegistration `json:"registration"`
	CheckoutURL  string               `json:"checkout_url,omitempty"`
}

type CombineService interface {
	CreateEvent(ctx context.Context, event *CombineEvent) error
	GetEvent(ctx context.Context, organizationID, id string) (*CombineEvent, error)
	UpdateEvent(ctx context.Context, event *CombineEvent) error
	DeleteEvent(ctx context.Context, organizationID, id string) error
	ListUpcoming(ctx context.Context, organizationID string, from time.Time) ([]*CombineEvent, error)
	RegisterAthlete(ctx context.Context, req CombineRegisterRequest) (*CombineRegistrationResult, error)
	ListRegistrations(ctx context.Context, organizationID, eventID string) ([]*CombineRegistration, error)
	RecordResult(ctx context.Context, organizationID string, result *CombineResult) error
	ListResults(ctx context.Context, organizationID, eventID string) ([]*CombineResult, error)
	// ConfirmPaidRegistration is called by the payment webhook
	ConfirmPaidRegistration(ctx context.Context, registrationID string) error
}

type CombineRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	Create(ctx context.Context, event *CombineEvent) error
	GetByID(ctx context.Context, organizationID, id string) (*CombineEvent, error)
	LockEventTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*CombineEvent, error)
	Update(ctx context.Context, event *CombineEvent) error
	Delete(ctx context.Context, organizationID, id string) error
	ListUpcoming(ctx context.Context, organizationID string, from time.Time) ([]*CombineEvent, error)
	CountActiveRegistrationsTx(ctx context.Context, tx *sql.Tx, eventID string) (int, error)
	GetRegistrationTx(ctx context.Context, tx *sql.Tx, eventID, athleteID string) (*CombineRegistration, error)
	CreateRegistrationTx(ctx context.Context, tx *sql.Tx, reg *CombineRegistration) error
	UpdateRegistrationStatusTx(ctx context.Context, tx *sql.Tx, id string, status CombineRegistrationStatus) error
	GetRegistrationByID(ctx context.Context, id string) (*CombineRegistration, error)
	UpdateRegistrationStatus(ctx context.Context, id string, status CombineRegistrationStatus) error
	ListRegistrations(ctx context.Context, organizationID, eventID string) ([]*CombineRegistration, error)
	InsertResultTx(ctx context.Context, tx *sql.Tx, result *CombineResult) error
	ListResults(ctx context.Context, organizationID, eventID string) ([]*CombineResult, error)
}
