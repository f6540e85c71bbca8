package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_camp_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain CampRepository
//go:generate mockgen -destination mocks/mock_camp_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain CampService

type CampStatus string

const (
	CampStatusDraft     CampStatus = "draft"
	CampStatusOpen      CampStatus = "open"
	CampStatusClosed    CampStatus = "closed"
	CampStatusCompleted CampStatus = "completed"
)

type Camp struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Sport          string     `json:"sport"`
	Location       string     `json:"location"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	PriceCents     int64      `json:"price_cents"`
	Capacity       int        `json:"capacity"`
	Status         CampStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Camp) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Sport = strings.ToLower(strings.TrimSpace(c.Sport))
	if c.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if c.Name == "" {
		return NewValidationError("camp name is required")
	}
	if !IsSupportedSport(c.Sport) {
		return NewValidationError("unsupported sport: " + c.Sport)
	}
	if strings.TrimSpace(c.Location) == "" {
		return NewValidationError("location is required")
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return NewValidationError("start and end dates are required")
	}
	if c.EndDate.Before(c.StartDate) {
		return NewValidationError("end date must not be before start date")
	}
	if c.PriceCents < 0 {
		return NewValidationError("price cannot be negative")
	}
	if c.Capacity < 1 {
		return NewValidationError("capacity must be at least 1")
	}
	if c.Status == "" {
		c.Status = CampStatusDraft
	}
	switch c.Status {
	case CampStatusDraft, CampStatusOpen, CampStatusClosed, CampStatusCompleted:
	default:
		return NewValidationError("invalid camp status: " + string(c.Status))
	}
	return nil
}

type RegistrationStatus string

const (
	RegistrationPendingPayment RegistrationStatus = "pending_payment"
	RegistrationConfirmed      RegistrationStatus = "confirmed"
	RegistrationCancelled      RegistrationStatus = "cancelled"
)

type CampRegistration struct {
	ID                string             `json:"id"`
	CampID            string             `json:"camp_id"`
	OrganizationID    string             `json:"organization_id"`
	AthleteID         *string            `json:"athlete_id,omitempty"`
	ParticipantName   string             `json:"participant_name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone,omitempty"`
	AmountCents       int64              `json:"amount_cents"`
	DiscountCents     int64              `json:"discount_cents"`
	TotalCents        int64              `json:"total_cents"`
	CouponCode        string             `json:"coupon_code,omitempty"`
	Status            RegistrationStatus `json:"status"`
	CheckoutSessionID string             `json:"checkout_session_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// CampRegistrationRequest is submitted by the public registration form
type CampRegistrationRequest struct {
	OrganizationID  string  `json:"organization_id"`
	CampID          string  `json:"camp_id"`
	AthleteID       *string `json:"athlete_id,omitempty"`
	ParticipantName string  `json:"participant_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	CouponCode      string  `json:"coupon_code,omitempty"`
}

func (r *CampRegistrationRequest) Validate() error {
	r.ParticipantName = strings.TrimSpace(r.ParticipantName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.CouponCode = NormalizeCouponCode(r.CouponCode)
	if r.OrganizationID == "" || r.CampID == "" {
		return NewValidationError("organization_id and camp_id are required")
	}
	if r.ParticipantName == "" {
		return NewValidationError("participant name is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("invalid email format")
	}
	return nil
}

type CampRegistrationResult struct {
	Registration *CampRegistration `json:"registration"`
	CheckoutURL  string            `json:"checkout_url,omitempty"`
}

type CampService interface {
	CreateCamp(ctx context.Context, camp *Camp) error
	GetCamp(ctx context.Context, organizationID, id string) (*Camp, error)
	UpdateCamp(ctx context.Context, camp *Camp) error
	DeleteCamp(ctx context.Context, organizationID, id string) error
	ListCamps(ctx context.Context, organizationID string, status CampStatus) ([]*Camp, error)
	// Register is public and needs no session
	Register(ctx context.Context, req CampRegistrationRequest) (*CampRegistrationResult, error)
	CancelRegistration(ctx context.Context, organizationID, registrationID string) (*CampRegistration, error)
	ListRegistrations(ctx context.Context, organizationID, campID string) ([]*CampRegistration, error)
	// ConfirmPaidRegistration is called by the payment webhook
	ConfirmPaidRegistration(ctx context.Context, registrationID string) error
}

type CampRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	Create(ctx context.Context, camp *Camp) error
	GetByID(ctx context.Context, organizationID, id string) (*Camp, error)
	LockCampTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*Camp, error)
	Update(ctx context.Context, camp *Camp) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string, status CampStatus) ([]*Camp, error)
	CountActiveRegistrationsTx(ctx context.Context, tx *sql.Tx, campID string) (int, error)
	CreateRegistrationTx(ctx context.Context, tx *sql.Tx, reg *CampRegistration) error
	GetRegistration(ctx context.Context, id string) (*CampRegistration, error)
	UpdateRegistration(ctx context.Context, reg *CampRegistration) error
	UpdateRegistrationTx(ctx context.Context, tx *sql.Tx, reg *CampRegistration) error
	ListRegistrations(ctx context.Context, organizationID, campID string) ([]*CampRegistration, error)
	CountConfirmedRegistrations(ctx context.Context, organizationID string) (int, error)
}
