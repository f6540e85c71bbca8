package domain

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_lead_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain LeadRepository
//go:generate mockgen -destination mocks/mock_event_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain EventRepository
//go:generate mockgen -destination mocks/mock_lead_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain LeadService
//go:generate mockgen -destination mocks/mock_event_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain EventService

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost:
		return true
	}
	return false
}

// Lead is an inbound contact, unique by email within an organization
type Lead struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Source         string     `json:"source,omitempty"`
	Status         LeadStatus `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (l *Lead) Validate() error {
	l.Name = strings.TrimSpace(l.Name)
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	if l.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if l.Name == "" {
		return NewValidationError("lead name is required")
	}
	if !govalidator.IsEmail(l.Email) {
		return NewValidationError("invalid email format")
	}
	if l.Status == "" {
		l.Status = LeadNew
	}
	if !l.Status.IsValid() {
		return NewValidationError("invalid lead status: " + string(l.Status))
	}
	if l.Source == "" {
		l.Source = "website"
	}
	return nil
}

type EventKind string

const (
	EventKindInfoSession EventKind = "info_session"
	EventKindTryout      EventKind = "tryout"
	EventKindShowcase    EventKind = "showcase"
	EventKindCampDay     EventKind = "camp_day"
)

// Event is an in person gathering leads can RSVP to. Capacity 0 means unlimited.
type Event struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Title          string    `json:"title"`
	Type           EventKind `json:"type"`
	Location       string    `json:"location,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Capacity       int       `json:"capacity"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e *Event) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	if e.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if e.Title == "" {
		return NewValidationError("event title is required")
	}
	switch e.Type {
	case EventKindInfoSession, EventKindTryout, EventKindShowcase, EventKindCampDay:
	default:
		return NewValidationError("invalid event type: " + string(e.Type))
	}
	if e.StartsAt.IsZero() {
		return NewValidationError("starts_at is required")
	}
	if e.EndsAt.IsZero() {
		e.EndsAt = e.StartsAt.Add(2 * time.Hour)
	}
	if !e.EndsAt.After(e.StartsAt) {
		return NewValidationError("event must end after it starts")
	}
	if e.Capacity < 0 {
		return NewValidationError("capacity cannot be negative")
	}
	return nil
}

type RSVPStatus string

const (
	RSVPConfirmed  RSVPStatus = "confirmed"
	RSVPWaitlisted RSVPStatus = "waitlisted"
	RSVPCancelled  RSVPStatus = "cancelled"
)

const MaxRSVPGuests = 10

type RSVP struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	OrganizationID string     `json:"organization_id"`
	LeadID         string     `json:"lead_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Guests         int        `json:"guests"`
	Status         RSVPStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Headcount is the attendee plus guests
func (r *RSVP) Headcount() int {
	return 1 + r.Guests
}

// RSVPStatusFor decides whether a party fits next to the confirmed headcount
func RSVPStatusFor(capacity, confirmedHeadcount, guests int) RSVPStatus {
	if capacity > 0 && confirmedHeadcount+1+guests > capacity {
		return RSVPWaitlisted
	}
	return RSVPConfirmed
}

// PromotableRSVPs walks the waitlist in order and returns the leading run that fits.
// It stops at the first party that does not fit so nobody is skipped.
func PromotableRSVPs(capacity, confirmedHeadcount int, waitlist []*RSVP) []*RSVP {
	var out []*RSVP
	headcount := confirmedHeadcount
	for _, r := range waitlist {
		if capacity > 0 && headcount+r.Headcount() > capacity {
			break
		}
		headcount += r.Headcount()
		out = append(out, r)
	}
	return out
}

type CreateRSVPRequest struct {
	OrganizationID string `json:"organization_id"`
	EventID        string `json:"event_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Guests         int    `json:"guests"`
	Source         string `json:"source,omitempty"`
}

func (r *CreateRSVPRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.EventID == "" {
		return NewValidationError("event_id is required")
	}
	if r.Name == "" {
		return NewValidationError("name is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("invalid email format")
	}
	if r.Guests < 0 || r.Guests > MaxRSVPGuests {
		return NewValidationError("guests must be between 0 and 10")
	}
	return nil
}

type LeadService interface {
	CreateLead(ctx context.Context, lead *Lead) error
	GetLead(ctx context.Context, organizationID, id string) (*Lead, error)
	UpdateLead(ctx context.Context, lead *Lead) error
	DeleteLead(ctx context.Context, organizationID, id string) error
	ListLeads(ctx context.Context, organizationID string, status LeadStatus) ([]*Lead, error)
	ConvertLeadToProspect(ctx context.Context, organizationID, leadID string) (*Prospect, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, organizationID, id string) (*Event, error)
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, organizationID, id string) error
	ListEvents(ctx context.Context, organizationID string, upcomingOnly bool) ([]*Event, error)
	// CreateRSVP is public and needs no session
	CreateRSVP(ctx context.Context, req CreateRSVPRequest) (*RSVP, error)
	CancelRSVP(ctx context.Context, organizationID, rsvpID string) (*RSVP, error)
	ListRSVPs(ctx context.Context, organizationID, eventID string) ([]*RSVP, error)
	HandleBookingWebhook(ctx context.Context, payload []byte, headers http.Header) (*RSVP, error)
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	GetByID(ctx context.Context, organizationID, id string) (*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string, status LeadStatus) ([]*Lead, error)
	// UpsertByEmailTx inserts the lead or refreshes name and phone of the existing one, filling lead.ID
	UpsertByEmailTx(ctx context.Context, tx *sql.Tx, lead *Lead) error
	CountByStatus(ctx context.Context, organizationID string) (map[string]int, error)
}

type EventRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, organizationID, id string) (*Event, error)
	// GetByIDUnscoped is used by public flows that only know the event ID
	GetByIDUnscoped(ctx context.Context, id string) (*Event, error)
	LockEventTx(ctx context.Context, tx *sql.Tx, id string) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string, from *time.Time) ([]*Event, error)
	CountUpcoming(ctx context.Context, organizationID string, now time.Time) (int, error)
	FindActiveRSVPTx(ctx context.Context, tx *sql.Tx, eventID, email string) (*RSVP, error)
	ConfirmedHeadcountTx(ctx context.Context, tx *sql.Tx, eventID string) (int, error)
	CreateRSVPTx(ctx context.Context, tx *sql.Tx, rsvp *RSVP) error
	LockRSVPTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*RSVP, error)
	UpdateRSVPStatusTx(ctx context.Context, tx *sql.Tx, id string, status RSVPStatus) error
	ListWaitlistedTx(ctx context.Context, tx *sql.Tx, eventID string) ([]*RSVP, error)
	ListRSVPs(ctx context.Context, organizationID, eventID string) ([]*RSVP, error)
}
