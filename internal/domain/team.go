package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_team_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain TeamRepository
//go:generate mockgen -destination mocks/mock_team_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain TeamService

const DefaultMaxRosterSize = 25

type Team struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Sport          string    `json:"sport"`
	AgeGroup       string    `json:"age_group,omitempty"`
	Season         string    `json:"season,omitempty"`
	CoachID        string    `json:"coach_id,omitempty"`
	MaxRosterSize  int       `json:"max_roster_size"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *Team) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	t.Sport = strings.ToLower(strings.TrimSpace(t.Sport))
	if t.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if t.Name == "" {
		return NewValidationError("team name is required")
	}
	if !IsSupportedSport(t.Sport) {
		return NewValidationError("unsupported sport: " + t.Sport)
	}
	if t.MaxRosterSize == 0 {
		t.MaxRosterSize = DefaultMaxRosterSize
	}
	if t.MaxRosterSize < 1 || t.MaxRosterSize > 200 {
		return NewValidationError("max roster size must be between 1 and 200")
	}
	return nil
}

type RosterStatus string

const (
	RosterActive   RosterStatus = "active"
	RosterInactive RosterStatus = "inactive"
)

// RosterEntry places an athlete on a team. JerseyNumber nil means unassigned.
type RosterEntry struct {
	ID           string       `json:"id"`
	TeamID       string       `json:"team_id"`
	AthleteID    string       `json:"athlete_id"`
	JerseyNumber *int         `json:"jersey_number,omitempty"`
	Position     string       `json:"position,omitempty"`
	Status       RosterStatus `json:"status"`
	JoinedAt     time.Time    `json:"joined_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// RosterEntryWithAthlete adds display fields for listings
type RosterEntryWithAthlete struct {
	RosterEntry
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ValidateJersey(n *int) error {
	if n != nil && (*n < 0 || *n > 99) {
		return NewValidationError("jersey number must be between 0 and 99")
	}
	return nil
}

type AddToRosterRequest struct {
	OrganizationID string `json:"organization_id"`
	TeamID         string `json:"team_id"`
	AthleteID      string `json:"athlete_id"`
	JerseyNumber   *int   `json:"jersey_number,omitempty"`
	Position       string `json:"position,omitempty"`
}

func (r *AddToRosterRequest) Validate() error {
	if r.OrganizationID == "" || r.TeamID == "" || r.AthleteID == "" {
		return NewValidationError("organization_id, team_id and athlete_id are required")
	}
	return ValidateJersey(r.JerseyNumber)
}

type UpdateRosterEntryRequest struct {
	OrganizationID string `json:"organization_id"`
	EntryID        string `json:"entry_id"`
	JerseyNumber   *int   `json:"jersey_number,omitempty"`
	Position       string `json:"position,omitempty"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, team *Team) error
	GetTeam(ctx context.Context, organizationID, id string) (*Team, error)
	UpdateTeam(ctx context.Context, team *Team) error
	DeleteTeam(ctx context.Context, organizationID, id string) error
	ListTeams(ctx context.Context, organizationID string) ([]*Team, error)
	AddToRoster(ctx context.Context, req AddToRosterRequest) (*RosterEntry, error)
	UpdateRosterEntry(ctx context.Context, req UpdateRosterEntryRequest) (*RosterEntry, error)
	RemoveFromRoster(ctx context.Context, organizationID, entryID string) error
	ListRoster(ctx context.Context, organizationID, teamID string, includeInactive bool) ([]*RosterEntryWithAthlete, error)
}

type TeamRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, organizationID, id string) (*Team, error)
	LockTeamTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*Team, error)
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, organizationID, id string) error
	List(ctx context.Context, organizationID string) ([]*Team, error)
	GetEntryByAthleteTx(ctx context.Context, tx *sql.Tx, teamID, athleteID string) (*RosterEntry, error)
	CountActiveTx(ctx context.Context, tx *sql.Tx, teamID string) (int, error)
	// JerseyTakenTx reports whether another active entry wears the number
	JerseyTakenTx(ctx context.Context, tx *sql.Tx, teamID string, jersey int, excludeEntryID string) (bool, error)
	CreateEntryTx(ctx context.Context, tx *sql.Tx, entry *RosterEntry) error
	// LockEntryTx loads the entry scoped to the organization through its team
	LockEntryTx(ctx context.Context, tx *sql.Tx, organizationID, entryID string) (*RosterEntry, error)
	UpdateEntryTx(ctx context.Context, tx *sql.Tx, entry *RosterEntry) error
	ListRoster(ctx context.Context, teamID string, includeInactive bool) ([]*RosterEntryWithAthlete, error)
}
