package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// TeamRepository stores teams and their rosters
type TeamRepository struct {
	systemDB *sql.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &TeamRepository{systemDB: db}
}

func (r *TeamRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var teamColumns = []string{
	"id", "organization_id", "name", "sport", "age_group", "season", "coach_id", "max_roster_size",
	"created_at", "updated_at",
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	var (
		t                         domain.Team
		ageGroup, season, coachID sql.NullString
	)
	err := row.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Sport, &ageGroup, &season, &coachID,
		&t.MaxRosterSize, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.AgeGroup = ageGroup.String
	t.Season = season.String
	t.CoachID = coachID.String
	return &t, nil
}

func (r *TeamRepository) Create(ctx context.Context, t *domain.Team) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("teams").
		Columns(teamColumns...).
		Values(t.ID, t.OrganizationID, t.Name, t.Sport, nullString(t.AgeGroup), nullString(t.Season),
			nullString(t.CoachID), t.MaxRosterSize, t.CreatedAt, t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *TeamRepository) getTeam(ctx context.Context, q querier, organizationID, id string, lock bool) (*domain.Team, error) {
	b := psql.Select(teamColumns...).
		From("teams").
		Where(sq.Eq{"id": id, "organization_id": organizationID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	t, err := scanTeam(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "team", id, "get team")
	}
	return t, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Team, error) {
	return r.getTeam(ctx, r.systemDB, organizationID, id, false)
}

func (r *TeamRepository) LockTeamTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.Team, error) {
	return r.getTeam(ctx, tx, organizationID, id, true)
}

func (r *TeamRepository) Update(ctx context.Context, t *domain.Team) error {
	t.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("teams").
		Set("name", t.Name).
		Set("sport", t.Sport).
		Set("age_group", nullString(t.AgeGroup)).
		Set("season", nullString(t.Season)).
		Set("coach_id", nullString(t.CoachID)).
		Set("max_roster_size", t.MaxRosterSize).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID, "organization_id": t.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	return expectOneRow(res, "team", t.ID)
}

// Delete removes the team and its roster
func (r *TeamRepository) Delete(ctx context.Context, organizationID, id string) error {
	return withTransaction(ctx, r.systemDB, func(tx *sql.Tx) error {
		res, err := execBuilder(ctx, tx, psql.Delete("teams").
			Where(sq.Eq{"id": id, "organization_id": organizationID}))
		if err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		if err := expectOneRow(res, "team", id); err != nil {
			return err
		}
		if _, err := execBuilder(ctx, tx, psql.Delete("team_rosters").Where(sq.Eq{"team_id": id})); err != nil {
			return fmt.Errorf("failed to delete roster: %w", err)
		}
		return nil
	})
}

func (r *TeamRepository) List(ctx context.Context, organizationID string) ([]*domain.Team, error) {
	query, args, err := psql.Select(teamColumns...).
		From("teams").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := []*domain.Team{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

var rosterColumns = []string{"id", "team_id", "athlete_id", "jersey_number", "position", "status", "joined_at", "updated_at"}

func scanRosterEntry(row rowScanner, extra ...interface{}) (*domain.RosterEntry, error) {
	var (
		e        domain.RosterEntry
		jersey   sql.NullInt64
		position sql.NullString
	)
	dest := append([]interface{}{&e.ID, &e.TeamID, &e.AthleteID, &jersey, &position, &e.Status, &e.JoinedAt, &e.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	e.JerseyNumber = intPtr(jersey)
	e.Position = position.String
	return &e, nil
}

func (r *TeamRepository) GetEntryByAthleteTx(ctx context.Context, tx *sql.Tx, teamID, athleteID string) (*domain.RosterEntry, error) {
	query, args, err := psql.Select(rosterColumns...).
		From("team_rosters").
		Where(sq.Eq{"team_id": teamID, "athlete_id": athleteID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanRosterEntry(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "roster_entry", athleteID, "get roster entry")
	}
	return e, nil
}

func (r *TeamRepository) CountActiveTx(ctx context.Context, tx *sql.Tx, teamID string) (int, error) {
	n, err := countQuery(ctx, tx, psql.Select("COUNT(*)").
		From("team_rosters").
		Where(sq.Eq{"team_id": teamID, "status": domain.RosterActive}))
	if err != nil {
		return 0, fmt.Errorf("failed to count roster: %w", err)
	}
	return n, nil
}

func (r *TeamRepository) JerseyTakenTx(ctx context.Context, tx *sql.Tx, teamID string, jersey int, excludeEntryID string) (bool, error) {
	b := psql.Select("COUNT(*)").
		From("team_rosters").
		Where(sq.Eq{"team_id": teamID, "status": domain.RosterActive, "jersey_number": jersey})
	if excludeEntryID != "" {
		b = b.Where(sq.NotEq{"id": excludeEntryID})
	}
	n, err := countQuery(ctx, tx, b)
	if err != nil {
		return false, fmt.Errorf("failed to check jersey number: %w", err)
	}
	return n > 0, nil
}

func (r *TeamRepository) CreateEntryTx(ctx context.Context, tx *sql.Tx, e *domain.RosterEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.JoinedAt = now
	e.UpdatedAt = now

	_, err := execBuilder(ctx, tx, psql.Insert("team_rosters").
		Columns(rosterColumns...).
		Values(e.ID, e.TeamID, e.AthleteID, nullIntPtr(e.JerseyNumber), nullString(e.Position), e.Status, e.JoinedAt, e.UpdatedAt))
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("roster_entry", "athlete is already on this team")
		}
		return fmt.Errorf("failed to create roster entry: %w", err)
	}
	return nil
}

// LockEntryTx joins through teams so an entry is only reachable from its organization
func (r *TeamRepository) LockEntryTx(ctx context.Context, tx *sql.Tx, organizationID, entryID string) (*domain.RosterEntry, error) {
	cols := make([]string, len(rosterColumns))
	for i, c := range rosterColumns {
		cols[i] = "r." + c
	}
	query, args, err := psql.Select(cols...).
		From("team_rosters r").
		Join("teams t ON t.id = r.team_id").
		Where(sq.Eq{"r.id": entryID, "t.organization_id": organizationID}).
		Suffix("FOR UPDATE OF r").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanRosterEntry(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "roster_entry", entryID, "lock roster entry")
	}
	return e, nil
}

func (r *TeamRepository) UpdateEntryTx(ctx context.Context, tx *sql.Tx, e *domain.RosterEntry) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, tx, psql.Update("team_rosters").
		Set("jersey_number", nullIntPtr(e.JerseyNumber)).
		Set("position", nullString(e.Position)).
		Set("status", e.Status).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID}))
	if err != nil {
		return fmt.Errorf("failed to update roster entry: %w", err)
	}
	return expectOneRow(res, "roster_entry", e.ID)
}

func (r *TeamRepository) ListRoster(ctx context.Context, teamID string, includeInactive bool) ([]*domain.RosterEntryWithAthlete, error) {
	cols := make([]string, 0, len(rosterColumns)+2)
	for _, c := range rosterColumns {
		cols = append(cols, "r."+c)
	}
	cols = append(cols, "a.first_name", "a.last_name")

	b := psql.Select(cols...).
		From("team_rosters r").
		Join("athlete_profiles a ON a.id = r.athlete_id").
		Where(sq.Eq{"r.team_id": teamID})
	if !includeInactive {
		b = b.Where(sq.Eq{"r.status": domain.RosterActive})
	}
	query, args, err := b.OrderBy("r.jersey_number NULLS LAST", "a.last_name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	roster := []*domain.RosterEntryWithAthlete{}
	for rows.Next() {
		var first, last string
		e, err := scanRosterEntry(rows, &first, &last)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, &domain.RosterEntryWithAthlete{RosterEntry: *e, FirstName: first, LastName: last})
	}
	return roster, rows.Err()
}
