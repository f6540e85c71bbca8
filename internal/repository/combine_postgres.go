package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// CombineRepository stores combine tour events, registrations and measured results
type CombineRepository struct {
	systemDB *sql.DB
}

// NewCombineRepository creates a new CombineRepository
func NewCombineRepository(db *sql.DB) domain.CombineRepository {
	return &CombineRepository{systemDB: db}
}

func (r *CombineRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var combineEventColumns = []string{
	"id", "organization_id", "name", "city", "state", "venue", "event_date", "registration_deadline",
	"capacity", "price_cents", "sports", "status", "created_at", "updated_at",
}

func scanCombineEvent(row rowScanner) (*domain.CombineEvent, error) {
	var (
		e      domain.CombineEvent
		venue  sql.NullString
		sports pq.StringArray
	)
	err := row.Scan(&e.ID, &e.OrganizationID, &e.Name, &e.City, &e.State, &venue, &e.EventDate,
		&e.RegistrationDeadline, &e.Capacity, &e.PriceCents, &sports, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Venue = venue.String
	e.Sports = []string(sports)
	if e.Sports == nil {
		e.Sports = []string{}
	}
	return &e, nil
}

func (r *CombineRepository) Create(ctx context.Context, e *domain.CombineEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Sports == nil {
		e.Sports = []string{}
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("combine_tour_events").
		Columns(combineEventColumns...).
		Values(e.ID, e.OrganizationID, e.Name, e.City, e.State, nullString(e.Venue), e.EventDate.UTC(),
			e.RegistrationDeadline.UTC(), e.Capacity, e.PriceCents, pq.Array(e.Sports), e.Status, e.CreatedAt, e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create combine event: %w", err)
	}
	return nil
}

func (r *CombineRepository) getEvent(ctx context.Context, q querier, organizationID, id string, lock bool) (*domain.CombineEvent, error) {
	b := psql.Select(combineEventColumns...).
		From("combine_tour_events").
		Where(sq.Eq{"id": id, "organization_id": organizationID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanCombineEvent(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "combine_event", id, "get combine event")
	}
	return e, nil
}

func (r *CombineRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.CombineEvent, error) {
	return r.getEvent(ctx, r.systemDB, organizationID, id, false)
}

func (r *CombineRepository) LockEventTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.CombineEvent, error) {
	return r.getEvent(ctx, tx, organizationID, id, true)
}

func (r *CombineRepository) Update(ctx context.Context, e *domain.CombineEvent) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("combine_tour_events").
		SetMap(map[string]interface{}{
			"name":                  e.Name,
			"city":                  e.City,
			"state":                 e.State,
			"venue":                 nullString(e.Venue),
			"event_date":            e.EventDate.UTC(),
			"registration_deadline": e.RegistrationDeadline.UTC(),
			"capacity":              e.Capacity,
			"price_cents":           e.PriceCents,
			"sports":                pq.Array(e.Sports),
			"status":                e.Status,
			"updated_at":            e.UpdatedAt,
		}).
		Where(sq.Eq{"id": e.ID, "organization_id": e.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update combine event: %w", err)
	}
	return expectOneRow(res, "combine_event", e.ID)
}

func (r *CombineRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("combine_tour_events").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete combine event: %w", err)
	}
	return expectOneRow(res, "combine_event", id)
}

func (r *CombineRepository) ListUpcoming(ctx context.Context, organizationID string, from time.Time) ([]*domain.CombineEvent, error) {
	query, args, err := psql.Select(combineEventColumns...).
		From("combine_tour_events").
		Where(sq.Eq{"organization_id": organizationID}).
		Where(sq.GtOrEq{"event_date": from.UTC()}).
		OrderBy("event_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list combine events: %w", err)
	}
	defer rows.Close()

	events := []*domain.CombineEvent{}
	for rows.Next() {
		e, err := scanCombineEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan combine event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountActiveRegistrationsTx counts every registration still holding a spot
func (r *CombineRepository) CountActiveRegistrationsTx(ctx context.Context, tx *sql.Tx, eventID string) (int, error) {
	n, err := countQuery(ctx, tx, psql.Select("COUNT(*)").
		From("combine_registrations").
		Where(sq.Eq{"combine_event_id": eventID}).
		Where(sq.NotEq{"status": domain.CombineCancelled}))
	if err != nil {
		return 0, fmt.Errorf("failed to count combine registrations: %w", err)
	}
	return n, nil
}

var combineRegistrationColumns = []string{"id", "combine_event_id", "organization_id", "athlete_id", "status", "created_at", "updated_at"}

func scanCombineRegistration(row rowScanner) (*domain.CombineRegistration, error) {
	var reg domain.CombineRegistration
	if err := row.Scan(&reg.ID, &reg.CombineEventID, &reg.OrganizationID, &reg.AthleteID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *CombineRepository) GetRegistrationTx(ctx context.Context, tx *sql.Tx, eventID, athleteID string) (*domain.CombineRegistration, error) {
	query, args, err := psql.Select(combineRegistrationColumns...).
		From("combine_registrations").
		Where(sq.Eq{"combine_event_id": eventID, "athlete_id": athleteID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	reg, err := scanCombineRegistration(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "combine_registration", athleteID, "get combine registration")
	}
	return reg, nil
}

func (r *CombineRepository) CreateRegistrationTx(ctx context.Context, tx *sql.Tx, reg *domain.CombineRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	_, err := execBuilder(ctx, tx, psql.Insert("combine_registrations").
		Columns(combineRegistrationColumns...).
		Values(reg.ID, reg.CombineEventID, reg.OrganizationID, reg.AthleteID, reg.Status, reg.CreatedAt, reg.UpdatedAt))
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("combine_registration", "athlete is already registered for this combine")
		}
		return fmt.Errorf("failed to create combine registration: %w", err)
	}
	return nil
}

func updateCombineRegistrationStatus(ctx context.Context, q querier, id string, status domain.CombineRegistrationStatus) error {
	res, err := execBuilder(ctx, q, psql.Update("combine_registrations").
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to update combine registration: %w", err)
	}
	return expectOneRow(res, "combine_registration", id)
}

func (r *CombineRepository) UpdateRegistrationStatusTx(ctx context.Context, tx *sql.Tx, id string, status domain.CombineRegistrationStatus) error {
	return updateCombineRegistrationStatus(ctx, tx, id, status)
}

func (r *CombineRepository) UpdateRegistrationStatus(ctx context.Context, id string, status domain.CombineRegistrationStatus) error {
	return updateCombineRegistrationStatus(ctx, r.systemDB, id, status)
}

func (r *CombineRepository) GetRegistrationByID(ctx context.Context, id string) (*domain.CombineRegistration, error) {
	query, args, err := psql.Select(combineRegistrationColumns...).
		From("combine_registrations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	reg, err := scanCombineRegistration(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "combine_registration", id, "get combine registration")
	}
	return reg, nil
}

func (r *CombineRepository) ListRegistrations(ctx context.Context, organizationID, eventID string) ([]*domain.CombineRegistration, error) {
	query, args, err := psql.Select(combineRegistrationColumns...).
		From("combine_registrations").
		Where(sq.Eq{"combine_event_id": eventID, "organization_id": organizationID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list combine registrations: %w", err)
	}
	defer rows.Close()

	regs := []*domain.CombineRegistration{}
	for rows.Next() {
		reg, err := scanCombineRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan combine registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

var combineResultColumns = []string{
	"id", "combine_event_id", "organization_id", "athlete_id", "forty_yard_dash", "vertical_inches",
	"broad_jump_inches", "shuttle_seconds", "bench_reps", "recorded_at",
}

func nullFloatPtr(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func (r *CombineRepository) InsertResultTx(ctx context.Context, tx *sql.Tx, res *domain.CombineResult) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.RecordedAt = time.Now().UTC()

	_, err := execBuilder(ctx, tx, psql.Insert("combine_results").
		Columns(combineResultColumns...).
		Values(res.ID, res.CombineEventID, res.OrganizationID, res.AthleteID, nullFloatPtr(res.FortyYardDash),
			nullFloatPtr(res.VerticalInches), nullFloatPtr(res.BroadJumpInches), nullFloatPtr(res.ShuttleSeconds),
			nullIntPtr(res.BenchReps), res.RecordedAt))
	if err != nil {
		return fmt.Errorf("failed to record combine result: %w", err)
	}
	return nil
}

func (r *CombineRepository) ListResults(ctx context.Context, organizationID, eventID string) ([]*domain.CombineResult, error) {
	query, args, err := psql.Select(combineResultColumns...).
		From("combine_results").
		Where(sq.Eq{"combine_event_id": eventID, "organization_id": organizationID}).
		OrderBy("recorded_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list combine results: %w", err)
	}
	defer rows.Close()

	results := []*domain.CombineResult{}
	for rows.Next() {
		var (
			res                             domain.CombineResult
			forty, vertical, broad, shuttle sql.NullFloat64
			bench                           sql.NullInt64
		)
		err := rows.Scan(&res.ID, &res.CombineEventID, &res.OrganizationID, &res.AthleteID, &forty, &vertical,
			&broad, &shuttle, &bench, &res.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan combine result: %w", err)
		}
		res.FortyYardDash = floatPtr(forty)
		res.VerticalInches = floatPtr(vertical)
		res.BroadJumpInches = floatPtr(broad)
		res.ShuttleSeconds = floatPtr(shuttle)
		res.BenchReps = intPtr(bench)
		results = append(results, &res)
	}
	return results, rows.Err()
}
