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

// EventRepository stores events and their RSVPs
type EventRepository struct {
	systemDB *sql.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &EventRepository{systemDB: db}
}

func (r *EventRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var eventColumns = []string{"id", "organization_id", "title", "type", "location", "starts_at", "ends_at", "capacity", "created_at", "updated_at"}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e        domain.Event
		location sql.NullString
	)
	err := row.Scan(&e.ID, &e.OrganizationID, &e.Title, &e.Type, &location, &e.StartsAt, &e.EndsAt, &e.Capacity,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Location = location.String
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("events").
		Columns(eventColumns...).
		Values(e.ID, e.OrganizationID, e.Title, e.Type, nullString(e.Location), e.StartsAt.UTC(), e.EndsAt.UTC(),
			e.Capacity, e.CreatedAt, e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) getEvent(ctx context.Context, q querier, where sq.Eq, id string, lock bool) (*domain.Event, error) {
	b := psql.Select(eventColumns...).From("events").Where(where)
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanEvent(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "event", id, "get event")
	}
	return e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Event, error) {
	return r.getEvent(ctx, r.systemDB, sq.Eq{"id": id, "organization_id": organizationID}, id, false)
}

func (r *EventRepository) GetByIDUnscoped(ctx context.Context, id string) (*domain.Event, error) {
	return r.getEvent(ctx, r.systemDB, sq.Eq{"id": id}, id, false)
}

func (r *EventRepository) LockEventTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Event, error) {
	return r.getEvent(ctx, tx, sq.Eq{"id": id}, id, true)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("events").
		Set("title", e.Title).
		Set("type", e.Type).
		Set("location", nullString(e.Location)).
		Set("starts_at", e.StartsAt.UTC()).
		Set("ends_at", e.EndsAt.UTC()).
		Set("capacity", e.Capacity).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID, "organization_id": e.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return expectOneRow(res, "event", e.ID)
}

func (r *EventRepository) Delete(ctx context.Context, organizationID, id string) error {
	return withTransaction(ctx, r.systemDB, func(tx *sql.Tx) error {
		res, err := execBuilder(ctx, tx, psql.Delete("events").
			Where(sq.Eq{"id": id, "organization_id": organizationID}))
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		if err := expectOneRow(res, "event", id); err != nil {
			return err
		}
		if _, err := execBuilder(ctx, tx, psql.Delete("rsvps").Where(sq.Eq{"event_id": id})); err != nil {
			return fmt.Errorf("failed to delete rsvps: %w", err)
		}
		return nil
	})
}

func (r *EventRepository) List(ctx context.Context, organizationID string, from *time.Time) ([]*domain.Event, error) {
	b := psql.Select(eventColumns...).
		From("events").
		Where(sq.Eq{"organization_id": organizationID})
	if from != nil {
		b = b.Where(sq.GtOrEq{"starts_at": from.UTC()})
	}
	query, args, err := b.OrderBy("starts_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) CountUpcoming(ctx context.Context, organizationID string, now time.Time) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("events").
		Where(sq.Eq{"organization_id": organizationID}).
		Where(sq.GtOrEq{"starts_at": now.UTC()}))
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

var rsvpColumns = []string{"id", "event_id", "organization_id", "lead_id", "name", "email", "guests", "status", "created_at", "updated_at"}

func scanRSVP(row rowScanner) (*domain.RSVP, error) {
	var v domain.RSVP
	err := row.Scan(&v.ID, &v.EventID, &v.OrganizationID, &v.LeadID, &v.Name, &v.Email, &v.Guests, &v.Status,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *EventRepository) queryRSVPs(ctx context.Context, q querier, b sq.SelectBuilder) ([]*domain.RSVP, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	rsvps := []*domain.RSVP{}
	for rows.Next() {
		v, err := scanRSVP(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, v)
	}
	return rsvps, rows.Err()
}

// FindActiveRSVPTx returns nil when the email holds no live RSVP for the event
func (r *EventRepository) FindActiveRSVPTx(ctx context.Context, tx *sql.Tx, eventID, email string) (*domain.RSVP, error) {
	query, args, err := psql.Select(rsvpColumns...).
		From("rsvps").
		Where(sq.Eq{"event_id": eventID, "email": email}).
		Where(sq.NotEq{"status": domain.RSVPCancelled}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	v, err := scanRSVP(tx.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rsvp: %w", err)
	}
	return v, nil
}

func (r *EventRepository) ConfirmedHeadcountTx(ctx context.Context, tx *sql.Tx, eventID string) (int, error) {
	n, err := countQuery(ctx, tx, psql.Select("COALESCE(SUM(1 + guests), 0)").
		From("rsvps").
		Where(sq.Eq{"event_id": eventID, "status": domain.RSVPConfirmed}))
	if err != nil {
		return 0, fmt.Errorf("failed to count headcount: %w", err)
	}
	return n, nil
}

func (r *EventRepository) CreateRSVPTx(ctx context.Context, tx *sql.Tx, v *domain.RSVP) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	_, err := execBuilder(ctx, tx, psql.Insert("rsvps").
		Columns(rsvpColumns...).
		Values(v.ID, v.EventID, v.OrganizationID, v.LeadID, v.Name, v.Email, v.Guests, v.Status, v.CreatedAt, v.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create rsvp: %w", err)
	}
	return nil
}

func (r *EventRepository) LockRSVPTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.RSVP, error) {
	query, args, err := psql.Select(rsvpColumns...).
		From("rsvps").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	v, err := scanRSVP(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "rsvp", id, "lock rsvp")
	}
	return v, nil
}

func (r *EventRepository) UpdateRSVPStatusTx(ctx context.Context, tx *sql.Tx, id string, status domain.RSVPStatus) error {
	res, err := execBuilder(ctx, tx, psql.Update("rsvps").
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to update rsvp: %w", err)
	}
	return expectOneRow(res, "rsvp", id)
}

// ListWaitlistedTx returns the waitlist in arrival order, locked for promotion
func (r *EventRepository) ListWaitlistedTx(ctx context.Context, tx *sql.Tx, eventID string) ([]*domain.RSVP, error) {
	return r.queryRSVPs(ctx, tx, psql.Select(rsvpColumns...).
		From("rsvps").
		Where(sq.Eq{"event_id": eventID, "status": domain.RSVPWaitlisted}).
		OrderBy("created_at", "id").
		Suffix("FOR UPDATE"))
}

func (r *EventRepository) ListRSVPs(ctx context.Context, organizationID, eventID string) ([]*domain.RSVP, error) {
	return r.queryRSVPs(ctx, r.systemDB, psql.Select(rsvpColumns...).
		From("rsvps").
		Where(sq.Eq{"event_id": eventID, "organization_id": organizationID}).
		OrderBy("created_at", "id"))
}
