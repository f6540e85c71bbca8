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

// LeadRepository stores inbound leads
type LeadRepository struct {
	systemDB *sql.DB
}

// NewLeadRepository creates a new LeadRepository
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &LeadRepository{systemDB: db}
}

var leadColumns = []string{"id", "organization_id", "name", "email", "phone", "source", "status", "notes", "created_at", "updated_at"}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var (
		l                    domain.Lead
		phone, source, notes sql.NullString
	)
	err := row.Scan(&l.ID, &l.OrganizationID, &l.Name, &l.Email, &phone, &source, &l.Status, &notes, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	l.Phone = phone.String
	l.Source = source.String
	l.Notes = notes.String
	return &l, nil
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("leads").
		Columns(leadColumns...).
		Values(l.ID, l.OrganizationID, l.Name, l.Email, nullString(l.Phone), nullString(l.Source), l.Status,
			nullString(l.Notes), l.CreatedAt, l.UpdatedAt))
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("lead", "a lead with this email already exists")
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Lead, error) {
	query, args, err := psql.Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	l, err := scanLead(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "lead", id, "get lead")
	}
	return l, nil
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	l.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("leads").
		Set("name", l.Name).
		Set("email", l.Email).
		Set("phone", nullString(l.Phone)).
		Set("source", nullString(l.Source)).
		Set("status", l.Status).
		Set("notes", nullString(l.Notes)).
		Set("updated_at", l.UpdatedAt).
		Where(sq.Eq{"id": l.ID, "organization_id": l.OrganizationID}))
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("lead", "a lead with this email already exists")
		}
		return fmt.Errorf("failed to update lead: %w", err)
	}
	return expectOneRow(res, "lead", l.ID)
}

func (r *LeadRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("leads").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return expectOneRow(res, "lead", id)
}

func (r *LeadRepository) List(ctx context.Context, organizationID string, status domain.LeadStatus) ([]*domain.Lead, error) {
	where := sq.Eq{"organization_id": organizationID}
	if status != "" {
		where["status"] = status
	}
	query, args, err := psql.Select(leadColumns...).
		From("leads").
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []*domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// UpsertByEmailTx keeps one lead per email, preserving its status and notes
func (r *LeadRepository) UpsertByEmailTx(ctx context.Context, tx *sql.Tx, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Status == "" {
		l.Status = domain.LeadNew
	}
	now := time.Now().UTC()

	query, args, err := psql.Insert("leads").
		Columns(leadColumns...).
		Values(l.ID, l.OrganizationID, l.Name, l.Email, nullString(l.Phone), nullString(l.Source), l.Status,
			nullString(l.Notes), now, now).
		Suffix("ON CONFLICT (organization_id, email) DO UPDATE SET name = EXCLUDED.name, " +
			"phone = COALESCE(EXCLUDED.phone, leads.phone), updated_at = EXCLUDED.updated_at " +
			"RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context, organizationID string) (map[string]int, error) {
	query, args, err := psql.Select("status", "COUNT(*)").
		From("leads").
		Where(sq.Eq{"organization_id": organizationID}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return groupCounts(ctx, r.systemDB, query, args)
}
