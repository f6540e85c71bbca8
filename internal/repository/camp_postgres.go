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

// CampRepository stores camps and their registrations
type CampRepository struct {
	systemDB *sql.DB
}

// NewCampRepository creates a new CampRepository
func NewCampRepository(db *sql.DB) domain.CampRepository {
	return &CampRepository{systemDB: db}
}

func (r *CampRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var campColumns = []string{
	"id", "organization_id", "name", "description", "sport", "location", "start_date", "end_date",
	"price_cents", "capacity", "status", "created_at", "updated_at",
}

func scanCamp(row rowScanner) (*domain.Camp, error) {
	var (
		c           domain.Camp
		description sql.NullString
	)
	err := row.Scan(&c.ID, &c.OrganizationID, &c.Name, &description, &c.Sport, &c.Location, &c.StartDate,
		&c.EndDate, &c.PriceCents, &c.Capacity, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	return &c, nil
}

func (r *CampRepository) Create(ctx context.Context, c *domain.Camp) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("camps").
		Columns(campColumns...).
		Values(c.ID, c.OrganizationID, c.Name, nullString(c.Description), c.Sport, c.Location,
			c.StartDate.UTC(), c.EndDate.UTC(), c.PriceCents, c.Capacity, c.Status, c.CreatedAt, c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create camp: %w", err)
	}
	return nil
}

func (r *CampRepository) getCamp(ctx context.Context, q querier, organizationID, id string, lock bool) (*domain.Camp, error) {
	b := psql.Select(campColumns...).
		From("camps").
		Where(sq.Eq{"id": id, "organization_id": organizationID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	c, err := scanCamp(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "camp", id, "get camp")
	}
	return c, nil
}

func (r *CampRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Camp, error) {
	return r.getCamp(ctx, r.systemDB, organizationID, id, false)
}

// LockCampTx serializes registrations against the camp's capacity
func (r *CampRepository) LockCampTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.Camp, error) {
	return r.getCamp(ctx, tx, organizationID, id, true)
}

func (r *CampRepository) Update(ctx context.Context, c *domain.Camp) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("camps").
		SetMap(map[string]interface{}{
			"name":        c.Name,
			"description": nullString(c.Description),
			"sport":       c.Sport,
			"location":    c.Location,
			"start_date":  c.StartDate.UTC(),
			"end_date":    c.EndDate.UTC(),
			"price_cents": c.PriceCents,
			"capacity":    c.Capacity,
			"status":      c.Status,
			"updated_at":  c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID, "organization_id": c.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update camp: %w", err)
	}
	return expectOneRow(res, "camp", c.ID)
}

func (r *CampRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("camps").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete camp: %w", err)
	}
	return expectOneRow(res, "camp", id)
}

func (r *CampRepository) List(ctx context.Context, organizationID string, status domain.CampStatus) ([]*domain.Camp, error) {
	b := psql.Select(campColumns...).
		From("camps").
		Where(sq.Eq{"organization_id": organizationID})
	if status != "" {
		b = b.Where(sq.Eq{"status": status})
	}
	query, args, err := b.OrderBy("start_date", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}
	defer rows.Close()

	camps := []*domain.Camp{}
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camp: %w", err)
		}
		camps = append(camps, c)
	}
	return camps, rows.Err()
}

// CountActiveRegistrationsTx counts seats held by pending and confirmed registrations
func (r *CampRepository) CountActiveRegistrationsTx(ctx context.Context, tx *sql.Tx, campID string) (int, error) {
	n, err := countQuery(ctx, tx, psql.Select("COUNT(*)").
		From("camp_registrations").
		Where(sq.Eq{
			"camp_id": campID,
			"status":  []domain.RegistrationStatus{domain.RegistrationPendingPayment, domain.RegistrationConfirmed},
		}))
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return n, nil
}

var registrationColumns = []string{
	"id", "camp_id", "organization_id", "athlete_id", "participant_name", "email", "phone", "amount_cents",
	"discount_cents", "total_cents", "coupon_code", "status", "checkout_session_id", "created_at", "updated_at",
}

func scanRegistration(row rowScanner) (*domain.CampRegistration, error) {
	var (
		reg                                  domain.CampRegistration
		athleteID                            sql.NullString
		phone, couponCode, checkoutSessionID sql.NullString
	)
	err := row.Scan(&reg.ID, &reg.CampID, &reg.OrganizationID, &athleteID, &reg.ParticipantName, &reg.Email,
		&phone, &reg.AmountCents, &reg.DiscountCents, &reg.TotalCents, &couponCode, &reg.Status,
		&checkoutSessionID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	reg.AthleteID = stringPtr(athleteID)
	reg.Phone = phone.String
	reg.CouponCode = couponCode.String
	reg.CheckoutSessionID = checkoutSessionID.String
	return &reg, nil
}

func (r *CampRepository) CreateRegistrationTx(ctx context.Context, tx *sql.Tx, reg *domain.CampRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	_, err := execBuilder(ctx, tx, psql.Insert("camp_registrations").
		Columns(registrationColumns...).
		Values(reg.ID, reg.CampID, reg.OrganizationID, nullStringPtr(reg.AthleteID), reg.ParticipantName,
			reg.Email, nullString(reg.Phone), reg.AmountCents, reg.DiscountCents, reg.TotalCents,
			nullString(reg.CouponCode), reg.Status, nullString(reg.CheckoutSessionID), reg.CreatedAt, reg.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *CampRepository) GetRegistration(ctx context.Context, id string) (*domain.CampRegistration, error) {
	query, args, err := psql.Select(registrationColumns...).
		From("camp_registrations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	reg, err := scanRegistration(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "registration", id, "get registration")
	}
	return reg, nil
}

func (r *CampRepository) UpdateRegistration(ctx context.Context, reg *domain.CampRegistration) error {
	return updateRegistration(ctx, r.systemDB, reg)
}

func (r *CampRepository) UpdateRegistrationTx(ctx context.Context, tx *sql.Tx, reg *domain.CampRegistration) error {
	return updateRegistration(ctx, tx, reg)
}

func updateRegistration(ctx context.Context, q querier, reg *domain.CampRegistration) error {
	reg.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, q, psql.Update("camp_registrations").
		Set("status", reg.Status).
		Set("checkout_session_id", nullString(reg.CheckoutSessionID)).
		Set("updated_at", reg.UpdatedAt).
		Where(sq.Eq{"id": reg.ID}))
	if err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}
	return expectOneRow(res, "registration", reg.ID)
}

// ListRegistrations lists every registration of the organization when campID is empty
func (r *CampRepository) ListRegistrations(ctx context.Context, organizationID, campID string) ([]*domain.CampRegistration, error) {
	where := sq.Eq{"organization_id": organizationID}
	if campID != "" {
		where["camp_id"] = campID
	}
	query, args, err := psql.Select(registrationColumns...).
		From("camp_registrations").
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	regs := []*domain.CampRegistration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *CampRepository) CountConfirmedRegistrations(ctx context.Context, organizationID string) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("camp_registrations").
		Where(sq.Eq{"organization_id": organizationID, "status": domain.RegistrationConfirmed}))
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return n, nil
}
