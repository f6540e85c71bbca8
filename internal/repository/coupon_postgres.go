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

// CouponRepository stores discount codes and their redemptions
type CouponRepository struct {
	systemDB *sql.DB
}

// NewCouponRepository creates a new CouponRepository
func NewCouponRepository(db *sql.DB) domain.CouponRepository {
	return &CouponRepository{systemDB: db}
}

var couponColumns = []string{
	"id", "organization_id", "code", "description", "discount_type", "discount_value", "min_purchase_cents",
	"max_uses", "max_uses_per_user", "used_count", "applies_to", "valid_from", "valid_until", "active",
	"created_at", "updated_at",
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var (
		c                     domain.Coupon
		description           sql.NullString
		validFrom, validUntil sql.NullTime
	)
	err := row.Scan(&c.ID, &c.OrganizationID, &c.Code, &description, &c.DiscountType, &c.DiscountValue,
		&c.MinPurchaseCents, &c.MaxUses, &c.MaxUsesPerUser, &c.UsedCount, &c.AppliesTo, &validFrom,
		&validUntil, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	c.ValidFrom = timePtr(validFrom)
	c.ValidUntil = timePtr(validUntil)
	return &c, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *domain.Coupon) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("coupons").
		Columns(couponColumns...).
		Values(c.ID, c.OrganizationID, c.Code, nullString(c.Description), c.DiscountType, c.DiscountValue,
			c.MinPurchaseCents, c.MaxUses, c.MaxUsesPerUser, c.UsedCount, c.AppliesTo, nullTime(c.ValidFrom),
			nullTime(c.ValidUntil), c.Active, c.CreatedAt, c.UpdatedAt))
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("coupon", fmt.Sprintf("code %s already exists", c.Code))
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

func (r *CouponRepository) getCoupon(ctx context.Context, q querier, where sq.Eq, ref string, lock bool) (*domain.Coupon, error) {
	b := psql.Select(couponColumns...).From("coupons").Where(where)
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	c, err := scanCoupon(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "coupon", ref, "get coupon")
	}
	return c, nil
}

func (r *CouponRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Coupon, error) {
	return r.getCoupon(ctx, r.systemDB, sq.Eq{"id": id, "organization_id": organizationID}, id, false)
}

func (r *CouponRepository) GetByCode(ctx context.Context, organizationID, code string) (*domain.Coupon, error) {
	code = domain.NormalizeCouponCode(code)
	return r.getCoupon(ctx, r.systemDB, sq.Eq{"code": code, "organization_id": organizationID}, code, false)
}

func (r *CouponRepository) LockByCodeTx(ctx context.Context, tx *sql.Tx, organizationID, code string) (*domain.Coupon, error) {
	code = domain.NormalizeCouponCode(code)
	return r.getCoupon(ctx, tx, sq.Eq{"code": code, "organization_id": organizationID}, code, true)
}

// Update never touches used_count, which only moves through IncrementUsedTx
func (r *CouponRepository) Update(ctx context.Context, c *domain.Coupon) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("coupons").
		SetMap(map[string]interface{}{
			"description":        nullString(c.Description),
			"discount_type":      c.DiscountType,
			"discount_value":     c.DiscountValue,
			"min_purchase_cents": c.MinPurchaseCents,
			"max_uses":           c.MaxUses,
			"max_uses_per_user":  c.MaxUsesPerUser,
			"applies_to":         c.AppliesTo,
			"valid_from":         nullTime(c.ValidFrom),
			"valid_until":        nullTime(c.ValidUntil),
			"active":             c.Active,
			"updated_at":         c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID, "organization_id": c.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update coupon: %w", err)
	}
	return expectOneRow(res, "coupon", c.ID)
}

func (r *CouponRepository) Delete(ctx context.Context, organizationID, id string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Delete("coupons").
		Where(sq.Eq{"id": id, "organization_id": organizationID}))
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	return expectOneRow(res, "coupon", id)
}

func (r *CouponRepository) List(ctx context.Context, organizationID string, activeOnly bool) ([]*domain.Coupon, error) {
	b := psql.Select(couponColumns...).
		From("coupons").
		Where(sq.Eq{"organization_id": organizationID})
	if activeOnly {
		b = b.Where(sq.Eq{"active": true})
	}
	query, args, err := b.OrderBy("created_at DESC", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer rows.Close()

	coupons := []*domain.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func userUsesQuery(couponID, email string) sq.SelectBuilder {
	return psql.Select("COUNT(*)").
		From("coupon_usage").
		Where(sq.Eq{"coupon_id": couponID, "user_email": email})
}

func (r *CouponRepository) CountUserUses(ctx context.Context, couponID, email string) (int, error) {
	n, err := countQuery(ctx, r.systemDB, userUsesQuery(couponID, email))
	if err != nil {
		return 0, fmt.Errorf("failed to count coupon usage: %w", err)
	}
	return n, nil
}

func (r *CouponRepository) CountUserUsesTx(ctx context.Context, tx *sql.Tx, couponID, email string) (int, error) {
	n, err := countQuery(ctx, tx, userUsesQuery(couponID, email))
	if err != nil {
		return 0, fmt.Errorf("failed to count coupon usage: %w", err)
	}
	return n, nil
}

func (r *CouponRepository) IncrementUsedTx(ctx context.Context, tx *sql.Tx, couponID string) error {
	res, err := execBuilder(ctx, tx, psql.Update("coupons").
		Set("used_count", sq.Expr("used_count + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": couponID}))
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	return expectOneRow(res, "coupon", couponID)
}

// ReleaseUsageTx deletes the usage rows recorded for a reference and gives
// each redemption back to its coupon. It returns how many were released.
func (r *CouponRepository) ReleaseUsageTx(ctx context.Context, tx *sql.Tx, referenceType domain.Purpose, referenceID string) (int, error) {
	query, args, err := psql.Delete("coupon_usage").
		Where(sq.Eq{"reference_type": referenceType, "reference_id": referenceID}).
		Suffix("RETURNING coupon_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete coupon usage: %w", err)
	}
	var couponIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan coupon usage: %w", err)
		}
		couponIDs = append(couponIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to delete coupon usage: %w", err)
	}

	for _, id := range couponIDs {
		_, err := execBuilder(ctx, tx, psql.Update("coupons").
			Set("used_count", sq.Expr("GREATEST(used_count - 1, 0)")).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"id": id}))
		if err != nil {
			return 0, fmt.Errorf("failed to release coupon usage: %w", err)
		}
	}
	return len(couponIDs), nil
}

var couponUsageColumns = []string{"id", "coupon_id", "user_email", "reference_type", "reference_id", "discount_cents", "created_at"}

func (r *CouponRepository) InsertUsageTx(ctx context.Context, tx *sql.Tx, u *domain.CouponUsage) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now().UTC()
	_, err := execBuilder(ctx, tx, psql.Insert("coupon_usage").
		Columns(couponUsageColumns...).
		Values(u.ID, u.CouponID, u.UserEmail, u.ReferenceType, u.ReferenceID, u.DiscountCents, u.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to record coupon usage: %w", err)
	}
	return nil
}

func (r *CouponRepository) ListUsage(ctx context.Context, couponID string) ([]*domain.CouponUsage, error) {
	query, args, err := psql.Select(couponUsageColumns...).
		From("coupon_usage").
		Where(sq.Eq{"coupon_id": couponID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupon usage: %w", err)
	}
	defer rows.Close()

	usage := []*domain.CouponUsage{}
	for rows.Next() {
		var u domain.CouponUsage
		if err := rows.Scan(&u.ID, &u.CouponID, &u.UserEmail, &u.ReferenceType, &u.ReferenceID, &u.DiscountCents, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan coupon usage: %w", err)
		}
		usage = append(usage, &u)
	}
	return usage, rows.Err()
}
