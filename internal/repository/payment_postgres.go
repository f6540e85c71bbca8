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

// PaymentRepository stores checkout payments
type PaymentRepository struct {
	systemDB *sql.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *sql.DB) domain.PaymentRepository {
	return &PaymentRepository{systemDB: db}
}

var paymentColumns = []string{
	"id", "organization_id", "purpose", "reference_id", "email", "amount_cents", "currency", "status",
	"provider_session_id", "created_at", "paid_at",
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var (
		p                domain.Payment
		email, sessionID sql.NullString
		paidAt           sql.NullTime
	)
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Purpose, &p.ReferenceID, &email, &p.AmountCents, &p.Currency,
		&p.Status, &sessionID, &p.CreatedAt, &paidAt)
	if err != nil {
		return nil, err
	}
	p.Email = email.String
	p.ProviderSessionID = sessionID.String
	p.PaidAt = timePtr(paidAt)
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	p.CreatedAt = time.Now().UTC()

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("payments").
		Columns(paymentColumns...).
		Values(p.ID, p.OrganizationID, p.Purpose, p.ReferenceID, nullString(p.Email), p.AmountCents, p.Currency,
			p.Status, nullString(p.ProviderSessionID), p.CreatedAt, nullTime(p.PaidAt)))
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) SetProviderSession(ctx context.Context, id, sessionID string) error {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("payments").
		Set("provider_session_id", sessionID).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to set provider session: %w", err)
	}
	return expectOneRow(res, "payment", id)
}

func (r *PaymentRepository) getPayment(ctx context.Context, where sq.Eq, ref string) (*domain.Payment, error) {
	query, args, err := psql.Select(paymentColumns...).From("payments").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	p, err := scanPayment(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "payment", ref, "get payment")
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return r.getPayment(ctx, sq.Eq{"id": id}, id)
}

func (r *PaymentRepository) GetByProviderSession(ctx context.Context, sessionID string) (*domain.Payment, error) {
	return r.getPayment(ctx, sq.Eq{"provider_session_id": sessionID}, sessionID)
}

// MarkPaid flips a pending payment to paid exactly once, so replayed webhooks are no-ops
func (r *PaymentRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error) {
	res, err := execBuilder(ctx, r.systemDB, psql.Update("payments").
		Set("status", domain.PaymentPaid).
		Set("paid_at", paidAt.UTC()).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": domain.PaymentPaid}))
	if err != nil {
		return false, fmt.Errorf("failed to mark payment paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, id string) error {
	_, err := execBuilder(ctx, r.systemDB, psql.Update("payments").
		Set("status", domain.PaymentFailed).
		Where(sq.Eq{"id": id, "status": domain.PaymentPending}))
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}
	return nil
}

func (r *PaymentRepository) List(ctx context.Context, organizationID string, status domain.PaymentStatus) ([]*domain.Payment, error) {
	where := sq.Eq{"organization_id": organizationID}
	if status != "" {
		where["status"] = status
	}
	query, args, err := psql.Select(paymentColumns...).
		From("payments").
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) SumPaid(ctx context.Context, organizationID string) (int64, error) {
	query, args, err := psql.Select("COALESCE(SUM(amount_cents), 0)").
		From("payments").
		Where(sq.Eq{"organization_id": organizationID, "status": domain.PaymentPaid}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	var total int64
	if err := r.systemDB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}
