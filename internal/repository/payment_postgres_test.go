package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
)

func TestPaymentRepository_MarkPaid(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  bool
	}{
		{name: "first delivery", affected: 1, want: true},
		{name: "replayed delivery", affected: 0, want: false},
		{name: "database error", execErr: errors.New("conn reset"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			repo := NewPaymentRepository(db)

			exp := mock.ExpectExec(`UPDATE payments SET status = \$1, paid_at = \$2 WHERE id = \$3 AND status <> \$4`).
				WithArgs(domain.PaymentPaid, paidAt, "pay-1", domain.PaymentPaid)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			got, err := repo.MarkPaid(context.Background(), "pay-1", paidAt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPaymentRepository_GetByProviderSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewPaymentRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE provider_session_id = \$1`).
		WithArgs("cs_test_1").
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow("pay-1", "org-1", "camp", "reg-1", "kai@example.com", 13500, "usd", "pending", "cs_test_1", now, nil))

	p, err := repo.GetByProviderSession(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PurposeCamp, p.Purpose)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Nil(t, p.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_SumPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_cents\), 0\) FROM payments WHERE organization_id = \$1 AND status = \$2`).
		WithArgs("org-1", domain.PaymentPaid).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(int64(250000)))

	total, err := repo.SumPaid(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, int64(250000), total)
}
