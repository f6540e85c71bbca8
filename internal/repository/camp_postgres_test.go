package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
)

func TestCampRepository_RegisterUnderLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewCampRepository(db)
	ctx := context.Background()
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM camps WHERE id = \$1 AND organization_id = \$2 FOR UPDATE`).
		WithArgs("camp-1", "org-1").
		WillReturnRows(sqlmock.NewRows(campColumns).
			AddRow("camp-1", "org-1", "Summer Elite", nil, "football", "Austin", start, start.AddDate(0, 0, 3),
				15000, 40, "open", start, start))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM camp_registrations WHERE camp_id = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs("camp-1", domain.RegistrationPendingPayment, domain.RegistrationConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectExec(`INSERT INTO camp_registrations`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		camp, err := repo.LockCampTx(ctx, tx, "org-1", "camp-1")
		require.NoError(t, err)
		assert.Equal(t, domain.CampStatusOpen, camp.Status)

		n, err := repo.CountActiveRegistrationsTx(ctx, tx, camp.ID)
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		return repo.CreateRegistrationTx(ctx, tx, &domain.CampRegistration{
			CampID: camp.ID, OrganizationID: "org-1", ParticipantName: "Kai Reed", Email: "kai@example.com",
			AmountCents: 15000, TotalCents: 15000, Status: domain.RegistrationPendingPayment,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampRepository_GetRegistration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewCampRepository(db)
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM camp_registrations WHERE id = \$1`).
			WithArgs("reg-1").
			WillReturnRows(sqlmock.NewRows(registrationColumns).
				AddRow("reg-1", "camp-1", "org-1", "ath-1", "Kai Reed", "kai@example.com", nil, 15000, 1500,
					13500, "SPRING10", "confirmed", "cs_123", now, now))

		reg, err := repo.GetRegistration(context.Background(), "reg-1")
		require.NoError(t, err)
		require.NotNil(t, reg.AthleteID)
		assert.Equal(t, "ath-1", *reg.AthleteID)
		assert.Equal(t, int64(13500), reg.TotalCents)
		assert.Equal(t, "cs_123", reg.CheckoutSessionID)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM camp_registrations WHERE id = \$1`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetRegistration(context.Background(), "nope")
		assert.True(t, domain.IsNotFound(err))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampRepository_ListRegistrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewCampRepository(db)

	mock.ExpectQuery(`FROM camp_registrations WHERE organization_id = \$1 ORDER BY created_at, id`).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows(registrationColumns))
	mock.ExpectQuery(`FROM camp_registrations WHERE camp_id = \$1 AND organization_id = \$2 ORDER BY`).
		WithArgs("camp-1", "org-1").
		WillReturnRows(sqlmock.NewRows(registrationColumns))

	all, err := repo.ListRegistrations(context.Background(), "org-1", "")
	require.NoError(t, err)
	assert.Empty(t, all)
	_, err = repo.ListRegistrations(context.Background(), "org-1", "camp-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
