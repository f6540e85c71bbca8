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
	"github.com/Go4ItSports/go4it/internal/repository/testutil"
)

func TestCombineRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewCombineRepository(db)
	date := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM combine_tour_events WHERE id = \$1 AND organization_id = \$2$`).
		WithArgs("cb-1", "org-1").
		WillReturnRows(sqlmock.NewRows(combineEventColumns).
			AddRow("cb-1", "org-1", "Dallas Combine", "Dallas", "TX", nil, date, date.AddDate(0, 0, -3), 150, 7500,
				`{football,basketball}`, "open", date, date))

	e, err := repo.GetByID(context.Background(), "org-1", "cb-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"football", "basketball"}, e.Sports)
	assert.Equal(t, domain.CombineOpen, e.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCombineRepository_RegistrationTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewCombineRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM combine_registrations WHERE combine_event_id = \$1 AND status <> \$2`).
		WithArgs("cb-1", domain.CombineCancelled).
		WillReturnRows(testutil.CountRows(149))
	mock.ExpectQuery(`SELECT (.+) FROM combine_registrations WHERE athlete_id = \$1 AND combine_event_id = \$2 FOR UPDATE`).
		WithArgs("ath-1", "cb-1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO combine_registrations`).
		WillReturnError(duplicateKeyError())
	mock.ExpectRollback()

	err = repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		n, err := repo.CountActiveRegistrationsTx(ctx, tx, "cb-1")
		require.NoError(t, err)
		assert.Equal(t, 149, n)

		_, err = repo.GetRegistrationTx(ctx, tx, "cb-1", "ath-1")
		assert.True(t, domain.IsNotFound(err))

		return repo.CreateRegistrationTx(ctx, tx, &domain.CombineRegistration{
			CombineEventID: "cb-1", OrganizationID: "org-1", AthleteID: "ath-1", Status: domain.CombineRegistered,
		})
	})
	var conflict *domain.ErrConflict
	require.ErrorAs(t, err, &conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCombineRepository_ListResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewCombineRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM combine_results WHERE combine_event_id = \$1 AND organization_id = \$2 ORDER BY recorded_at, id`).
		WithArgs("cb-1", "org-1").
		WillReturnRows(sqlmock.NewRows(combineResultColumns).
			AddRow("res-1", "cb-1", "org-1", "ath-1", 4.52, nil, nil, 4.1, 18, now))

	results, err := repo.ListResults(context.Background(), "org-1", "cb-1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].FortyYardDash)
	assert.InDelta(t, 4.52, *results[0].FortyYardDash, 0.001)
	assert.Nil(t, results[0].VerticalInches)
	require.NotNil(t, results[0].BenchReps)
	assert.Equal(t, 18, *results[0].BenchReps)
}
