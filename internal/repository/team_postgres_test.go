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

func setupTeamMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *TeamRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewTeamRepository(db).(*TeamRepository)
}

func TestTeamRepository_JerseyTakenTx(t *testing.T) {
	db, mock, repo := setupTeamMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_rosters WHERE jersey_number = \$1 AND status = \$2 AND team_id = \$3$`).
		WithArgs(12, domain.RosterActive, "t1").
		WillReturnRows(testutil.CountRows(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_rosters WHERE jersey_number = \$1 AND status = \$2 AND team_id = \$3 AND id <> \$4`).
		WithArgs(12, domain.RosterActive, "t1", "e1").
		WillReturnRows(testutil.CountRows(0))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		taken, err := repo.JerseyTakenTx(ctx, tx, "t1", 12, "")
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.JerseyTakenTx(ctx, tx, "t1", 12, "e1")
		require.NoError(t, err)
		assert.False(t, taken)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_LockEntryTx(t *testing.T) {
	db, mock, repo := setupTeamMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT r.id, (.+) FROM team_rosters r JOIN teams t ON t.id = r.team_id WHERE r.id = \$1 AND t.organization_id = \$2 FOR UPDATE OF r`).
		WithArgs("e1", "org-1").
		WillReturnRows(sqlmock.NewRows(rosterColumns).AddRow("e1", "t1", "a1", 7, "WR", "active", now, now))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		e, err := repo.LockEntryTx(ctx, tx, "org-1", "e1")
		require.NoError(t, err)
		require.NotNil(t, e.JerseyNumber)
		assert.Equal(t, 7, *e.JerseyNumber)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_ListRoster(t *testing.T) {
	db, mock, repo := setupTeamMock(t)
	defer func() { _ = db.Close() }()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM team_rosters r JOIN athlete_profiles a ON a.id = r.athlete_id WHERE r.team_id = \$1 AND r.status = \$2 ORDER BY r.jersey_number NULLS LAST, a.last_name`).
		WithArgs("t1", domain.RosterActive).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, rosterColumns...), "first_name", "last_name")).
			AddRow("e1", "t1", "a1", nil, nil, "active", now, now, "Kai", "Reed"))

	roster, err := repo.ListRoster(context.Background(), "t1", false)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Nil(t, roster[0].JerseyNumber)
	assert.Equal(t, "Reed", roster[0].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepository_Delete(t *testing.T) {
	db, mock, repo := setupTeamMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM teams WHERE id = \$1 AND organization_id = \$2`).
		WithArgs("t1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM team_rosters WHERE team_id = \$1`).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 14))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "org-1", "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
