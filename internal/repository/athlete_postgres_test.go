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

func athleteRows() *sqlmock.Rows {
	return sqlmock.NewRows(athleteColumns)
}

func addAthleteRow(rows *sqlmock.Rows, id string, gar interface{}) *sqlmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(id, "org-1", nil, "Jordan", "Miles", "jm@example.com", "football", "QB",
		2027, "Central High", "Austin", "TX", 74, 195, 3.6, nil, gar, false, now, now)
}

func TestAthleteRepository_Create(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAthleteRepository(db)

	athlete := &domain.AthleteProfile{OrganizationID: "org-1", FirstName: "Jordan", LastName: "Miles", Sport: "football"}
	mock.ExpectExec(`INSERT INTO athlete_profiles`).WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), athlete))
	assert.NotEmpty(t, athlete.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAthleteRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAthleteRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM athlete_profiles WHERE id = \$1 AND organization_id = \$2`).
		WithArgs("a1", "org-1").
		WillReturnRows(addAthleteRow(athleteRows(), "a1", 88))

	a, err := repo.GetByID(context.Background(), "org-1", "a1")
	require.NoError(t, err)
	assert.Equal(t, 74, a.HeightInches)
	require.NotNil(t, a.GARScore)
	assert.Equal(t, 88, *a.GARScore)
	assert.Nil(t, a.UserID)

	mock.ExpectQuery(`SELECT (.+) FROM athlete_profiles`).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "org-1", "ghost")
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAthleteRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAthleteRepository(db)

	filter := domain.AthleteFilter{OrganizationID: "org-1", Sport: "Football", MinGAR: 80, Search: "mil"}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM athlete_profiles WHERE organization_id = \$1 AND sport = \$2 AND gar_score >= \$3 AND \(first_name ILIKE \$4 OR last_name ILIKE \$5`).
		WithArgs("org-1", "football", 80, "%mil%", "%mil%", "%mil%", "%mil%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM athlete_profiles WHERE (.+) ORDER BY last_name, first_name, id LIMIT 50 OFFSET 0`).
		WillReturnRows(addAthleteRow(athleteRows(), "a1", 91))

	athletes, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, athletes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAthleteRepository_GARStats(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAthleteRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(AVG\(gar_score\), 0\) FROM athlete_profiles WHERE organization_id = \$1`).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg"}).AddRow(12, 76.5))

	count, avg, err := repo.GARStats(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.InDelta(t, 76.5, avg, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAthleteRepository_TopByGAR(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAthleteRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM athlete_profiles WHERE organization_id = \$1 AND gar_score IS NOT NULL ORDER BY gar_score DESC, last_name, id LIMIT 5`).
		WithArgs("org-1").
		WillReturnRows(addAthleteRow(addAthleteRow(athleteRows(), "a1", 95), "a2", 90))

	top, err := repo.TopByGAR(context.Background(), "org-1", 5)
	require.NoError(t, err)
	assert.Len(t, top, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAthleteRepository_UpdateGARScore(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewAthleteRepository(db)

	mock.ExpectExec(`UPDATE athlete_profiles SET gar_score = \$1, updated_at = \$2 WHERE id = \$3 AND organization_id = \$4`).
		WithArgs(84, sqlmock.AnyArg(), "a1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateGARScore(context.Background(), "org-1", "a1", 84))
	assert.NoError(t, mock.ExpectationsWereMet())
}
