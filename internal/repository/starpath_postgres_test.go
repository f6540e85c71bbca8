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

func setupStarPathMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *StarPathRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewStarPathRepository(db).(*StarPathRepository)
	return db, mock, repo
}

func TestStarPathRepository_LockProgressTx(t *testing.T) {
	db, mock, repo := setupStarPathMock(t)
	defer func() { _ = db.Close() }()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO starpath_progress (.+) ON CONFLICT \(athlete_id\) DO NOTHING`).
		WithArgs("a1", "org-1", 0, 1, 0, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM starpath_progress WHERE athlete_id = \$1 AND organization_id = \$2 FOR UPDATE`).
		WithArgs("a1", "org-1").
		WillReturnRows(sqlmock.NewRows(progressColumns).AddRow("a1", "org-1", 350, 3, 4, 9, now, now))
	mock.ExpectCommit()

	var got *domain.StarPathProgress
	err := repo.WithTransaction(context.Background(), func(tx *sql.Tx) error {
		var err error
		got, err = repo.LockProgressTx(context.Background(), tx, "org-1", "a1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 350, got.TotalXP)
	assert.Equal(t, 3, got.Level)
	require.NotNil(t, got.LastActivityDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarPathRepository_UnlockAchievementTx(t *testing.T) {
	db, mock, repo := setupStarPathMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"first unlock", 1, true},
		{"already unlocked", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO achievements (.+) ON CONFLICT \(athlete_id, code\) DO NOTHING`).
				WithArgs(sqlmock.AnyArg(), "a1", domain.AchievementCode("first_steps"), "First Steps", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			var unlocked bool
			err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
				var err error
				unlocked, err = repo.UnlockAchievementTx(ctx, tx, &domain.Achievement{AthleteID: "a1", Code: "first_steps", Title: "First Steps"})
				return err
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, unlocked)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarPathRepository_SaveProgressTx(t *testing.T) {
	db, mock, repo := setupStarPathMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE starpath_progress SET total_xp = \$1, level = \$2, current_streak = \$3, longest_streak = \$4, last_activity_date = \$5, updated_at = \$6 WHERE athlete_id = \$7`).
		WithArgs(400, 3, 2, 5, day, sqlmock.AnyArg(), "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		return repo.SaveProgressTx(ctx, tx, &domain.StarPathProgress{
			AthleteID: "a1", TotalXP: 400, Level: 3, CurrentStreak: 2, LongestStreak: 5, LastActivityDate: &day,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarPathRepository_Leaderboard(t *testing.T) {
	db, mock, repo := setupStarPathMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT (.+) FROM starpath_progress p JOIN athlete_profiles a ON a.id = p.athlete_id WHERE p.organization_id = \$1 ORDER BY p.total_xp DESC, p.updated_at, p.athlete_id LIMIT 10`).
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"athlete_id", "first_name", "last_name", "sport", "total_xp", "level"}).
			AddRow("a1", "Sam", "Lee", "soccer", 900, 4).
			AddRow("a2", "Ana", "Diaz", "track", 300, 3))

	entries, err := repo.Leaderboard(context.Background(), "org-1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStarPathRepository_GetProgressNotFound(t *testing.T) {
	db, mock, repo := setupStarPathMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT (.+) FROM starpath_progress`).WillReturnError(sql.ErrNoRows)
	_, err := repo.GetProgress(context.Background(), "org-1", "a1")
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
