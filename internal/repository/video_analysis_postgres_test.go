package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/repository/testutil"
)

func TestVideoAnalysisRepository_Complete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewVideoAnalysisRepository(db)
	now := time.Now().UTC()

	analysis := &domain.VideoAnalysis{
		ID: "v1", OrganizationID: "org-1", AthleteID: "a1",
		Status:      domain.AnalysisStatusCompleted,
		Components:  domain.GARComponents{Speed: 90, Agility: 85, Technique: 70, Endurance: 60, Decision: 75},
		GARScore:    77,
		Tier:        domain.GARTier("Proficient"),
		Strengths:   []string{"agility", "speed"},
		CompletedAt: &now,
	}

	t.Run("updates analysis and athlete together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE video_analyses SET status = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE athlete_profiles SET gar_score = \$1, updated_at = \$2 WHERE id = \$3 AND organization_id = \$4`).
			WithArgs(77, sqlmock.AnyArg(), "a1", "org-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Complete(context.Background(), analysis))
	})

	t.Run("missing athlete rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE video_analyses`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE athlete_profiles`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Complete(context.Background(), analysis)
		assert.True(t, domain.IsNotFound(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoAnalysisRepository_GetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewVideoAnalysisRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM video_analyses WHERE id = \$1 AND organization_id = \$2`).
		WithArgs("v1", "org-1").
		WillReturnRows(sqlmock.NewRows(videoAnalysisColumns).AddRow(
			"v1", "org-1", "a1", "https://cdn.example.com/v.mp4", "football", 42.5, "completed",
			90.0, 85.0, 70.0, 60.0, 75.0, 77, "Proficient",
			"{agility,speed}", "{endurance}", nil, now, now))

	v, err := repo.GetByID(context.Background(), "org-1", "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"agility", "speed"}, v.Strengths)
	assert.Equal(t, []string{"endurance"}, v.Improvements)
	assert.Equal(t, 85.0, v.Components.Agility)
	require.NotNil(t, v.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoAnalysisRepository_ListByAthlete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewVideoAnalysisRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM video_analyses WHERE athlete_id = \$1 AND organization_id = \$2 ORDER BY created_at DESC LIMIT 20`).
		WithArgs("a1", "org-1").
		WillReturnRows(sqlmock.NewRows(videoAnalysisColumns).AddRow(
			"v2", "org-1", "a1", "https://cdn.example.com/v2.mp4", "soccer", 0.0, "pending",
			0.0, 0.0, 0.0, 0.0, 0.0, 0, nil, "{}", "{}", nil, now, nil))

	list, err := repo.ListByAthlete(context.Background(), "org-1", "a1", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.AnalysisStatusPending, list[0].Status)
	assert.Empty(t, list[0].Strengths)
	assert.NotNil(t, list[0].Strengths)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoAnalysisRepository_MarkFailed(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewVideoAnalysisRepository(db)

	mock.ExpectExec(`UPDATE video_analyses SET status = \$1, error_message = \$2`).
		WithArgs(domain.AnalysisStatusFailed, "unreadable", sqlmock.AnyArg(), "v1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), "org-1", "v1", "unreadable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
