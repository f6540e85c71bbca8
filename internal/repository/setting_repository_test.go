package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/repository/testutil"
)

var settingColumns = []string{"key", "value", "created_at", "updated_at"}

func TestSettingRepository_Get(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewSQLSettingRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT key, value, created_at, updated_at FROM settings WHERE key = \$1`).
		WithArgs("db_version").
		WillReturnRows(sqlmock.NewRows(settingColumns).AddRow("db_version", "2", now, now))

	setting, err := repo.Get(context.Background(), "db_version")
	require.NoError(t, err)
	assert.Equal(t, "2", setting.Value)

	mock.ExpectQuery(`SELECT (.+) FROM settings`).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "missing")
	var notFound *domain.ErrSettingNotFound
	assert.ErrorAs(t, err, &notFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_Set(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewSQLSettingRepository(db)

	mock.ExpectExec(`INSERT INTO settings \(key,value,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("db_version", "2", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "db_version", "2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_LastSchedulerRun(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewSQLSettingRepository(db)
	ctx := context.Background()

	t.Run("set", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO settings`).
			WithArgs(domain.SettingLastSchedulerRun, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		require.NoError(t, repo.SetLastSchedulerRun(ctx))
	})

	t.Run("get", func(t *testing.T) {
		stamp := time.Now().UTC().Truncate(time.Second)
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key = \$1`).
			WithArgs(domain.SettingLastSchedulerRun).
			WillReturnRows(sqlmock.NewRows(settingColumns).
				AddRow(domain.SettingLastSchedulerRun, stamp.Format(time.RFC3339), stamp, stamp))

		got, err := repo.GetLastSchedulerRun(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stamp.Unix(), got.Unix())
	})

	t.Run("never ran", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings`).WillReturnError(sql.ErrNoRows)
		got, err := repo.GetLastSchedulerRun(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt value", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM settings`).
			WillReturnRows(sqlmock.NewRows(settingColumns).AddRow(domain.SettingLastSchedulerRun, "yesterday", now, now))
		_, err := repo.GetLastSchedulerRun(ctx)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_Delete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewSQLSettingRepository(db)

	mock.ExpectExec(`DELETE FROM settings WHERE key = \$1`).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "k"))

	mock.ExpectExec(`DELETE FROM settings`).WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 0))
	var notFound *domain.ErrSettingNotFound
	assert.ErrorAs(t, repo.Delete(context.Background(), "k"), &notFound)

	mock.ExpectExec(`DELETE FROM settings`).WillReturnError(errors.New("boom"))
	assert.Error(t, repo.Delete(context.Background(), "k"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()
	repo := NewSQLSettingRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT key, value, created_at, updated_at FROM settings ORDER BY key`).
		WillReturnRows(sqlmock.NewRows(settingColumns).
			AddRow("a", "1", now, now).
			AddRow("b", "2", now, now))

	settings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, settings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
