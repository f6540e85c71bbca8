package database

import (
	"errors"
	"testing"

	"github.com/Go4ItSports/go4it/internal/database/schema"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectSchema(mock sqlmock.Sqlmock) {
	for range schema.TableDefinitions {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for range schema.IndexDefinitions {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestInitializeDatabase(t *testing.T) {
	t.Run("creates tables and indexes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)

		require.NoError(t, InitializeDatabase(db, ""))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates root user if not exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("admin@go4it.test").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "admin@go4it.test", "Root User", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, InitializeDatabase(db, "  Admin@Go4it.test "))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips existing root user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, InitializeDatabase(db, "admin@go4it.test"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("table creation fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

		err = InitializeDatabase(db, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
	})

	t.Run("root user insert fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("duplicate key"))

		err = InitializeDatabase(db, "admin@go4it.test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create root user")
	})
}
