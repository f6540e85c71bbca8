package migrations

import (
	"context"
	"database/sql"

	"github.com/Go4ItSports/go4it/config"
)

// DBExecutor is satisfied by *sql.DB and *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Migration upgrades the schema to a major version. All organizations share
// one database, so a migration runs once inside a single transaction.
type Migration interface {
	GetMajorVersion() float64
	ShouldRestartServer() bool
	Up(ctx context.Context, cfg *config.Config, db DBExecutor) error
}

type MigrationManager interface {
	GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, error, bool)
	SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error
	RunMigrations(ctx context.Context, cfg *config.Config, db *sql.DB) error
}

type MigrationRegistry interface {
	Register(migration Migration)
	GetMigrations() []Migration
	GetMigration(version float64) (Migration, bool)
}
