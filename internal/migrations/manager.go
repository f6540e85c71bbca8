package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// ErrRestartRequired is returned when a migration asks for the server to be restarted
var ErrRestartRequired = errors.New("migration completed successfully - server restart required")

type Manager struct {
	logger      logger.Logger
	registry    MigrationRegistry
	codeVersion string
}

type ManagerOption func(*Manager)

// WithRegistry replaces the default registry
func WithRegistry(r MigrationRegistry) ManagerOption {
	return func(m *Manager) { m.registry = r }
}

// WithCodeVersion overrides config.VERSION
func WithCodeVersion(v string) ManagerOption {
	return func(m *Manager) { m.codeVersion = v }
}

func NewManager(logger logger.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		logger:      logger,
		registry:    DefaultRegistry,
		codeVersion: config.VERSION,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetCurrentDBVersion reads db_version from settings. The bool is false when
// the key has never been written.
func (m *Manager) GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, error, bool) {
	var raw string
	err := db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = 'db_version'").Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil, false
		}
		return 0, fmt.Errorf("failed to get current database version: %w", err), false
	}

	version, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid database version format '%s': %w", raw, err), false
	}
	return version, nil, true
}

func (m *Manager) SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error {
	versionStr := fmt.Sprintf("%.0f", version)
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('db_version', $1)
		ON CONFLICT (key) DO UPDATE SET
			value = $1,
			updated_at = CURRENT_TIMESTAMP
	`, versionStr)
	if err != nil {
		return fmt.Errorf("failed to set database version to %s: %w", versionStr, err)
	}
	m.logger.WithField("version", versionStr).Info("Database version updated")
	return nil
}

// RunMigrations applies every registered migration newer than db_version and
// not newer than the code version, then records the code version. A fresh
// database is stamped with the code version since InitializeDatabase already
// created the current schema.
func (m *Manager) RunMigrations(ctx context.Context, cfg *config.Config, db *sql.DB) error {
	m.logger.Info("Starting migration process")

	dbVersion, err, exists := m.GetCurrentDBVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current database version: %w", err)
	}

	codeVersion, err := ParseVersion(m.codeVersion)
	if err != nil {
		return fmt.Errorf("failed to get current code version: %w", err)
	}

	if !exists {
		m.logger.WithField("code_version", fmt.Sprintf("%.0f", codeVersion)).Info("First run detected, initializing database version")
		return m.SetCurrentDBVersion(ctx, db, codeVersion)
	}

	m.logger.WithFields(map[string]interface{}{
		"db_version":   fmt.Sprintf("%.0f", dbVersion),
		"code_version": fmt.Sprintf("%.0f", codeVersion),
	}).Info("Version comparison")

	if dbVersion >= codeVersion {
		m.logger.Info("Database is up to date, no migrations needed")
		return nil
	}

	var pending []Migration
	for _, migration := range m.registry.GetMigrations() {
		v := migration.GetMajorVersion()
		if v > dbVersion && v <= codeVersion {
			pending = append(pending, migration)
		}
	}

	restart := false
	for _, migration := range pending {
		if err := m.executeMigration(ctx, cfg, db, migration); err != nil {
			return fmt.Errorf("migration failed for version %.0f: %w", migration.GetMajorVersion(), err)
		}
		restart = restart || migration.ShouldRestartServer()
	}

	if err := m.SetCurrentDBVersion(ctx, db, codeVersion); err != nil {
		return fmt.Errorf("failed to update database version after migrations: %w", err)
	}

	m.logger.WithFields(map[string]interface{}{
		"version": fmt.Sprintf("%.0f", codeVersion),
		"applied": len(pending),
	}).Info("Migration process completed successfully")

	if restart {
		return ErrRestartRequired
	}
	return nil
}

func (m *Manager) executeMigration(ctx context.Context, cfg *config.Config, db *sql.DB, migration Migration) error {
	version := fmt.Sprintf("%.0f", migration.GetMajorVersion())
	m.logger.WithField("version", version).Info("Executing migration")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := migration.Up(ctx, cfg, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}

	m.logger.WithField("version", version).Info("Migration completed successfully")
	return nil
}
