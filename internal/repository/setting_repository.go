package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// SQLSettingRepository stores system wide key/value settings
type SQLSettingRepository struct {
	systemDB *sql.DB
}

// NewSQLSettingRepository creates a new SQLSettingRepository
func NewSQLSettingRepository(db *sql.DB) *SQLSettingRepository {
	return &SQLSettingRepository{
		systemDB: db,
	}
}

var _ domain.SettingRepository = (*SQLSettingRepository)(nil)

// Get retrieves a setting by key
func (r *SQLSettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query, args, err := psql.Select("key", "value", "created_at", "updated_at").
		From("settings").
		Where("key = ?", key).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var setting domain.Setting
	err = r.systemDB.QueryRowContext(ctx, query, args...).
		Scan(&setting.Key, &setting.Value, &setting.CreatedAt, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrSettingNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return &setting, nil
}

// Set creates or updates a setting
func (r *SQLSettingRepository) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	_, err := execBuilder(ctx, r.systemDB, psql.Insert("settings").
		Columns("key", "value", "created_at", "updated_at").
		Values(key, value, now, now).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"))
	if err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}
	return nil
}

// Delete removes a setting by key
func (r *SQLSettingRepository) Delete(ctx context.Context, key string) error {
	result, err := execBuilder(ctx, r.systemDB, psql.Delete("settings").Where("key = ?", key))
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return &domain.ErrSettingNotFound{Key: key}
	}
	return nil
}

// List retrieves all settings ordered by key
func (r *SQLSettingRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	query, args, err := psql.Select("key", "value", "created_at", "updated_at").
		From("settings").
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []*domain.Setting
	for rows.Next() {
		setting := &domain.Setting{}
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.CreatedAt, &setting.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// SetLastSchedulerRun stamps the current time for the social scheduler
func (r *SQLSettingRepository) SetLastSchedulerRun(ctx context.Context) error {
	return r.Set(ctx, domain.SettingLastSchedulerRun, time.Now().UTC().Format(time.RFC3339))
}

// GetLastSchedulerRun returns nil without error when the scheduler never ran
func (r *SQLSettingRepository) GetLastSchedulerRun(ctx context.Context) (*time.Time, error) {
	setting, err := r.Get(ctx, domain.SettingLastSchedulerRun)
	if err != nil {
		var notFound *domain.ErrSettingNotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}

	timestamp, err := time.Parse(time.RFC3339, setting.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last scheduler run: %w", err)
	}
	return &timestamp, nil
}
