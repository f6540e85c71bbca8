package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_setting_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain SettingRepository

const (
	SettingDBVersion        = "db_version"
	SettingLastSchedulerRun = "last_scheduler_run"
)

// Setting is a system wide key/value pair
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*Setting, error)

	// Set creates or updates a setting
	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error

	List(ctx context.Context) ([]*Setting, error)

	// SetLastSchedulerRun records the time of the last social scheduler tick
	SetLastSchedulerRun(ctx context.Context) error

	// GetLastSchedulerRun returns nil when the scheduler never ran
	GetLastSchedulerRun(ctx context.Context) (*time.Time, error)
}

// ErrSettingNotFound is returned when a setting is not found
type ErrSettingNotFound struct {
	Key string
}

func (e *ErrSettingNotFound) Error() string {
	return "setting not found: " + e.Key
}
