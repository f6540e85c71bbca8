package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrSettingNotFound_Error(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{SettingDBVersion, "setting not found: db_version"},
		{"", "setting not found: "},
		{"key with spaces", "setting not found: key with spaces"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, (&ErrSettingNotFound{Key: tt.key}).Error())
		})
	}
}

func TestErrSettingNotFound_As(t *testing.T) {
	err := fmt.Errorf("loading scheduler state: %w", &ErrSettingNotFound{Key: SettingLastSchedulerRun})

	var notFound *ErrSettingNotFound
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, SettingLastSchedulerRun, notFound.Key)
}
