package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "warn")

	log.Info("hidden message")
	assert.Empty(t, buf.String())

	log.Warn("visible message")
	assert.Contains(t, buf.String(), "visible message")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "debug")

	log.WithField("athlete_id", "ath_1").Info("scored")

	assert.Contains(t, buf.String(), `"athlete_id":"ath_1"`)
	assert.Contains(t, buf.String(), "scored")
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "debug")

	child := log.WithFields(map[string]interface{}{"org": "org_1", "count": 3})
	child.Error("child line")
	assert.Contains(t, buf.String(), `"org":"org_1"`)
	assert.Contains(t, buf.String(), `"count":3`)

	buf.Reset()
	log.Error("parent line")
	assert.NotContains(t, buf.String(), "org_1")
}

func TestTestLogger(t *testing.T) {
	log := NewMockLogger(t)
	log.Info("info")
	log.WithField("k", "v").Debug("debug")
	assert.NotNil(t, NewMockLogger())
}
