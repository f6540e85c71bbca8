package logger

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

// TestLogger forwards log lines to testing.T so they only show up for failing tests
type TestLogger struct {
	T      *testing.T
	fields map[string]interface{}
}

// NewTestLogger creates a logger bound to t
func NewTestLogger(t *testing.T) Logger {
	return &TestLogger{T: t}
}

func (l *TestLogger) logf(level, msg string) {
	if l.T == nil {
		return
	}
	l.T.Helper()
	l.T.Logf("[%s] %s%s", level, msg, l.formatFields())
}

func (l *TestLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, l.fields[k]))
	}
	return " " + strings.Join(parts, " ")
}

func (l *TestLogger) Debug(msg string) { l.logf("DEBUG", msg) }
func (l *TestLogger) Info(msg string)  { l.logf("INFO", msg) }
func (l *TestLogger) Warn(msg string)  { l.logf("WARN", msg) }
func (l *TestLogger) Error(msg string) { l.logf("ERROR", msg) }
func (l *TestLogger) Fatal(msg string) { l.logf("FATAL", msg) }

func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{T: l.T, fields: merged}
}

// NewMockLogger creates a logger for tests, with or without a testing.T
func NewMockLogger(t ...*testing.T) Logger {
	if len(t) > 0 {
		return NewTestLogger(t[0])
	}
	return NewTestLogger(nil)
}
