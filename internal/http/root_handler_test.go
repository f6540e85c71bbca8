package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Go4ItSports/go4it/pkg/logger"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestRootHandler(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		path       string
		wantStatus int
		wantBody   string
	}{
		{"api root", fakePinger{}, "/api", http.StatusOK, "api running"},
		{"unknown api path", fakePinger{}, "/api/nope", http.StatusNotFound, "Not found"},
		{"healthy", fakePinger{}, "/healthz", http.StatusOK, "ok"},
		{"database down", fakePinger{err: errors.New("refused")}, "/healthz", http.StatusServiceUnavailable, "unavailable"},
		{"config script", fakePinger{}, "/config.js", http.StatusOK, "https://api.go4it.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRootHandler(tt.pinger, "https://api.go4it.test", "1.0.0", logger.NewMockLogger(t))
			mux := http.NewServeMux()
			handler.RegisterRoutes(mux)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody), rec.Body.String())
		})
	}
}
