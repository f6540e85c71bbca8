package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/internal/service"
)

func TestRequireAuth(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "coach@example.com"}
	claims := &domain.TokenClaims{UserID: "user-1", SessionID: "sess-1", Type: domain.UserTypeUser, ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name       string
		header     string
		setup      func(auth *mocks.MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(auth *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header is required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setup:      func(auth *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization header format",
		},
		{
			name:   "bad token",
			header: "Bearer nope",
			setup: func(auth *mocks.MockAuthService) {
				auth.EXPECT().ParseUserAuthToken("nope").Return(nil, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:   "expired session",
			header: "Bearer tok",
			setup: func(auth *mocks.MockAuthService) {
				auth.EXPECT().ParseUserAuthToken("tok").Return(claims, nil)
				auth.EXPECT().VerifyUserSession(gomock.Any(), "user-1", "sess-1").Return(nil, service.ErrSessionExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Session expired",
		},
		{
			name:   "store failure",
			header: "Bearer tok",
			setup: func(auth *mocks.MockAuthService) {
				auth.EXPECT().ParseUserAuthToken("tok").Return(claims, nil)
				auth.EXPECT().VerifyUserSession(gomock.Any(), "user-1", "sess-1").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal server error",
		},
		{
			name:   "valid",
			header: "Bearer tok",
			setup: func(auth *mocks.MockAuthService) {
				auth.EXPECT().ParseUserAuthToken("tok").Return(claims, nil)
				auth.EXPECT().VerifyUserSession(gomock.Any(), "user-1", "sess-1").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthService(ctrl)
			tt.setup(auth)

			var reached bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				assert.Equal(t, "user-1", r.Context().Value(domain.UserIDKey))
				assert.Equal(t, "sess-1", r.Context().Value(domain.SessionIDKey))
				assert.Equal(t, "user", r.Context().Value(domain.UserTypeKey))
				assert.Same(t, user, r.Context().Value(domain.AuthUserKey))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users.me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			NewAuthMiddleware(auth).RequireAuth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
