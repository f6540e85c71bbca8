package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/service"
)

// TokenVerifier is the part of the auth service the middleware needs
type TokenVerifier interface {
	ParseUserAuthToken(token string) (*domain.TokenClaims, error)
	VerifyUserSession(ctx context.Context, userID, sessionID string) (*domain.User, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequireAuth verifies the Bearer JWT and the session behind it, then stores
// the caller in the request context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "Authorization header is required")
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.verifier.ParseUserAuthToken(token)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) {
				unauthorized(w, "Session expired")
				return
			}
			unauthorized(w, "Invalid token")
			return
		}

		user, err := m.verifier.VerifyUserSession(r.Context(), claims.UserID, claims.SessionID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionExpired):
				unauthorized(w, "Session expired")
			case errors.Is(err, service.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
				unauthorized(w, "Invalid session")
			default:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
			return
		}

		ctx := context.WithValue(r.Context(), domain.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, domain.SessionIDKey, claims.SessionID)
		ctx = context.WithValue(ctx, domain.UserTypeKey, string(claims.Type))
		ctx = context.WithValue(ctx, domain.AuthUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
