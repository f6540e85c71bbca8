package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/service"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// WriteJSONError writes {"error": message} with the given status code
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain errors to status codes. Anything unknown is
// logged and reported as a 500 with the fallback message.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, fallback string) {
	var (
		notFound   *domain.ErrNotFound
		validation domain.ValidationError
		permission *domain.PermissionError
		conflict   *domain.ErrConflict
		rejected   *domain.ErrCouponRejected
		limited    *domain.ErrRateLimited
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrInvalidToken):
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
	case errors.As(err, &rejected):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":  err.Error(),
			"reason": string(rejected.Reason),
		})
	case errors.As(err, &validation):
		WriteJSONError(w, validation.Message, http.StatusBadRequest)
	case errors.As(err, &permission):
		WriteJSONError(w, permission.Error(), http.StatusForbidden)
	case errors.As(err, &notFound):
		WriteJSONError(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &conflict):
		WriteJSONError(w, conflict.Error(), http.StatusConflict)
	case errors.As(err, &limited):
		w.Header().Set("Retry-After", strconv.Itoa(limited.RetryAfterSeconds()))
		WriteJSONError(w, limited.Error(), http.StatusTooManyRequests)
	default:
		log.WithField("error", err.Error()).Error(fallback)
		WriteJSONError(w, fallback, http.StatusInternalServerError)
	}
}

// decodeJSON reads a bounded JSON body, writing a 400 when it is malformed
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// orgAndID reads the organization_id and id query parameters
func orgAndID(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("organization_id"), q.Get("id")
}

// orgIDRequest is the body of the mutating endpoints that only name an entity
type orgIDRequest struct {
	OrganizationID string `json:"organization_id"`
	ID             string `json:"id"`
}

type orgRequest struct {
	OrganizationID string `json:"organization_id"`
}

// Middleware wraps a handler, e.g. authentication
type Middleware func(http.Handler) http.Handler
