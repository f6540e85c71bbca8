package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the configured origins, or any origin when none are set.
// Credentials are only allowed for an explicit origin list.
func CORS(origins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Webhook-Id", "Webhook-Timestamp", "Webhook-Signature"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         600,
	}
	if len(origins) > 0 {
		opts.AllowedOrigins = origins
		opts.AllowCredentials = true
	}
	return cors.New(opts).Handler
}
