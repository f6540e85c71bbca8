package middleware

import (
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// Tracing wraps the handler in an ochttp span named after the RPC route
func Tracing(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.FromContext(r.Context())
		if span == nil {
			next.ServeHTTP(w, r)
			return
		}
		span.AddAttributes(
			trace.StringAttribute("http.route", r.URL.Path),
			trace.StringAttribute("http.client_ip", ClientIP(r)),
		)
		if orgID := r.URL.Query().Get("organization_id"); orgID != "" {
			span.AddAttributes(trace.StringAttribute("go4it.organization_id", orgID))
		}
		if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
			span.AddAttributes(trace.StringAttribute("http.request_id", requestID))
		}
		next.ServeHTTP(&statusRecorder{ResponseWriter: w, span: span}, r)
	})

	return &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}
}

// statusRecorder flags spans of 5xx responses as errors
type statusRecorder struct {
	http.ResponseWriter
	span *trace.Span
}

func (s *statusRecorder) WriteHeader(code int) {
	if code >= http.StatusInternalServerError {
		s.span.SetStatus(trace.Status{Code: trace.StatusCodeInternal, Message: http.StatusText(code)})
	}
	s.ResponseWriter.WriteHeader(code)
}
