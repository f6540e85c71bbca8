package tracing

import (
	"context"
	"net/http"

	"go.opencensus.io/trace"
)

// Tracer is the seam services use for spans, so tests can swap it
type Tracer interface {
	StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span)
	EndSpan(span *trace.Span, err error)
	AddAttribute(ctx context.Context, key string, value interface{})
	MarkSpanError(ctx context.Context, err error)
	WrapHTTPClient(client *http.Client) *http.Client
}

// DefaultTracer delegates to the package level helpers
type DefaultTracer struct{}

func NewTracer() Tracer {
	return &DefaultTracer{}
}

func (t *DefaultTracer) StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return StartServiceSpan(ctx, serviceName, methodName)
}

func (t *DefaultTracer) EndSpan(span *trace.Span, err error) {
	EndSpan(span, err)
}

func (t *DefaultTracer) AddAttribute(ctx context.Context, key string, value interface{}) {
	AddAttribute(ctx, key, value)
}

func (t *DefaultTracer) MarkSpanError(ctx context.Context, err error) {
	MarkSpanError(ctx, err)
}

func (t *DefaultTracer) WrapHTTPClient(client *http.Client) *http.Client {
	return WrapHTTPClient(client)
}

var globalTracer Tracer = NewTracer()

// GetTracer returns the process wide tracer
func GetTracer() Tracer {
	return globalTracer
}

// SetTracer replaces the process wide tracer
func SetTracer(tracer Tracer) {
	globalTracer = tracer
}
