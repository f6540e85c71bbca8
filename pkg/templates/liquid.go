// Package templates renders campaign and notification content.
package templates

import (
	"context"
	"fmt"
	"time"

	"github.com/osteele/liquid"
)

const (
	DefaultRenderTimeout   = 5 * time.Second
	DefaultMaxTemplateSize = 64 * 1024
)

// Renderer renders liquid templates with a size cap and a timeout
type Renderer struct {
	engine  *liquid.Engine
	timeout time.Duration
	maxSize int
}

func NewRenderer() *Renderer {
	return &Renderer{
		engine:  liquid.NewEngine(),
		timeout: DefaultRenderTimeout,
		maxSize: DefaultMaxTemplateSize,
	}
}

// Render evaluates source with the given variables
func (r *Renderer) Render(ctx context.Context, source string, data map[string]interface{}) (string, error) {
	if len(source) > r.maxSize {
		return "", fmt.Errorf("template size (%d bytes) exceeds maximum allowed size (%d bytes)", len(source), r.maxSize)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: fmt.Errorf("panic during template rendering: %v", p)}
			}
		}()

		out, err := r.engine.ParseAndRenderString(source, data)
		if err != nil {
			done <- result{err: fmt.Errorf("template rendering failed: %w", err)}
			return
		}
		done <- result{out: out}
	}()

	select {
	case res := <-done:
		return res.out, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("template rendering timed out: %w", ctx.Err())
	}
}

// Validate parses source without rendering it
func (r *Renderer) Validate(source string) error {
	if len(source) > r.maxSize {
		return fmt.Errorf("template size (%d bytes) exceeds maximum allowed size (%d bytes)", len(source), r.maxSize)
	}
	if _, err := r.engine.ParseString(source); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	return nil
}
