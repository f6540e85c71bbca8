package ratelimiter

import (
	"strings"
	"sync"
	"time"
)

// Policy is the limit applied to every key of a namespace
type Policy struct {
	MaxRequests int
	Window      time.Duration
}

type window struct {
	start time.Time
	count int
}

// RateLimiter is an in-memory fixed-window counter keyed by namespace and key.
//
//	rl := ratelimiter.NewRateLimiter()
//	rl.SetPolicy("api", 120, time.Minute)
//	if !rl.Allow("api", clientIP) {
//	    // 429
//	}
//
// Windows whose period has elapsed are evicted by a background sweeper, so
// memory is bounded by the number of keys seen during one window.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	policies map[string]Policy
	now      func() time.Time

	sweepEvery time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// Option customises a RateLimiter
type Option func(*RateLimiter)

// WithClock replaces time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// WithSweepInterval changes how often expired windows are evicted
func WithSweepInterval(d time.Duration) Option {
	return func(rl *RateLimiter) {
		rl.sweepEvery = d
	}
}

// NewRateLimiter creates a limiter and starts its sweeper. Call Stop when done.
func NewRateLimiter(opts ...Option) *RateLimiter {
	rl := &RateLimiter{
		windows:    make(map[string]*window),
		policies:   make(map[string]Policy),
		now:        time.Now,
		sweepEvery: time.Minute,
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.sweep()

	return rl
}

// SetPolicy configures the limit of a namespace
func (rl *RateLimiter) SetPolicy(namespace string, maxRequests int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = Policy{MaxRequests: maxRequests, Window: window}
}

// Allow records a request and reports whether it fits in the current window.
// Namespaces without a policy are denied.
func (rl *RateLimiter) Allow(namespace, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, ok := rl.policies[namespace]
	if !ok || policy.MaxRequests <= 0 {
		return false
	}

	now := rl.now()
	k := compositeKey(namespace, key)
	w, ok := rl.windows[k]
	if !ok || !now.Before(w.start.Add(policy.Window)) {
		rl.windows[k] = &window{start: now, count: 1}
		return true
	}

	if w.count >= policy.MaxRequests {
		return false
	}
	w.count++
	return true
}

// Remaining returns how many requests are left in the current window
func (rl *RateLimiter) Remaining(namespace, key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, ok := rl.policies[namespace]
	if !ok {
		return 0
	}
	w, ok := rl.windows[compositeKey(namespace, key)]
	if !ok || !rl.now().Before(w.start.Add(policy.Window)) {
		return policy.MaxRequests
	}
	if w.count >= policy.MaxRequests {
		return 0
	}
	return policy.MaxRequests - w.count
}

// Reset forgets the window of a key, e.g. after a successful sign-in
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.windows, compositeKey(namespace, key))
}

// GetRemainingWindow returns the number of seconds until the current window
// of the key closes, rounded up. It returns 0 when there is no open window.
func (rl *RateLimiter) GetRemainingWindow(namespace, key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, ok := rl.policies[namespace]
	if !ok {
		return 0
	}
	w, ok := rl.windows[compositeKey(namespace, key)]
	if !ok {
		return 0
	}

	remaining := w.start.Add(policy.Window).Sub(rl.now())
	if remaining <= 0 {
		return 0
	}
	secs := int(remaining / time.Second)
	if remaining%time.Second != 0 {
		secs++
	}
	return secs
}

// Size returns the number of tracked windows
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

// EvictExpired drops every window whose period has elapsed
func (rl *RateLimiter) EvictExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for k, w := range rl.windows {
		ns := k
		if i := strings.IndexByte(k, ':'); i >= 0 {
			ns = k[:i]
		}
		policy, ok := rl.policies[ns]
		if !ok || !now.Before(w.start.Add(policy.Window)) {
			delete(rl.windows, k)
		}
	}
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.EvictExpired()
		case <-rl.stop:
			return
		}
	}
}

// Stop terminates the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
}

func compositeKey(namespace, key string) string {
	return namespace + ":" + key
}
