package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/app"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

// fakeApp overrides the lifecycle methods runServer uses
type fakeApp struct {
	app.AppInterface

	initErr     error
	startErr    error
	shutdownErr error
	blockStart  bool

	mu           sync.Mutex
	stopped      chan struct{}
	shutdownHits int
	timeout      time.Duration
}

func newFakeApp() *fakeApp {
	return &fakeApp{stopped: make(chan struct{})}
}

func (f *fakeApp) Initialize() error { return f.initErr }

func (f *fakeApp) Start() error {
	if f.blockStart {
		<-f.stopped
		return http.ErrServerClosed
	}
	return f.startErr
}

func (f *fakeApp) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdownHits++
	f.mu.Unlock()
	close(f.stopped)
	return f.shutdownErr
}

func (f *fakeApp) SetShutdownTimeout(d time.Duration) {
	f.mu.Lock()
	f.timeout = d
	f.mu.Unlock()
}

func (f *fakeApp) GetActiveRequestCount() int64 { return 0 }

func factory(f *fakeApp) NewAppFunc {
	return func(cfg *config.Config, opts ...app.AppOption) app.AppInterface {
		return f
	}
}

// withSignal makes the first signal.Notify registration receive sig immediately
func withSignal(t *testing.T, sig os.Signal) {
	t.Helper()
	original := signalNotify
	var once sync.Once
	signalNotify = func(c chan<- os.Signal, _ ...os.Signal) {
		once.Do(func() { c <- sig })
	}
	t.Cleanup(func() { signalNotify = original })
}

func TestRunServer(t *testing.T) {
	cfg := &config.Config{}

	t.Run("initialize error", func(t *testing.T) {
		f := newFakeApp()
		f.initErr = errors.New("db down")

		err := runServer(cfg, logger.NewMockLogger(t), factory(f))

		assert.EqualError(t, err, "db down")
	})

	t.Run("start error", func(t *testing.T) {
		original := signalNotify
		signalNotify = func(chan<- os.Signal, ...os.Signal) {}
		defer func() { signalNotify = original }()

		f := newFakeApp()
		f.startErr = errors.New("address in use")

		err := runServer(cfg, logger.NewMockLogger(t), factory(f))

		assert.EqualError(t, err, "address in use")
	})

	t.Run("graceful shutdown on signal", func(t *testing.T) {
		withSignal(t, syscall.SIGTERM)
		f := newFakeApp()
		f.blockStart = true

		err := runServer(cfg, logger.NewMockLogger(t), factory(f))

		require.NoError(t, err)
		assert.Equal(t, 1, f.shutdownHits)
		assert.Equal(t, appShutdownTimeout, f.timeout)
	})

	t.Run("shutdown error is returned", func(t *testing.T) {
		withSignal(t, os.Interrupt)
		f := newFakeApp()
		f.blockStart = true
		f.shutdownErr = errors.New("shutdown timeout exceeded")

		err := runServer(cfg, logger.NewMockLogger(t), factory(f))

		assert.EqualError(t, err, "shutdown timeout exceeded")
	})
}

func TestConfigLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}
