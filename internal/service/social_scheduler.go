package service

import (
	"context"
	"sync"
	"time"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/tracing"
)

// DuePublisher publishes scheduled posts whose time has come
type DuePublisher interface {
	PublishDue(ctx context.Context, limit int) (int, error)
}

// SocialScheduler ticks the social publisher in the background
type SocialScheduler struct {
	publisher   DuePublisher
	settings    domain.SettingRepository
	logger      logger.Logger
	interval    time.Duration
	batchSize   int
	stopChan    chan struct{}
	stoppedChan chan struct{}
	mu          sync.Mutex
	running     bool
}

func NewSocialScheduler(
	publisher DuePublisher,
	settings domain.SettingRepository,
	logger logger.Logger,
	interval time.Duration,
	batchSize int,
) *SocialScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if batchSize <= 0 {
		batchSize = 25
	}
	return &SocialScheduler{
		publisher:   publisher,
		settings:    settings,
		logger:      logger,
		interval:    interval,
		batchSize:   batchSize,
		stopChan:    make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

func (s *SocialScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn("Social scheduler already running")
		return
	}
	s.running = true
	s.mu.Unlock()

	s.logger.WithField("interval", s.interval).
		WithField("batch_size", s.batchSize).
		Info("Starting social post scheduler")

	go s.run(ctx)
}

// Stop waits up to five seconds for the loop to exit
func (s *SocialScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	select {
	case <-s.stoppedChan:
		s.logger.Info("Social scheduler stopped")
	case <-time.After(5 * time.Second):
		s.logger.Warn("Social scheduler stop timeout exceeded")
	}
}

func (s *SocialScheduler) run(ctx context.Context) {
	defer close(s.stoppedChan)
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Social scheduler context cancelled")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *SocialScheduler) tick(ctx context.Context) {
	tickCtx, span := tracing.StartServiceSpan(ctx, "SocialScheduler", "tick")
	defer tracing.EndSpan(span, nil)

	start := time.Now()
	processed, err := s.publisher.PublishDue(tickCtx, s.batchSize)
	elapsed := time.Since(start)
	if err != nil {
		tracing.MarkSpanError(tickCtx, err)
		s.logger.WithField("error", err.Error()).
			WithField("elapsed", elapsed).
			Error("Failed to publish due posts")
		return
	}
	if s.settings != nil {
		if err := s.settings.SetLastSchedulerRun(tickCtx); err != nil {
			s.logger.WithField("error", err.Error()).Warn("Failed to record scheduler run")
		}
	}
	s.logger.WithField("processed", processed).
		WithField("elapsed", elapsed).
		Debug("Social scheduler tick completed")
}

func (s *SocialScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
