package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type countingPublisher struct {
	calls int32
	err   error
}

func (p *countingPublisher) PublishDue(_ context.Context, limit int) (int, error) {
	atomic.AddInt32(&p.calls, 1)
	return limit, p.err
}

func (p *countingPublisher) count() int32 {
	return atomic.LoadInt32(&p.calls)
}

func TestNewSocialScheduler_Defaults(t *testing.T) {
	s := NewSocialScheduler(&countingPublisher{}, nil, logger.NewMockLogger(t), 0, 0)
	assert.Equal(t, time.Minute, s.interval)
	assert.Equal(t, 25, s.batchSize)
	assert.False(t, s.IsRunning())
}

func TestSocialScheduler_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingRepository(ctrl)
	settings.EXPECT().SetLastSchedulerRun(gomock.Any()).Return(nil).MinTimes(1)

	pub := &countingPublisher{}
	s := NewSocialScheduler(pub, settings, logger.NewMockLogger(t), 50*time.Millisecond, 10)

	s.Start(context.Background())
	assert.True(t, s.IsRunning())
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return pub.count() >= 2 }, time.Second, 10*time.Millisecond)
	s.Stop()
	assert.False(t, s.IsRunning())

	after := pub.count()
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, after, pub.count())
}

func TestSocialScheduler_ContextCancel(t *testing.T) {
	pub := &countingPublisher{}
	s := NewSocialScheduler(pub, nil, logger.NewMockLogger(t), time.Hour, 10)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	assert.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 5*time.Millisecond)
}

func TestSocialScheduler_FailedTickSkipsHeartbeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingRepository(ctrl)
	settings.EXPECT().SetLastSchedulerRun(gomock.Any()).Times(0)

	s := NewSocialScheduler(&countingPublisher{err: errors.New("db down")}, settings, logger.NewMockLogger(t), time.Hour, 5)
	s.tick(context.Background())
}
