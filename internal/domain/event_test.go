package domain

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventBus_Subscribe(t *testing.T) {
	bus := NewInMemoryEventBus()
	handler := func(ctx context.Context, payload EventPayload) {}
	another := func(ctx context.Context, payload EventPayload) {}

	bus.Subscribe(EventStarPathLevelUp, handler)
	bus.Subscribe(EventStarPathLevelUp, another)
	bus.Subscribe(EventAnalysisCompleted, handler)

	assert.Equal(t, 2, bus.SubscriberCount(EventStarPathLevelUp))
	assert.Equal(t, 1, bus.SubscriberCount(EventAnalysisCompleted))
	assert.Equal(t, 0, bus.SubscriberCount(EventPaymentSucceeded))
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus()
	received := make(chan EventPayload, 1)
	bus.Subscribe(EventAnalysisCompleted, func(ctx context.Context, payload EventPayload) {
		received <- payload
	})

	event := EventPayload{
		Type:           EventAnalysisCompleted,
		OrganizationID: "org-1",
		EntityID:       "analysis-1",
		Data:           map[string]interface{}{"gar_score": 87},
	}
	bus.Publish(context.Background(), event)

	select {
	case got := <-received:
		assert.Equal(t, event.OrganizationID, got.OrganizationID)
		assert.Equal(t, 87, got.Data["gar_score"])
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestInMemoryEventBus_HandlerOutlivesRequestContext(t *testing.T) {
	bus := NewInMemoryEventBus()
	errCh := make(chan error, 1)
	bus.Subscribe(EventStarPathAchievement, func(ctx context.Context, payload EventPayload) {
		time.Sleep(20 * time.Millisecond)
		errCh <- ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, EventPayload{Type: EventStarPathAchievement})
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestInMemoryEventBus_PublishWithAck(t *testing.T) {
	t.Run("no subscribers acks immediately", func(t *testing.T) {
		bus := NewInMemoryEventBus()
		done := make(chan error, 1)
		bus.PublishWithAck(context.Background(), EventPayload{Type: EventCampaignCompleted}, func(err error) {
			done <- err
		})
		assert.NoError(t, <-done)
	})

	t.Run("panic is recovered and reported", func(t *testing.T) {
		bus := NewInMemoryEventBus()
		var mu sync.Mutex
		var panicked []interface{}
		bus.OnPanic(func(event EventPayload, recovered interface{}) {
			mu.Lock()
			defer mu.Unlock()
			panicked = append(panicked, recovered)
		})

		var calls sync.WaitGroup
		calls.Add(1)
		bus.Subscribe(EventStarPathLevelUp, func(ctx context.Context, payload EventPayload) {
			panic("boom")
		})
		bus.Subscribe(EventStarPathLevelUp, func(ctx context.Context, payload EventPayload) {
			calls.Done()
		})

		done := make(chan error, 1)
		bus.PublishWithAck(context.Background(), EventPayload{Type: EventStarPathLevelUp}, func(err error) {
			done <- err
		})

		select {
		case err := <-done:
			require.Error(t, err)
			assert.Contains(t, err.Error(), "panic in event handler: boom")
		case <-time.After(time.Second):
			t.Fatal("ack not received")
		}
		calls.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []interface{}{"boom"}, panicked)
	})
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus()
	first := func(ctx context.Context, payload EventPayload) {}
	second := func(ctx context.Context, payload EventPayload) {}

	bus.Subscribe(EventPaymentSucceeded, first)
	bus.Subscribe(EventPaymentSucceeded, second)
	bus.Unsubscribe(EventPaymentSucceeded, first)
	assert.Equal(t, 1, bus.SubscriberCount(EventPaymentSucceeded))

	bus.Unsubscribe(EventPaymentSucceeded, first)
	assert.Equal(t, 1, bus.SubscriberCount(EventPaymentSucceeded))

	bus.Unsubscribe(EventRegistrationCreated, second)
	assert.Equal(t, 1, bus.SubscriberCount(EventPaymentSucceeded))
}
