package domain

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"
)

//go:generate mockgen -destination mocks/mock_event_bus.go -package mocks github.com/Go4ItSports/go4it/internal/domain EventBus

// EventType defines the type of an event
type EventType string

const (
	EventAnalysisCompleted    EventType = "analysis.completed"
	EventStarPathLevelUp      EventType = "starpath.level_up"
	EventStarPathAchievement  EventType = "starpath.achievement"
	EventEnrollmentCompleted  EventType = "enrollment.completed"
	EventEnrollmentPromoted   EventType = "enrollment.promoted"
	EventPaymentSucceeded     EventType = "payment.succeeded"
	EventCampaignCompleted    EventType = "campaign.completed"
	EventRegistrationCreated  EventType = "registration.created"
	EventDashboardInvalidated EventType = "dashboard.invalidated"
)

// EventPayload represents the data associated with an event
type EventPayload struct {
	Type           EventType              `json:"type"`
	OrganizationID string                 `json:"organization_id"`
	EntityID       string                 `json:"entity_id"`
	Data           map[string]interface{} `json:"data,omitempty"`
}

// EventHandler is a function that handles events
type EventHandler func(ctx context.Context, payload EventPayload)

// EventAckCallback is called once every handler finished or failed
type EventAckCallback func(err error)

// EventBus provides a way for services to publish and subscribe to events
type EventBus interface {
	// Publish sends an event to all subscribers
	Publish(ctx context.Context, event EventPayload)

	// PublishWithAck sends an event and reports the aggregated handler outcome
	PublishWithAck(ctx context.Context, event EventPayload, callback EventAckCallback)

	// Subscribe registers a handler for a specific event type
	Subscribe(eventType EventType, handler EventHandler)

	// Unsubscribe removes a handler for an event type
	Unsubscribe(eventType EventType, handler EventHandler)
}

// InMemoryEventBus is a simple in-memory implementation of the EventBus
type InMemoryEventBus struct {
	subscribers    map[EventType][]EventHandler
	mu             sync.RWMutex
	handlerTimeout time.Duration
	onPanic        func(event EventPayload, recovered interface{})
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers:    make(map[EventType][]EventHandler),
		handlerTimeout: 10 * time.Second,
		onPanic: func(event EventPayload, recovered interface{}) {
			fmt.Printf("ERROR: panic in %s handler: %v\n", event.Type, recovered)
		},
	}
}

// OnPanic replaces the hook called when a handler panics
func (b *InMemoryEventBus) OnPanic(fn func(event EventPayload, recovered interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPanic = fn
}

// Publish sends an event to all subscribers
func (b *InMemoryEventBus) Publish(ctx context.Context, event EventPayload) {
	b.PublishWithAck(ctx, event, nil)
}

// PublishWithAck runs every handler in its own goroutine.
// Handlers receive a context detached from the request so they outlive it.
func (b *InMemoryEventBus) PublishWithAck(ctx context.Context, event EventPayload, callback EventAckCallback) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	onPanic := b.onPanic
	b.mu.RUnlock()

	if len(handlers) == 0 {
		if callback != nil {
			callback(nil)
		}
		return
	}

	base := context.WithoutCancel(ctx)
	errCh := make(chan error, len(handlers))
	var wg sync.WaitGroup
	wg.Add(len(handlers))

	for _, handler := range handlers {
		go func(h EventHandler) {
			defer wg.Done()

			handlerCtx, cancel := context.WithTimeout(base, b.handlerTimeout)
			defer cancel()

			defer func() {
				if r := recover(); r != nil {
					if onPanic != nil {
						onPanic(event, r)
					}
					errCh <- fmt.Errorf("panic in event handler: %v", r)
				}
			}()

			h(handlerCtx, event)
		}(handler)
	}

	if callback == nil {
		return
	}

	go func() {
		wg.Wait()
		close(errCh)

		var errs []error
		for err := range errCh {
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			callback(nil)
			return
		}
		msg := fmt.Sprintf("%d errors occurred processing event", len(errs))
		for i, err := range errs {
			msg += fmt.Sprintf("\n  %d: %v", i+1, err)
		}
		callback(fmt.Errorf("%s", msg))
	}()
}

// Subscribe registers a handler for a specific event type
func (b *InMemoryEventBus) Subscribe(eventType EventType, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Unsubscribe removes a handler, matched by function pointer
func (b *InMemoryEventBus) Unsubscribe(eventType EventType, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	target := reflect.ValueOf(handler).Pointer()
	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if reflect.ValueOf(h).Pointer() == target {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

// SubscriberCount returns the number of handlers for an event type
func (b *InMemoryEventBus) SubscriberCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[eventType])
}
