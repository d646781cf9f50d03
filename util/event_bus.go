// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/backoffice/logging"
)

// Event is a domain fact published after the write that produced it has committed.
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler reacts to one event. A returned error is logged; it never reaches the publisher.
type EventHandler func(context.Context, Event) error

// HandlerError records which event a failed or panicking handler was delivering.
type HandlerError struct {
	EventType string
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %q: %v", e.EventType, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }

// EventBus delivers events to in-process subscribers, each on its own goroutine.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler

	inflight sync.WaitGroup
	failures chan *HandlerError
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
		failures: make(chan *HandlerError, 100),
	}
}

func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
}

// Publish returns immediately. Callers pass a ctx that outlives the request, since
// handlers keep running after the response is written.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers := eb.handlers[eventType]
	eb.mu.RUnlock()

	event := Event{Type: eventType, Payload: payload}
	eb.inflight.Add(len(handlers))
	for _, handler := range handlers {
		go eb.deliver(ctx, handler, event)
	}
}

func (eb *EventBus) deliver(ctx context.Context, handler EventHandler, event Event) {
	defer eb.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			eb.fail(&HandlerError{EventType: event.Type, Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	if err := handler(ctx, event); err != nil {
		eb.fail(&HandlerError{EventType: event.Type, Err: err})
	}
}

func (eb *EventBus) fail(err *HandlerError) {
	select {
	case eb.failures <- err:
	default:
		logger.Error("Event failure queue full", zap.String("eventType", err.EventType), zap.Error(err.Err))
	}
}

// Start logs handler failures until ctx is done.
func (eb *EventBus) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case err := <-eb.failures:
				logger.Error("Event handler failed", zap.String("eventType", err.EventType), zap.Error(err.Err))
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Drain blocks until every delivered event has been handled or ctx is done.
func (eb *EventBus) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		eb.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
