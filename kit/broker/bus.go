package broker

import (
	"context"
	"errors"
	"log"
	"sync"
)

var ErrHandlerPanic = errors.New("broker: handler panic")

type Event interface {
	Name() string
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) []error
}

type Handler func(ctx context.Context, evt Event) error

// Bus dispatches events synchronously to the handlers subscribed to the
// event name. Handler errors and panics are collected, never propagated.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	closed   bool
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

// SubscribeAll registers h for every listed event name.
func (b *Bus) SubscribeAll(h Handler, eventNames ...string) {
	for _, name := range eventNames {
		b.Subscribe(name, h)
	}
}

func (b *Bus) Publish(ctx context.Context, evt Event) []error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return nil
	}
	hs := append([]Handler(nil), b.handlers[evt.Name()]...)
	b.mu.RUnlock()

	var errs []error
	for i, h := range hs {
		if err := dispatch(ctx, h, evt); err != nil {
			log.Printf("layer=broker event=%s handler_index=%d err=%v", evt.Name(), i, err)
			errs = append(errs, err)
		}
	}
	return errs
}

// Close drops every subscription; later publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = map[string][]Handler{}
}

func dispatch(ctx context.Context, h Handler, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("layer=broker event=%s panic=%v", evt.Name(), r)
			err = ErrHandlerPanic
		}
	}()
	return h(ctx, evt)
}
