package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/bankaccount/pkg/domain/events"
)

// SimpleEventBus dispatches events synchronously, in subscription order, on
// the publishing goroutine. The first handler error stops dispatch.
type SimpleEventBus struct {
	handlers map[string][]HandlerFunc
	mu       sync.RWMutex
	logger   *slog.Logger
}

func NewSimpleEventBus(logger *slog.Logger) *SimpleEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimpleEventBus{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger.With("bus", "simple"),
	}
}

func (b *SimpleEventBus) Publish(ctx context.Context, event events.Event) error {
	b.logger.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed", "event_type", event.Type(), "error", err)
			return fmt.Errorf("handle %s: %w", event.Type(), err)
		}
	}
	return nil
}

func (b *SimpleEventBus) Subscribe(eventType events.EventType, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType.String()] = append(b.handlers[eventType.String()], handler)
}

var _ Bus = (*SimpleEventBus)(nil)
