package eventbus

import (
	"context"

	"github.com/amirasaad/bankaccount/pkg/domain/events"
)

// HandlerFunc handles one published event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Publish(ctx context.Context, event events.Event) error
	Subscribe(eventType events.EventType, handler HandlerFunc)
}
