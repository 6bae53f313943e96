package events

// Event is implemented by everything published on the event bus.
type Event interface {
	Type() string
}
