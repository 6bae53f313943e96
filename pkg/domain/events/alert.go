package events

import (
	"time"

	"github.com/google/uuid"
)

// AccountAlert is emitted for every alert message an account sends to its
// observers.
type AccountAlert struct {
	ID            uuid.UUID
	AccountNumber int
	Message       string
	Timestamp     time.Time
}

func (e AccountAlert) Type() string { return EventTypeAccountAlert.String() }

type AccountAlertOpt func(*AccountAlert)

// NewAccountAlert creates an alert with a fresh ID and the current time.
func NewAccountAlert(accountNumber int, message string, opts ...AccountAlertOpt) *AccountAlert {
	e := &AccountAlert{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Message:       message,
		Timestamp:     time.Now(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func WithAlertID(id uuid.UUID) AccountAlertOpt {
	return func(e *AccountAlert) { e.ID = id }
}

func WithAlertTimestamp(t time.Time) AccountAlertOpt {
	return func(e *AccountAlert) { e.Timestamp = t }
}
