package app

import (
	"context"

	"github.com/amirasaad/bankaccount/pkg/domain/events"
)

// setupEventBus registers the application's own alert handlers.
func (a *App) setupEventBus() {
	if a.Deps.EventBus == nil {
		return
	}
	logger := a.Deps.Logger.With("handler", "account_alert")
	a.Deps.EventBus.Subscribe(events.EventTypeAccountAlert, func(_ context.Context, e events.Event) error {
		alert, ok := e.(*events.AccountAlert)
		if !ok {
			logger.Error("unexpected event type", "event", e)
			return nil
		}
		logger.Debug("account alert published",
			"event_id", alert.ID,
			"account_number", alert.AccountNumber,
			"message", alert.Message,
		)
		return nil
	})
}
