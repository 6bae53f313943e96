package initializer

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/eventbus"
)

// InitializeDependencies builds the logger and event bus described by cfg.
// Logs go to stderr so command output stays clean.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	return initialize(cfg, os.Stderr)
}

func initialize(cfg *config.App, out io.Writer) (*app.Deps, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	logger := setupLogger(cfg.Log, out).With("env", cfg.Env)
	slog.SetDefault(logger)

	deps := &app.Deps{
		Logger:   logger,
		EventBus: eventbus.NewSimpleEventBus(logger),
	}
	logger.Debug("dependencies initialized")
	return deps, nil
}
