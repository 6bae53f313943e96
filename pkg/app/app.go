package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/dto"
	"github.com/amirasaad/bankaccount/pkg/eventbus"
	"github.com/amirasaad/bankaccount/pkg/observer"
	"github.com/go-playground/validator/v10"
)

// Deps contains the dependencies shared by the application.
type Deps struct {
	EventBus eventbus.Bus
	Logger   *slog.Logger
}

type App struct {
	Deps     *Deps
	Config   *config.App
	validate *validator.Validate
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app := &App{
		Deps:     deps,
		Config:   cfg,
		validate: validator.New(),
	}
	app.setupEventBus()
	return app
}

// Terms returns the account terms from configuration.
func (a *App) Terms() account.Terms {
	if a.Config == nil || a.Config.Account == nil {
		return account.Terms{}
	}
	c := a.Config.Account
	return account.Terms{
		OverdraftLimit: c.OverdraftLimit,
		OverdraftRate:  c.OverdraftRate,
		MinimumBalance: c.MinimumBalance,
		ManagementFee:  c.ManagementFee,
	}
}

// OpenAccount validates req and opens the requested account variant with
// the configured terms. The account is subscribed to a log observer and,
// when an event bus is configured, a bus observer publishing on ctx.
//
// Validation failures are reported as account.ErrInvalidArgument.
func (a *App) OpenAccount(ctx context.Context, req dto.AccountOpen) (account.Account, error) {
	logger := a.Deps.Logger.With("type", req.Type, "account_number", req.AccountNumber)

	if err := a.validate.Struct(req); err != nil {
		logger.Error("account request validation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", account.ErrInvalidArgument, err)
	}

	acc, err := account.Open(account.Type(req.Type), account.Raw{
		AccountNumber: req.AccountNumber,
		ClientNumber:  req.ClientNumber,
		Balance:       req.Balance,
		DateCreated:   req.DateCreated,
	}, a.Terms())
	if err != nil {
		logger.Error("failed to open account", "error", err)
		return nil, err
	}

	acc.Attach(observer.NewLog(logger))
	if a.Deps.EventBus != nil {
		acc.Attach(observer.NewBus(ctx, a.Deps.EventBus, acc.AccountNumber()))
	}

	logger.Info("account opened",
		"client_number", acc.ClientNumber(),
		"balance", acc.Balance(),
		"date_created", acc.DateCreated().Format(account.DateLayout),
	)
	return acc, nil
}
