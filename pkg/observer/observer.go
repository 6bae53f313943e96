// Package observer provides ready made subscribers for account alerts.
package observer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/domain/events"
	"github.com/amirasaad/bankaccount/pkg/eventbus"
	"github.com/fatih/color"
)

// Recorder keeps every message it receives, in order.
type Recorder struct {
	messages []string
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Update(message string) error {
	r.messages = append(r.messages, message)
	return nil
}

// Messages returns a copy of the received messages.
func (r *Recorder) Messages() []string { return slices.Clone(r.messages) }

// Log writes each alert to a structured logger at warn level.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Update(message string) error {
	l.logger.Warn("account alert", "message", message)
	return nil
}

// Console prints alerts to a terminal, low balance warnings in yellow and
// large transactions in red.
type Console struct {
	out   io.Writer
	low   *color.Color
	large *color.Color
	other *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:   out,
		low:   color.New(color.FgYellow, color.Bold),
		large: color.New(color.FgRed, color.Bold),
		other: color.New(color.FgCyan),
	}
}

func (c *Console) Update(message string) error {
	col := c.other
	switch {
	case strings.HasPrefix(message, account.LowBalancePrefix):
		col = c.low
	case strings.HasPrefix(message, account.LargeTransactionPrefix):
		col = c.large
	}
	if _, err := col.Fprintln(c.out, message); err != nil {
		return fmt.Errorf("console observer: %w", err)
	}
	return nil
}

// Bus republishes alerts of one account as events.AccountAlert.
type Bus struct {
	ctx           context.Context
	bus           eventbus.Bus
	accountNumber int
}

// NewBus returns an observer publishing on bus with ctx. accountNumber is
// stamped on every event.
func NewBus(ctx context.Context, bus eventbus.Bus, accountNumber int) *Bus {
	return &Bus{ctx: ctx, bus: bus, accountNumber: accountNumber}
}

func (b *Bus) Update(message string) error {
	return b.bus.Publish(b.ctx, events.NewAccountAlert(b.accountNumber, message))
}

var (
	_ account.Observer = (*Recorder)(nil)
	_ account.Observer = (*Log)(nil)
	_ account.Observer = (*Console)(nil)
	_ account.Observer = (*Bus)(nil)
)
