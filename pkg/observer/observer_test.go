package observer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/domain/events"
	"github.com/amirasaad/bankaccount/pkg/eventbus"
	"github.com/amirasaad/bankaccount/pkg/observer"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBus is a mock implementation of eventbus.Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType events.EventType, handler eventbus.HandlerFunc) {
	m.Called(eventType, handler)
}

var created = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestRecorder(t *testing.T) {
	acc := account.NewSavings(1001, 2002, 10000, created, 50)
	rec := observer.NewRecorder()
	acc.Attach(rec)

	require.NoError(t, acc.Withdraw(9960))
	require.NoError(t, acc.Deposit(10000))

	assert.Equal(t, []string{
		"Low balance warning $40.00: on account 1001.",
		"Large transaction $10,000.00: on account 1001.",
	}, rec.Messages())
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	acc := account.NewChequing(1001, 2002, 100, created, -100, 0.05)
	acc.Attach(observer.NewLog(logger))

	require.NoError(t, acc.Withdraw(75))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="account alert"`)
	assert.Contains(t, buf.String(), `message="Low balance warning $25.00: on account 1001."`)
}

func TestConsole(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	c := observer.NewConsole(&buf)
	require.NoError(t, c.Update("Low balance warning $40.00: on account 1001."))
	require.NoError(t, c.Update("Large transaction $10,000.00: on account 1001."))
	require.NoError(t, c.Update("something else"))

	assert.Equal(t,
		"Low balance warning $40.00: on account 1001.\n"+
			"Large transaction $10,000.00: on account 1001.\n"+
			"something else\n",
		buf.String())
}

func TestBus(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes an alert event", func(t *testing.T) {
		bus := &MockBus{}
		bus.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			alert, ok := e.(*events.AccountAlert)
			return ok && alert.AccountNumber == 1001 &&
				alert.Message == "Large transaction $10,000.00: on account 1001."
		})).Return(nil).Once()

		acc := account.NewInvestment(1001, 2002, 100, created, 2.55)
		acc.Attach(observer.NewBus(ctx, bus, acc.AccountNumber()))
		require.NoError(t, acc.Deposit(10000))

		bus.AssertExpectations(t)
	})

	t.Run("publish failure propagates to the account caller", func(t *testing.T) {
		boom := errors.New("bus down")
		bus := &MockBus{}
		bus.On("Publish", ctx, mock.Anything).Return(boom)

		acc := account.NewSavings(1001, 2002, 100, created, 50)
		acc.Attach(observer.NewBus(ctx, bus, acc.AccountNumber()))

		err := acc.Withdraw(60)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 40.0, acc.Balance())
	})

	t.Run("works with the simple event bus", func(t *testing.T) {
		bus := eventbus.NewSimpleEventBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
		var got []*events.AccountAlert
		bus.Subscribe(events.EventTypeAccountAlert, func(_ context.Context, e events.Event) error {
			got = append(got, e.(*events.AccountAlert))
			return nil
		})

		acc := account.NewSavings(42, 1, 10040, created, 50)
		acc.Attach(observer.NewBus(ctx, bus, acc.AccountNumber()))
		require.NoError(t, acc.Withdraw(10000))

		require.Len(t, got, 2)
		assert.Equal(t, "Low balance warning $40.00: on account 42.", got[0].Message)
		assert.Equal(t, "Large transaction $-10,000.00: on account 42.", got[1].Message)
		assert.Equal(t, 42, got[1].AccountNumber)
	})
}
