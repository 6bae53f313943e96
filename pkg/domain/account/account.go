package account

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// LowBalanceLevel is the balance under which a low balance warning is sent.
	LowBalanceLevel = 50.0

	// LargeTransactionThreshold is the transaction magnitude above which a
	// large transaction alert is sent.
	LargeTransactionThreshold = 9999.99

	// LowBalancePrefix starts every low balance message.
	LowBalancePrefix = "Low balance warning"

	// LargeTransactionPrefix starts every large transaction message.
	LargeTransactionPrefix = "Large transaction"
)

var (
	// ErrInvalidArgument is returned for every rejected constructor or transaction input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrObserverNotFound is returned when detaching an observer that is not attached.
	ErrObserverNotFound = errors.New("observer not found")

	// ErrUnknownAccountType is returned when opening an account of an unsupported type.
	ErrUnknownAccountType = errors.New("unknown account type")
)

// now is replaced in tests.
var now = time.Now

// Account is the behaviour shared by every concrete account variant.
// A variant embeds *Base and supplies ServiceCharges.
type Account interface {
	AccountNumber() int
	ClientNumber() int
	Balance() float64
	DateCreated() time.Time

	Deposit(amount float64) error
	Withdraw(amount float64) error
	UpdateBalance(delta float64) error

	// ServiceCharges returns the fee the account incurs under its variant's policy.
	ServiceCharges() float64

	Attach(observer Observer)
	Detach(observer Observer) error
	Notify(message string) error
	Observers() []Observer

	String() string
}

// Base holds the identity and balance state of an account together with its
// observers. Base does not implement Account on its own; it is embedded by
// the variants.
//
// Invariants:
//   - account and client numbers never change after construction.
//   - the balance changes only through UpdateBalance.
//   - Withdraw never lets the balance drop below zero.
//
// Base is not safe for concurrent use.
type Base struct {
	Subject

	accountNumber int
	clientNumber  int
	balance       float64
	dateCreated   time.Time
}

// NewBase builds the shared account state. A NaN or infinite balance is
// replaced by 0 and a zero dateCreated by the current date.
func NewBase(accountNumber, clientNumber int, balance float64, dateCreated time.Time) *Base {
	if !isNumeric(balance) {
		balance = 0
	}
	if dateCreated.IsZero() {
		dateCreated = today()
	}
	return &Base{
		accountNumber: accountNumber,
		clientNumber:  clientNumber,
		balance:       balance,
		dateCreated:   dateCreated,
	}
}

// AccountNumber returns the account number.
func (b *Base) AccountNumber() int { return b.accountNumber }

// ClientNumber returns the number of the client owning the account.
func (b *Base) ClientNumber() int { return b.clientNumber }

// Balance returns the current balance.
func (b *Base) Balance() float64 { return b.balance }

// DateCreated returns the date the account was opened.
func (b *Base) DateCreated() time.Time { return b.dateCreated }

// Deposit adds amount to the balance.
// It returns ErrInvalidArgument when amount is NaN, infinite or negative.
func (b *Base) Deposit(amount float64) error {
	if !isNumeric(amount) {
		return fmt.Errorf("deposit amount: %v must be numeric: %w", amount, ErrInvalidArgument)
	}
	if amount < 0 {
		return fmt.Errorf("deposit amount: %s must be positive: %w", FormatCurrency(amount), ErrInvalidArgument)
	}
	return b.UpdateBalance(amount)
}

// Withdraw removes amount from the balance.
// It returns ErrInvalidArgument when amount is NaN, infinite, negative or
// larger than the current balance.
func (b *Base) Withdraw(amount float64) error {
	if !isNumeric(amount) {
		return fmt.Errorf("withdrawal amount: %v must be numeric: %w", amount, ErrInvalidArgument)
	}
	if amount < 0 {
		return fmt.Errorf("withdrawal amount: %s must be positive: %w", FormatCurrency(amount), ErrInvalidArgument)
	}
	if amount > b.balance {
		return fmt.Errorf(
			"withdrawal amount: %s must not exceed the account balance: %s: %w",
			FormatCurrency(amount), FormatCurrency(b.balance), ErrInvalidArgument,
		)
	}
	return b.UpdateBalance(-amount)
}

// UpdateBalance adds delta to the balance and alerts the observers when the
// new balance is under LowBalanceLevel or when |delta| exceeds
// LargeTransactionThreshold. The low balance check runs first.
//
// A NaN or infinite delta is ignored. The only error returned is an
// observer failure, in which case the balance has already been updated.
func (b *Base) UpdateBalance(delta float64) error {
	if !isNumeric(delta) {
		return nil
	}
	b.balance += delta

	if b.balance < LowBalanceLevel {
		message := fmt.Sprintf("%s %s: on account %d.",
			LowBalancePrefix, FormatCurrency(b.balance), b.accountNumber)
		if err := b.Notify(message); err != nil {
			return err
		}
	}

	if math.Abs(delta) > LargeTransactionThreshold {
		message := fmt.Sprintf("%s %s: on account %d.",
			LargeTransactionPrefix, FormatCurrency(delta), b.accountNumber)
		if err := b.Notify(message); err != nil {
			return err
		}
	}
	return nil
}

// String returns "Account Number: <n> Balance: $<balance>".
func (b *Base) String() string {
	return fmt.Sprintf("Account Number: %d Balance: %s", b.accountNumber, FormatCurrency(b.balance))
}

func isNumeric(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func today() time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
