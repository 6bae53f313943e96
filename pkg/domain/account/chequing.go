package account

import (
	"fmt"
	"time"
)

// Chequing is an account charged extra for every dollar it sits under its
// overdraft limit.
type Chequing struct {
	*Base
	overdraftLimit float64
	overdraftRate  float64
}

// NewChequing creates a chequing account. See NewBase for the handling of
// balance and dateCreated.
func NewChequing(
	accountNumber, clientNumber int,
	balance float64,
	dateCreated time.Time,
	overdraftLimit, overdraftRate float64,
) *Chequing {
	return chequingFrom(NewBase(accountNumber, clientNumber, balance, dateCreated), overdraftLimit, overdraftRate)
}

func chequingFrom(base *Base, overdraftLimit, overdraftRate float64) *Chequing {
	return &Chequing{Base: base, overdraftLimit: overdraftLimit, overdraftRate: overdraftRate}
}

// OverdraftLimit returns the balance under which overdraft fees apply.
func (c *Chequing) OverdraftLimit() float64 { return c.overdraftLimit }

// OverdraftRate returns the fee per dollar under the overdraft limit.
func (c *Chequing) OverdraftRate() float64 { return c.overdraftRate }

// ServiceCharges returns the base charge, plus
// (overdraftLimit - balance) * overdraftRate when the balance is under the
// overdraft limit.
func (c *Chequing) ServiceCharges() float64 {
	charge := BaseServiceCharge
	if c.Balance() < c.overdraftLimit {
		charge += (c.overdraftLimit - c.Balance()) * c.overdraftRate
	}
	return charge
}

func (c *Chequing) String() string {
	return fmt.Sprintf("%s\nOverdraft Limit: %s Overdraft Rate: %.2f%% Account Type: Chequing",
		c.Base.String(), FormatCurrency(c.overdraftLimit), c.overdraftRate*100)
}

var _ Account = (*Chequing)(nil)
