package account

import (
	"fmt"
	"time"
)

// Savings is an account whose service charge doubles while its balance is
// under a minimum.
type Savings struct {
	*Base
	minimumBalance float64
}

// NewSavings creates a savings account.
func NewSavings(
	accountNumber, clientNumber int,
	balance float64,
	dateCreated time.Time,
	minimumBalance float64,
) *Savings {
	return savingsFrom(NewBase(accountNumber, clientNumber, balance, dateCreated), minimumBalance)
}

func savingsFrom(base *Base, minimumBalance float64) *Savings {
	return &Savings{Base: base, minimumBalance: minimumBalance}
}

// MinimumBalance returns the balance under which the premium applies.
func (s *Savings) MinimumBalance() float64 { return s.minimumBalance }

// ServiceCharges returns BaseServiceCharge, multiplied by
// ServiceChargePremium when the balance is under the minimum.
func (s *Savings) ServiceCharges() float64 {
	if s.Balance() < s.minimumBalance {
		return BaseServiceCharge * ServiceChargePremium
	}
	return BaseServiceCharge
}

func (s *Savings) String() string {
	return fmt.Sprintf("%s\nMinimum Balance: %s Account Type: Savings",
		s.Base.String(), FormatCurrency(s.minimumBalance))
}

var _ Account = (*Savings)(nil)
