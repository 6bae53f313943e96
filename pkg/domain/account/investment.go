package account

import (
	"fmt"
	"time"
)

// managementFeeWaiverYears is the account age after which the management
// fee is no longer charged.
const managementFeeWaiverYears = 10

// Investment is an account charged a management fee during its first ten years.
type Investment struct {
	*Base
	managementFee float64
}

// NewInvestment creates an investment account.
func NewInvestment(
	accountNumber, clientNumber int,
	balance float64,
	dateCreated time.Time,
	managementFee float64,
) *Investment {
	return investmentFrom(NewBase(accountNumber, clientNumber, balance, dateCreated), managementFee)
}

func investmentFrom(base *Base, managementFee float64) *Investment {
	return &Investment{Base: base, managementFee: managementFee}
}

// ManagementFee returns the yearly management fee.
func (i *Investment) ManagementFee() float64 { return i.managementFee }

// ServiceCharges returns BaseServiceCharge for accounts older than ten
// years, and BaseServiceCharge plus the management fee otherwise.
func (i *Investment) ServiceCharges() float64 {
	if i.feeWaived() {
		return BaseServiceCharge
	}
	return BaseServiceCharge + i.managementFee
}

func (i *Investment) feeWaived() bool {
	return i.DateCreated().Before(today().AddDate(-managementFeeWaiverYears, 0, 0))
}

func (i *Investment) String() string {
	fee := FormatCurrency(i.managementFee)
	if i.feeWaived() {
		fee = "Waived"
	}
	return fmt.Sprintf("%s\nDate Created: %s Management Fee: %s Account Type: Investment",
		i.Base.String(), i.DateCreated().Format(DateLayout), fee)
}

var _ Account = (*Investment)(nil)
