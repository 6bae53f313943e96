package account

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout of creation dates in untyped input.
const DateLayout = "2006-01-02"

// Raw carries account fields as they arrive from text input.
type Raw struct {
	AccountNumber string
	ClientNumber  string
	Balance       string
	DateCreated   string
}

// ParseBase builds the shared account state from text input.
//
// Account and client numbers must parse as integers, otherwise
// ErrInvalidArgument is returned. A balance that is not a finite number
// becomes 0 and a date that does not match DateLayout becomes today.
func ParseBase(raw Raw) (*Base, error) {
	accountNumber, err := strconv.Atoi(strings.TrimSpace(raw.AccountNumber))
	if err != nil {
		return nil, fmt.Errorf("account number %q must be an integer: %w", raw.AccountNumber, ErrInvalidArgument)
	}
	clientNumber, err := strconv.Atoi(strings.TrimSpace(raw.ClientNumber))
	if err != nil {
		return nil, fmt.Errorf("client number %q must be an integer: %w", raw.ClientNumber, ErrInvalidArgument)
	}

	balance, err := strconv.ParseFloat(strings.TrimSpace(raw.Balance), 64)
	if err != nil {
		balance = 0
	}

	var dateCreated time.Time
	if d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw.DateCreated), time.Local); err == nil {
		dateCreated = d
	}
	return NewBase(accountNumber, clientNumber, balance, dateCreated), nil
}

// Open parses raw and wraps it in the variant named by kind, configured
// from terms.
func Open(kind Type, raw Raw, terms Terms) (Account, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownAccountType)
	}
	base, err := ParseBase(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case TypeChequing:
		return chequingFrom(base, terms.OverdraftLimit, terms.OverdraftRate), nil
	case TypeSavings:
		return savingsFrom(base, terms.MinimumBalance), nil
	default:
		return investmentFrom(base, terms.ManagementFee), nil
	}
}

// IsValid reports whether t names a known variant.
func (t Type) IsValid() bool {
	switch t {
	case TypeChequing, TypeSavings, TypeInvestment:
		return true
	}
	return false
}
