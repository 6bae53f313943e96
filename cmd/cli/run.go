package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/dto"
	"github.com/amirasaad/bankaccount/pkg/observer"
	"github.com/fatih/color"
)

var errUsage = errors.New("not enough arguments")

type operation struct {
	name   string
	amount float64
}

// parseArgs splits the command line into the account request and the
// operations to run. An amount that is not a number is kept as NaN so the
// account rejects it.
func parseArgs(args []string) (dto.AccountOpen, []operation, error) {
	if len(args) < 4 {
		return dto.AccountOpen{}, nil, errUsage
	}
	req := dto.AccountOpen{
		Type:          args[0],
		AccountNumber: args[1],
		ClientNumber:  args[2],
		Balance:       args[3],
	}
	rest := args[4:]
	if len(rest) > 0 && !isOperation(rest[0]) {
		req.DateCreated = rest[0]
		rest = rest[1:]
	}

	var ops []operation
	for len(rest) > 0 {
		name := rest[0]
		if !isOperation(name) {
			return req, nil, fmt.Errorf("unknown operation %q", name)
		}
		if len(rest) < 2 {
			return req, nil, fmt.Errorf("%s: missing amount", name)
		}
		amount, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			amount = math.NaN()
		}
		ops = append(ops, operation{name: name, amount: amount})
		rest = rest[2:]
	}
	return req, ops, nil
}

func isOperation(s string) bool {
	return s == "deposit" || s == "withdraw"
}

// run opens the account, applies every operation in order and prints the
// alerts, a line per operation and the final summary. Rejected operations
// are reported and skipped.
func run(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	req, ops, err := parseArgs(args)
	if err != nil {
		return err
	}
	acc, err := a.OpenAccount(ctx, req)
	if err != nil {
		return err
	}
	acc.Attach(observer.NewConsole(out))

	failed := color.New(color.FgRed)
	for _, op := range ops {
		var opErr error
		switch op.name {
		case "deposit":
			opErr = acc.Deposit(op.amount)
		case "withdraw":
			opErr = acc.Withdraw(op.amount)
		}
		if opErr != nil {
			failed.Fprintf(out, "%s rejected: %v\n", op.name, opErr) //nolint:errcheck
			continue
		}
		fmt.Fprintf(out, "%s %s: balance %s\n", op.name, account.FormatCurrency(op.amount), account.FormatCurrency(acc.Balance()))
	}

	fmt.Fprintln(out, acc)
	fmt.Fprintf(out, "Service Charges: %s\n", account.FormatCurrency(acc.ServiceCharges()))
	return nil
}
