package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// amountFlags are the flags shared by deposit and withdraw.
type amountFlags struct {
	credentials
	amount string
}

func (c *amountFlags) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.amount, "amount", "", "Amount, e.g. 250.50")
}

// run parses the amount and applies op to the ledger.
func (c *amountFlags) run(op func(l *bank.Ledger, accountNo, pin string, amount decimal.Decimal) (bank.Receipt, error)) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage("%v", err)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return usage("invalid amount %q", c.amount)
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	r, err := op(ledger, c.account, c.pin, amount)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderReceipt(r))
	return subcommands.ExitSuccess
}

type depositCmd struct{ amountFlags }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "credit an account" }
func (*depositCmd) Usage() string {
	return `atm deposit -a <account> -pin <pin> -amount <amount>

  Credits the account. A deposit is between 0.01 and 100000.
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run((*bank.Ledger).Deposit)
}

type withdrawCmd struct{ amountFlags }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "debit an account" }
func (*withdrawCmd) Usage() string {
	return `atm withdraw -a <account> -pin <pin> -amount <amount>

  Debits the account. The amount must be positive and not exceed the balance.
`
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run((*bank.Ledger).Withdraw)
}
