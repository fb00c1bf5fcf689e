package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type detailsCmd struct{ credentials }

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "show an account" }
func (*detailsCmd) Usage() string {
	return `atm details -a <account> -pin <pin>

  Shows the holder, balance and account number. The PIN is never shown.
`
}

func (c *detailsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage("%v", err)
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	d, err := ledger.Details(c.account, c.pin)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderDetails(d))
	return subcommands.ExitSuccess
}
