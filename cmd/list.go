package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all accounts" }
func (*listCmd) Usage() string {
	return `atm list

  Lists every account in creation order, with account numbers masked.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderAccounts(slices.Collect(ledger.Accounts())))
	return subcommands.ExitSuccess
}
