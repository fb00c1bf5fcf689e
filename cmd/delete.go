package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type deleteCmd struct{ credentials }

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "close an account" }
func (*deleteCmd) Usage() string {
	return `atm delete -a <account> -pin <pin>

  Removes the account and its balance from the ledger. This cannot be undone.
`
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage("%v", err)
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	msg, err := ledger.Delete(c.account, c.pin)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderMessage(msg))
	return subcommands.ExitSuccess
}
