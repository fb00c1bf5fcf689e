package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type loginCmd struct{ credentials }

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "check an account number and PIN" }
func (*loginCmd) Usage() string {
	return `atm login -a <account> -pin <pin>

  Exits with status 0 when the PIN matches the account, 1 otherwise.
`
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage("%v", err)
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	if !ledger.VerifyCredentials(c.account, c.pin) {
		fmt.Fprintln(stderr, "Invalid account number or PIN.")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderMessage(fmt.Sprintf("Logged in as `%s`.", renderer.MaskAccountNumber(c.account))))
	return subcommands.ExitSuccess
}
