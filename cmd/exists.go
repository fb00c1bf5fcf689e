package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type existsCmd struct{}

func (*existsCmd) Name() string     { return "exists" }
func (*existsCmd) Synopsis() string { return "tell whether an account number is in use" }
func (*existsCmd) Usage() string {
	return `atm exists <account>

  Prints true and exits with status 0 when the account exists, prints false and
  exits with status 1 otherwise.
`
}

func (*existsCmd) SetFlags(f *flag.FlagSet) {}

func (*existsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("exists takes exactly one account number")
	}
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	found := ledger.Exists(f.Arg(0))
	fmt.Fprintln(stdout, found)
	if !found {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
