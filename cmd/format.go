package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type formatCmd struct{}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "rewrite the ledger file in the current format" }
func (*formatCmd) Usage() string {
	return `atm format

  Rewrites the ledger file in the current format, upgrading files written by
  older versions. A file that cannot be read is left untouched.
`
}

func (*formatCmd) SetFlags(f *flag.FlagSet) {}

func (*formatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.Rewrite(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Ledger file %q has been formatted.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
