package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bank"
	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type updateCmd struct {
	credentials
	name   string
	email  string
	newPIN string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the name, email or PIN of an account" }
func (*updateCmd) Usage() string {
	return `atm update -a <account> -pin <pin> [-name <name>] [-email <email>] [-new-pin <pin>]

  Changes only the fields given. All of them are checked before any is applied.
  Age and account number cannot be changed.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.name, "name", "", "New name")
	f.StringVar(&c.email, "email", "", "New email address")
	f.StringVar(&c.newPIN, "new-pin", "", "New 4-digit PIN")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		return usage("%v", err)
	}

	// Only flags present on the command line are changes, so that an empty
	// value is rejected instead of ignored.
	var changes bank.Changes
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			changes.Name = &c.name
		case "email":
			changes.Email = &c.email
		case "new-pin":
			changes.PIN = &c.newPIN
		}
	})

	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	u, err := ledger.Update(c.account, c.pin, changes)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderUpdated(u))
	return subcommands.ExitSuccess
}
