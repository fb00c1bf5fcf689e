package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bank/renderer"
	"github.com/google/subcommands"
)

type createCmd struct {
	name  string
	age   int
	email string
	pin   string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "open a new account" }
func (*createCmd) Usage() string {
	return `atm create -name <name> -age <age> -email <email> -pin <pin>

  Opens an account with a zero balance and prints its generated account number.
  Names are letters and spaces, holders must be 18 or older, and the PIN is
  exactly 4 digits.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the holder")
	f.IntVar(&c.age, "age", 0, "Age of the holder")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.pin, "pin", "", "4-digit PIN")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	p, err := ledger.Create(c.name, c.age, c.email, c.pin)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderCreated(p))
	return subcommands.ExitSuccess
}
