// Command atm manages the accounts of a bank ledger file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bank/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Complete(commander, name)

	flag.Parse()
	cmd.SetupLogging()

	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
