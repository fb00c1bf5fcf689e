package cmd

import (
	"flag"

	"github.com/etnz/bank/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion builds the shell completion tree of the commander: one
// sub-command per registered command, with its flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch sc.Name() {
		case "topic":
			sub.Args = complete.PredictFunc(predictTopics)
		case "help":
			sub.Args = predictCommands(c)
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}

// Complete runs shell completion when the shell asks for it, and exits.
// It returns immediately otherwise.
func Complete(c *subcommands.Commander, name string) {
	Completion(c).Complete(name)
}

// IsCommand reports whether name is registered in c.
func IsCommand(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			flags[f.Name] = predict.Files("*.json")
		case "pin-scheme":
			flags[f.Name] = predict.Set{"sha256", "bcrypt"}
		default:
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				flags[f.Name] = predict.Nothing
			} else {
				flags[f.Name] = predict.Something
			}
		}
	})
	return flags
}

func predictCommands(c *subcommands.Commander) predict.Set {
	var names predict.Set
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		names = append(names, sc.Name())
	})
	return names
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}
