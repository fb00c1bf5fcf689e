// Package cmd implements the atm command line application over a bank ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bank"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"golang.org/x/crypto/bcrypt"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&detailsCmd{}, "accounts")
	c.Register(&updateCmd{}, "accounts")
	c.Register(&deleteCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")
	c.Register(&existsCmd{}, "accounts")

	c.Register(&depositCmd{}, "operations")
	c.Register(&withdrawCmd{}, "operations")

	c.Register(&listCmd{}, "administration")
	c.Register(&queryCmd{}, "administration")
	c.Register(&formatCmd{}, "administration")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("f", envString(EnvLedgerFile, "data.json"), "Path to the ledger file")
	currency   = flag.String("currency", envString(EnvCurrency, bank.DefaultCurrency), "Currency code of a new ledger")
	pinScheme  = flag.String("pin-scheme", "sha256", "Hash scheme of new PINs: sha256 or bcrypt")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it")
	// Verbose makes warnings visible on stderr.
	Verbose = flag.Bool("v", envBool(EnvVerbose), "Log warnings to stderr")
)

// command output, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func envString(name, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return def
}

func envBool(name string) bool {
	v, _ := strconv.ParseBool(os.Getenv(name))
	return v
}

// SetupLogging discards the standard logger unless -v is set. It must be
// called after flag.Parse.
func SetupLogging() {
	if *Verbose {
		log.SetOutput(os.Stderr)
		log.SetPrefix("atm: ")
		log.SetFlags(0)
		return
	}
	log.SetOutput(io.Discard)
}

// OpenLedger opens the ledger file named by the global flags.
func OpenLedger() (*bank.Ledger, error) {
	opts := []bank.Option{
		bank.WithCurrency(*currency),
		bank.WithLogger(log.Default()),
	}
	switch *pinScheme {
	case "sha256":
	case "bcrypt":
		opts = append(opts, bank.WithBcrypt(bcrypt.DefaultCost))
	default:
		return nil, fmt.Errorf("unknown PIN scheme %q, want sha256 or bcrypt", *pinScheme)
	}
	return bank.Open(*ledgerFile, opts...)
}

// printMarkdown renders md for the terminal, or prints it as is when the
// output is not a terminal or -plain is set.
func printMarkdown(md string) {
	if *plain || !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// fail prints err and maps it to an exit status: invalid input is a usage
// error, everything else a failure.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, bank.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// usage prints a usage error about the command's flags.
func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}

// credentials are the flags every authenticated command takes.
type credentials struct {
	account string
	pin     string
}

func (c *credentials) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account number")
	f.StringVar(&c.pin, "pin", "", "4-digit PIN")
}

// check reports a usage error when a credential is missing.
func (c *credentials) check() error {
	if c.account == "" {
		return errors.New("missing account number (-a)")
	}
	if c.pin == "" {
		return errors.New("missing PIN (-pin)")
	}
	return nil
}
