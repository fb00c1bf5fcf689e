package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bank"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the accounts" }
func (*queryCmd) Usage() string {
	return `atm query [<jsonpath>]

  Evaluates a JSONPath expression over the public view of the ledger and prints
  the result as JSON. PIN hashes are not part of the view. The document is:

    {"currency": "INR", "accounts": [{"name", "age", "email", "accountNo", "balance"}]}

  Examples:
    atm query '$.accounts[*].email'
    atm query '$.accounts[?(@.balance > 1000)].name'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

type accountView struct {
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Email     string          `json:"email"`
	AccountNo string          `json:"accountNo"`
	Balance   decimal.Decimal `json:"balance"`
}

type ledgerView struct {
	Currency string        `json:"currency"`
	Accounts []accountView `json:"accounts"`
}

// document returns the ledger view as generic JSON values, ready for jsonpath.
func document(l *bank.Ledger) (any, error) {
	v := ledgerView{Currency: l.Currency(), Accounts: []accountView{}}
	for p := range l.Accounts() {
		v.Accounts = append(v.Accounts, accountView{
			Name:      p.Name,
			Age:       p.Age,
			Email:     p.Email,
			AccountNo: p.AccountNo,
			Balance:   p.Balance.Value(),
		})
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	err = json.Unmarshal(data, &doc)
	return doc, err
}

// queryLanguage is JSONPath with the full gval expression language in filters,
// so that `[?(@.balance > 1000)]` compares.
var queryLanguage = gval.Full(jsonpath.PlaceholderExtension())

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := "$"
	switch f.NArg() {
	case 0:
	case 1:
		path = f.Arg(0)
	default:
		return usage("query takes at most one JSONPath expression")
	}

	ledger, err := OpenLedger()
	if err != nil {
		return fail(err)
	}
	doc, err := document(ledger)
	if err != nil {
		return fail(err)
	}
	eval, err := queryLanguage.NewEvaluable(path)
	if err != nil {
		return usage("invalid query %q: %v", path, err)
	}
	result, err := eval(ctx, doc)
	if err != nil {
		return fail(fmt.Errorf("query %q: %w", path, err))
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
