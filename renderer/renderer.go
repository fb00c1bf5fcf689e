// Package renderer turns ledger results into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/bank"
)

//go:embed *.md
var templates embed.FS

var funcs = template.FuncMap{
	"mask": MaskAccountNumber,
}

// MaskAccountNumber hides the middle of an account number, e.g. "ab3***9!".
// Numbers of five characters or fewer are returned unchanged.
func MaskAccountNumber(accountNo string) string {
	if len(accountNo) <= 5 {
		return accountNo
	}
	return accountNo[:3] + "***" + accountNo[len(accountNo)-2:]
}

var profileRows = map[string]string{"profile_rows": "profile_rows.md"}

// RenderCreated renders a freshly created account.
func RenderCreated(p bank.Profile) string {
	return renderTemplate("created", "created.md", profileRows, p)
}

// RenderDetails renders the authenticated view of an account.
func RenderDetails(d bank.Details) string {
	return renderTemplate("details", "details.md", profileRows, d)
}

// RenderUpdated renders the result of an update.
func RenderUpdated(u bank.Updated) string {
	return renderTemplate("updated", "updated.md", profileRows, u)
}

// RenderReceipt renders a deposit or a withdrawal.
func RenderReceipt(r bank.Receipt) string {
	return renderTemplate("receipt", "receipt.md", nil, r)
}

// RenderAccounts renders a table of accounts with their numbers masked.
func RenderAccounts(accounts []bank.Profile) string {
	return renderTemplate("accounts", "accounts.md", nil, accounts)
}

// RenderMessage renders a single line status message.
func RenderMessage(msg string) string {
	return renderTemplate("message", "message.md", nil, msg)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
