package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// PINMask is shown in place of the PIN in account details.
const PINMask = "****"

// account is the stored record. It is only ever replaced, never modified in
// place, so a slice of accounts can be shared with readers.
type account struct {
	name    string
	age     int
	email   string
	pinHash string
	number  string
	balance decimal.Decimal

	// legacyPIN is set when the record was decoded with a plaintext PIN.
	legacyPIN bool
}

// MarshalJSON writes the record with the historical field names and order.
func (a account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", a.name)
	w.Append("age", a.age)
	w.Append("email", a.email)
	w.Append("pin", a.pinHash)
	w.Append("accountNo", a.number)
	w.Append("balance", a.balance)
	return w.MarshalJSON()
}

func (a *account) UnmarshalJSON(data []byte) error {
	var j struct {
		Name      string          `json:"name"`
		Age       int             `json:"age"`
		Email     string          `json:"email"`
		PIN       json.RawMessage `json:"pin"`
		AccountNo string          `json:"accountNo"`
		Balance   decimal.Decimal `json:"balance"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*a = account{
		name:    j.Name,
		age:     j.Age,
		email:   j.Email,
		number:  j.AccountNo,
		balance: j.Balance,
	}

	pin := bytes.TrimSpace(j.PIN)
	switch {
	case len(pin) == 0 || bytes.Equal(pin, []byte("null")):
		return fmt.Errorf("account %q has no PIN", j.AccountNo)
	case pin[0] == '"':
		return json.Unmarshal(pin, &a.pinHash)
	default:
		// The first file layout kept the PIN as a plain number.
		n, err := strconv.Atoi(string(pin))
		if err != nil {
			return fmt.Errorf("account %q has an invalid PIN: %w", j.AccountNo, err)
		}
		// Leading zeros were lost when the PIN was stored as a number.
		digits := strconv.Itoa(n)
		if n >= 0 && n < 10000 {
			digits = fmt.Sprintf("%0*d", PINLength, n)
		}
		a.pinHash = HashPIN(digits)
		a.legacyPIN = true
	}
	return nil
}

// Profile is the public view of an account: everything but the PIN hash.
type Profile struct {
	Name      string
	Age       int
	Email     string
	AccountNo string
	Balance   Money
}

// Receipt is the result of a deposit or a withdrawal.
type Receipt struct {
	Kind      string // "deposit" or "withdrawal"
	Name      string
	AccountNo string
	Amount    Money // deposited or withdrawn
	Balance   Money // new balance
}

// Details is the authenticated view of an account, with the PIN masked.
type Details struct {
	Profile
	PIN string // always PINMask
}

// Changes lists the fields to update. Nil fields are left untouched.
type Changes struct {
	Name  *string
	Email *string
	PIN   *string
}

// IsEmpty reports whether c changes nothing.
func (c Changes) IsEmpty() bool { return c.Name == nil && c.Email == nil && c.PIN == nil }

// Updated is the result of an update.
type Updated struct {
	Profile
	Message string
}

func (l *Ledger) profile(a account) Profile {
	return Profile{
		Name:      a.name,
		Age:       a.age,
		Email:     a.email,
		AccountNo: a.number,
		Balance:   M(a.balance, l.currency),
	}
}
