package bank

import (
	"errors"
	"fmt"
)

// ErrLedger is the root of every error returned by the ledger. Use errors.Is
// with it to catch all ledger failures at once, or with one of the kinds below
// to branch narrowly.
var ErrLedger = errors.New("ledger error")

// kind is the type of the ledger error sentinels. Every kind unwraps to
// ErrLedger.
type kind struct{ msg string }

func (k *kind) Error() string { return k.msg }
func (k *kind) Unwrap() error { return ErrLedger }

var (
	// ErrValidation reports a field that fails a format or range rule.
	// It is always detected before any mutation.
	ErrValidation error = &kind{"validation failed"}

	// ErrAccountNotFound reports that no record matches the account number.
	ErrAccountNotFound error = &kind{"account not found"}

	// ErrAuthentication reports a PIN that does not match the stored digest.
	ErrAuthentication error = &kind{"invalid PIN"}

	// ErrInsufficientFunds reports a withdrawal larger than the balance.
	ErrInsufficientFunds error = &kind{"insufficient funds"}

	// ErrPersistence reports that the durable store could not be read or written.
	ErrPersistence error = &kind{"persistence failed"}

	// ErrAccountNumberExhausted is returned when no free account number could be
	// drawn within the retry budget.
	ErrAccountNumberExhausted error = &kind{"could not generate a unique account number"}
)

// ValidationError describes the field that failed validation.
type ValidationError struct {
	Field  string // "name", "age", "email", "pin", "amount"...
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Unwrap makes a ValidationError match ErrValidation (and therefore ErrLedger).
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps the I/O failure behind an ErrPersistence.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not %s ledger: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("could not %s ledger %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both the kind and the cause, so errors.Is matches
// ErrPersistence as well as, say, fs.ErrPermission.
func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

// insufficientFunds keeps the current balance in the message, the way tellers
// report it.
func insufficientFunds(balance Money) error {
	return fmt.Errorf("%w: current balance is %v", ErrInsufficientFunds, balance)
}
