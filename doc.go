// Package bank provides a small account ledger persisted to a single file.
//
// A Ledger holds every account in memory and rewrites the whole file after
// each successful change. Accounts are identified by a random 8 character
// account number (3 letters, 3 digits and 2 symbols, shuffled) and protected
// by a 4 digit PIN of which only a one-way digest is stored.
//
// The operations are:
//   - Create: open an account after validating name, age, email and PIN.
//   - Deposit and Withdraw: move money, never below a zero balance.
//   - Details and Update: read or change the name, email and PIN.
//   - Delete: close an account.
//   - Exists, Authenticate and VerifyCredentials: look accounts up.
//
// Every authenticated operation takes the account number and the PIN again;
// the package has no notion of a session. Errors all match ErrLedger and one
// of the kinds ErrValidation, ErrAccountNotFound, ErrAuthentication,
// ErrInsufficientFunds or ErrPersistence.
//
// This package serves as the foundation of the `atm` command-line tool.
package bank
