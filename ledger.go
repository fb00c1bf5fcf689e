package bank

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// MinDeposit is the smallest amount accepted by Deposit.
	MinDeposit = decimal.RequireFromString("0.01")
	// MaxDeposit is the largest amount accepted by Deposit.
	MaxDeposit = decimal.NewFromInt(100000)
)

// Ledger owns every account, mirrors them to a Store, and provides the
// validated and authenticated operations over them.
//
// A Ledger is safe for concurrent use: each mutation and its save run under a
// single lock.
type Ledger struct {
	mu       sync.RWMutex
	accounts []account      // in creation order, copy-on-write
	index    map[string]int // account number to position in accounts

	store      Store
	currency   string
	rand       *rand.Rand
	bcryptCost int
	logger     *log.Logger

	// discarded is set while the store holds content that could not be
	// decoded and has not been overwritten yet.
	discarded bool
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for warnings. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option { return func(l *Ledger) { l.logger = logger } }

// WithRand sets the random source of account numbers. Defaults to a ChaCha8
// source seeded by the operating system.
func WithRand(src rand.Source) Option { return func(l *Ledger) { l.rand = rand.New(src) } }

// WithCurrency sets the currency of a new ledger. A ledger file that already
// records its currency keeps it.
func WithCurrency(code string) Option { return func(l *Ledger) { l.currency = code } }

// WithBcrypt makes the ledger hash new PINs with bcrypt at the given cost
// instead of SHA-256.
func WithBcrypt(cost int) Option { return func(l *Ledger) { l.bcryptCost = cost } }

// Open opens the ledger file at path, creating it if it does not exist.
func Open(path string, opts ...Option) (*Ledger, error) {
	return New(FileStore(path), opts...)
}

// New loads a ledger from store.
//
// A missing store is initialised empty and saved at once. A store that cannot
// be parsed is logged and replaced by an empty collection in memory. A store
// written by a newer version is an error.
func New(store Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:    store,
		currency: DefaultCurrency,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rand == nil {
		l.rand = newRand()
	}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load() error {
	name := storeName(l.store)
	data, err := l.store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Printf("ledger %q does not exist, creating an empty ledger instead", name)
		return l.commit(nil)
	}
	if err != nil {
		return &PersistenceError{Op: "load", Path: name, Err: err}
	}

	snap, err := decodeSnapshot(data)
	if errors.Is(err, errUnsupportedVersion) {
		return &PersistenceError{Op: "load", Path: name, Err: err}
	}
	if err != nil {
		l.logger.Printf("warning, ledger %q is corrupt, starting with an empty ledger: %v", name, err)
		l.set(nil)
		l.discarded = true
		return nil
	}

	if snap.Currency != "" && snap.Currency != l.currency {
		l.logger.Printf("ledger %q is kept in %s", name, snap.Currency)
		l.currency = snap.Currency
	}

	migrated := 0
	for i := range snap.Accounts {
		if snap.Accounts[i].legacyPIN {
			snap.Accounts[i].legacyPIN = false
			migrated++
		}
	}
	l.set(snap.Accounts)

	if migrated > 0 {
		l.logger.Printf("warning, ledger %q had %d plaintext PINs, they are now hashed", name, migrated)
		if err := l.commit(snap.Accounts); err != nil {
			l.logger.Printf("warning, could not save hashed PINs: %v", err)
		}
	}
	return nil
}

// set replaces the in-memory collection. Callers hold the write lock (or own
// the ledger exclusively).
func (l *Ledger) set(accounts []account) {
	index := make(map[string]int, len(accounts))
	for i, a := range accounts {
		index[a.number] = i
	}
	l.accounts, l.index = accounts, index
}

// commit saves next and, only once it is durable, makes it the current
// collection. On failure nothing changes.
func (l *Ledger) commit(next []account) error {
	name := storeName(l.store)
	data, err := encodeSnapshot(l.currency, next)
	if err != nil {
		return &PersistenceError{Op: "save", Path: name, Err: err}
	}
	if err := l.store.Save(data); err != nil {
		return &PersistenceError{Op: "save", Path: name, Err: err}
	}
	l.set(next)
	l.discarded = false
	return nil
}

// Rewrite saves the ledger again in the current file format. It refuses to
// overwrite a store whose content was discarded as corrupt.
func (l *Ledger) Rewrite() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.discarded {
		return &PersistenceError{Op: "save", Path: storeName(l.store), Err: errCorrupt}
	}
	return l.commit(l.accounts)
}

// authenticate returns the position of the account once its PIN is verified.
// Callers hold a lock.
func (l *Ledger) authenticate(accountNo, pin string) (int, error) {
	i, ok := l.index[accountNo]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrAccountNotFound, accountNo)
	}
	if !verifyPIN(l.accounts[i].pinHash, pin) {
		return -1, ErrAuthentication
	}
	return i, nil
}

// Currency returns the currency code of the ledger.
func (l *Ledger) Currency() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currency
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}

// Accounts returns the public view of every account, in creation order, as
// they were when Accounts was called.
func (l *Ledger) Accounts() iter.Seq[Profile] {
	l.mu.RLock()
	accounts := l.accounts
	l.mu.RUnlock()
	return func(yield func(Profile) bool) {
		for _, a := range accounts {
			if !yield(l.profile(a)) {
				return
			}
		}
	}
}

// Exists reports whether an account with this number exists.
func (l *Ledger) Exists(accountNo string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.index[accountNo]
	return ok
}

// Authenticate checks the credentials. It returns nil, or an error matching
// ErrAccountNotFound or ErrAuthentication.
func (l *Ledger) Authenticate(accountNo, pin string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, err := l.authenticate(accountNo, pin)
	return err
}

// VerifyCredentials reports whether the credentials are valid.
func (l *Ledger) VerifyCredentials(accountNo, pin string) bool {
	return l.Authenticate(accountNo, pin) == nil
}

// Create opens a new account with a zero balance.
//
// Every field is validated first; the returned error joins one
// *ValidationError per failing field.
func (l *Ledger) Create(name string, age int, email, pin string) (Profile, error) {
	if err := errors.Join(checkName(name), checkAge(age), checkEmail(email), checkPIN("pin", pin)); err != nil {
		return Profile{}, err
	}
	hash, err := l.hashPIN(pin)
	if err != nil {
		return Profile{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	number, err := l.newAccountNumber()
	if err != nil {
		return Profile{}, err
	}
	a := account{
		name:    normalizeName(name),
		age:     age,
		email:   normalizeEmail(email),
		pinHash: hash,
		number:  number,
		balance: decimal.Zero,
	}
	next := append(slices.Clip(l.accounts), a)
	if err := l.commit(next); err != nil {
		return Profile{}, err
	}
	return l.profile(a), nil
}

// Deposit credits amount to the account. The amount must be between
// MinDeposit and MaxDeposit.
func (l *Ledger) Deposit(accountNo, pin string, amount decimal.Decimal) (Receipt, error) {
	if amount.LessThan(MinDeposit) {
		return Receipt{}, invalid("amount", "minimum deposit amount is %s", MinDeposit)
	}
	if amount.GreaterThan(MaxDeposit) {
		return Receipt{}, invalid("amount", "maximum deposit limit is %s", MaxDeposit)
	}
	return l.move("deposit", accountNo, pin, amount)
}

// Withdraw debits amount from the account. The amount must be positive and
// not exceed the balance.
func (l *Ledger) Withdraw(accountNo, pin string, amount decimal.Decimal) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{}, invalid("amount", "amount must be greater than zero")
	}
	return l.move("withdrawal", accountNo, pin, amount)
}

// move applies a validated deposit or withdrawal.
func (l *Ledger) move(op, accountNo, pin string, amount decimal.Decimal) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i, err := l.authenticate(accountNo, pin)
	if err != nil {
		return Receipt{}, err
	}

	a := l.accounts[i]
	switch op {
	case "deposit":
		a.balance = a.balance.Add(amount)
	case "withdrawal":
		if a.balance.LessThan(amount) {
			return Receipt{}, insufficientFunds(M(a.balance, l.currency))
		}
		a.balance = a.balance.Sub(amount)
	}

	next := slices.Clone(l.accounts)
	next[i] = a
	if err := l.commit(next); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		Kind:      op,
		Name:      a.name,
		AccountNo: a.number,
		Amount:    M(amount, l.currency),
		Balance:   M(a.balance, l.currency),
	}, nil
}

// Details returns the account with its PIN masked.
func (l *Ledger) Details(accountNo, pin string) (Details, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, err := l.authenticate(accountNo, pin)
	if err != nil {
		return Details{}, err
	}
	return Details{Profile: l.profile(l.accounts[i]), PIN: PINMask}, nil
}

// Update changes the name, email or PIN of an account. Every provided field
// is validated before anything is applied: an invalid field rejects the whole
// update. Age and account number cannot change.
func (l *Ledger) Update(accountNo, pin string, c Changes) (Updated, error) {
	var errs []error
	if c.Name != nil {
		errs = append(errs, checkName(*c.Name))
	}
	if c.Email != nil {
		errs = append(errs, checkEmail(*c.Email))
	}
	if c.PIN != nil {
		errs = append(errs, checkPIN("newPin", *c.PIN))
	}
	if err := errors.Join(errs...); err != nil {
		return Updated{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	i, err := l.authenticate(accountNo, pin)
	if err != nil {
		return Updated{}, err
	}
	a := l.accounts[i]
	if c.IsEmpty() {
		return Updated{Profile: l.profile(a), Message: "Nothing to update."}, nil
	}

	if c.Name != nil {
		a.name = normalizeName(*c.Name)
	}
	if c.Email != nil {
		a.email = normalizeEmail(*c.Email)
	}
	if c.PIN != nil {
		if a.pinHash, err = l.hashPIN(*c.PIN); err != nil {
			return Updated{}, err
		}
	}

	next := slices.Clone(l.accounts)
	next[i] = a
	if err := l.commit(next); err != nil {
		return Updated{}, err
	}
	return Updated{Profile: l.profile(a), Message: "Account updated successfully."}, nil
}

// Delete removes the account and returns a confirmation message.
func (l *Ledger) Delete(accountNo, pin string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i, err := l.authenticate(accountNo, pin)
	if err != nil {
		return "", err
	}
	next := slices.Delete(slices.Clone(l.accounts), i, i+1)
	if err := l.commit(next); err != nil {
		return "", err
	}
	return fmt.Sprintf("Account %s has been deleted successfully.", accountNo), nil
}
