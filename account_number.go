package bank

import (
	crand "crypto/rand"
	"math/rand/v2"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()"

	// AccountNumberLength is the length of every generated account number.
	AccountNumberLength = 8

	maxAccountNumberAttempts = 100
)

// newRand returns a generator seeded from the operating system.
func newRand() *rand.Rand {
	var seed [32]byte
	crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// generateAccountNumber draws 3 letters, 3 digits and 2 symbols, and shuffles
// them.
func generateAccountNumber(r *rand.Rand) string {
	b := make([]byte, 0, AccountNumberLength)
	pick := func(alphabet string, n int) {
		for range n {
			b = append(b, alphabet[r.IntN(len(alphabet))])
		}
	}
	pick(letters, 3)
	pick(digits, 3)
	pick(symbols, 2)
	r.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

// newAccountNumber draws account numbers until one is free.
// It must be called with the write lock held.
func (l *Ledger) newAccountNumber() (string, error) {
	for range maxAccountNumberAttempts {
		n := generateAccountNumber(l.rand)
		if _, taken := l.index[n]; !taken {
			return n, nil
		}
	}
	return "", ErrAccountNumberExhausted
}
