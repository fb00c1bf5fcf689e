package bank

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// ptr is a helper for test to build Changes.
func ptr(s string) *string { return &s }

// D is a helper for test to create a decimal from a string constant.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// quiet discards the ledger warnings.
func quiet() Option { return WithLogger(log.New(io.Discard, "", 0)) }

// seeded makes account numbers reproducible.
func seeded(seed byte) Option {
	var s [32]byte
	s[0] = seed
	return WithRand(rand.NewChaCha8(s))
}

// openTemp opens a fresh ledger file in a temporary directory.
func openTemp(t *testing.T, opts ...Option) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	l, err := Open(path, append([]Option{quiet(), seeded(1)}, opts...)...)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", path, err)
	}
	return l, path
}

// mustCreate creates an account or fails the test.
func mustCreate(t *testing.T, l *Ledger, name string, age int, email, pin string) Profile {
	t.Helper()
	p, err := l.Create(name, age, email, pin)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	return p
}

// memStore is an in-memory Store. Saves fail while failing is set.
type memStore struct {
	data    []byte
	exists  bool
	saves   int
	failing bool
}

var errDiskFull = errors.New("disk full")

func (m *memStore) Load() ([]byte, error) {
	if !m.exists {
		return nil, fs.ErrNotExist
	}
	return m.data, nil
}

func (m *memStore) Save(data []byte) error {
	if m.failing {
		return errDiskFull
	}
	m.data, m.exists = append([]byte(nil), data...), true
	m.saves++
	return nil
}

// constSource always returns the same number, so every account number drawn
// from it is the same.
type constSource struct{}

func (constSource) Uint64() uint64 { return 42 }
