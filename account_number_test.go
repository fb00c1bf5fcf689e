package bank

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGenerateAccountNumber_Shape(t *testing.T) {
	r := rand.New(rand.NewChaCha8([32]byte{7}))
	for range 1000 {
		n := generateAccountNumber(r)
		if len(n) != AccountNumberLength {
			t.Fatalf("%q has length %d, want %d", n, len(n), AccountNumberLength)
		}
		var l, d, s int
		for _, c := range n {
			switch {
			case strings.ContainsRune(letters, c):
				l++
			case strings.ContainsRune(digits, c):
				d++
			case strings.ContainsRune(symbols, c):
				s++
			default:
				t.Fatalf("%q contains the unexpected character %q", n, c)
			}
		}
		if l != 3 || d != 3 || s != 2 {
			t.Fatalf("%q has %d letters, %d digits, %d symbols; want 3, 3, 2", n, l, d, s)
		}
	}
}

func TestGenerateAccountNumber_Shuffled(t *testing.T) {
	// With a real source the three groups must not always come out in
	// letters-digits-symbols order.
	r := rand.New(rand.NewChaCha8([32]byte{9}))
	for range 50 {
		n := generateAccountNumber(r)
		if !strings.ContainsAny(n[:3], digits+symbols) {
			continue
		}
		return
	}
	t.Errorf("50 account numbers all started with 3 letters")
}

func TestGenerateAccountNumber_Reproducible(t *testing.T) {
	a := generateAccountNumber(rand.New(rand.NewChaCha8([32]byte{1})))
	b := generateAccountNumber(rand.New(rand.NewChaCha8([32]byte{1})))
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
}
