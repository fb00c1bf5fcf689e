package bank

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPIN returns the hex SHA-256 digest of the PIN bytes.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// hashPIN hashes with the ledger's scheme: SHA-256 by default, bcrypt when a
// cost was configured.
func (l *Ledger) hashPIN(pin string) (string, error) {
	if l.bcryptCost == 0 {
		return HashPIN(pin), nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pin), l.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: could not hash PIN: %v", ErrLedger, err)
	}
	return string(h), nil
}

// verifyPIN re-derives the digest of pin and compares it with hash. Both
// schemes are recognised, whatever the ledger currently writes.
func verifyPIN(hash, pin string) bool {
	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(HashPIN(pin))) == 1
}

func isBcrypt(hash string) bool { return strings.HasPrefix(hash, "$2") }
