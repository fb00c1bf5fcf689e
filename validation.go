package bank

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// MinAge is the minimum age to open an account.
	MinAge = 18
	// PINLength is the number of digits in a PIN.
	PINLength = 4
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidName reports whether s, once trimmed, is non-empty and made only of
// letters and whitespace.
func ValidName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ValidAge reports whether n is old enough to open an account.
func ValidAge(n int) bool { return n >= MinAge }

// ValidEmail reports whether s, once trimmed, looks like local@domain.tld.
func ValidEmail(s string) bool { return emailPattern.MatchString(strings.TrimSpace(s)) }

// ValidPIN reports whether s is exactly PINLength ASCII digits.
func ValidPIN(s string) bool {
	if len(s) != PINLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func checkName(s string) error {
	if !ValidName(s) {
		return invalid("name", "invalid name: it should contain only letters and spaces")
	}
	return nil
}

func checkAge(n int) error {
	if !ValidAge(n) {
		return invalid("age", "age must be at least %d years", MinAge)
	}
	return nil
}

func checkEmail(s string) error {
	if !ValidEmail(s) {
		return invalid("email", "invalid email format: %q", s)
	}
	return nil
}

func checkPIN(field, s string) error {
	if !ValidPIN(s) {
		return invalid(field, "PIN must be exactly %d digits", PINLength)
	}
	return nil
}

// normalizeName trims the name; case is preserved.
func normalizeName(s string) string { return strings.TrimSpace(s) }

// normalizeEmail trims and lower-cases the email.
func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
