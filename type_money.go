package bank

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of a ledger opened without WithCurrency.
const DefaultCurrency = "INR"

// Money is an exact amount in a currency, for display.
//
// The ledger itself only stores decimals; the currency is a property of the
// whole ledger and is attached when a value leaves it.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Amount converts a float, as typed by a user, into an exact decimal amount.
func Amount(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func newDecimal[T float64 | int | int64 | decimal.Decimal](v T) decimal.Decimal {
	switch x := any(v).(type) {
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case decimal.Decimal:
		return x
	}
	return decimal.Zero
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol, e.g. "₹500.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Value() decimal.Decimal   { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// Float returns the value as a float, for callers that only deal in floats.
func (m Money) Float() float64 { return m.value.InexactFloat64() }
