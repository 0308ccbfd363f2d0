// Package money represents a monetary amount in the system.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in the system.
type Money struct {
	value decimal.Decimal
}

// Zero represents the zero monetary amount.
var Zero = Money{}

// New constructs a money value from a decimal.
func New(value decimal.Decimal) Money {
	return Money{value}
}

// FromFloat constructs a money value from a float amount.
func FromFloat(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Float returns the amount as a float for JSON responses.
func (m Money) Float() float64 {
	f, _ := m.value.Float64()
	return f
}

// String returns the value of the monetary amount.
func (m Money) String() string {
	return m.value.String()
}

// Equal provides support for the go-cmp package and testing.
func (m Money) Equal(m2 Money) bool {
	return m.value.Equal(m2.value)
}

// Add returns the sum of the two monetary amounts.
func (m Money) Add(m2 Money) Money {
	return Money{m.value.Add(m2.value)}
}

// Sub returns the difference of the two monetary amounts.
func (m Money) Sub(m2 Money) Money {
	return Money{m.value.Sub(m2.value)}
}

// GreaterThanOrEqual reports whether m >= m2.
func (m Money) GreaterThanOrEqual(m2 Money) bool {
	return m.value.GreaterThanOrEqual(m2.value)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Mul returns the amount scaled by the specified factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.value.Mul(factor)}
}

// MarshalText provides support for logging and any marshal needs.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// =============================================================================

// Parse parses the string value and returns a monetary amount. The backend
// delivers numeric columns as decimal strings; a value that does not parse
// is treated as zero, never as an error.
func Parse(value string) Money {
	if value == "" {
		return Zero
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return Zero
	}

	return Money{d}
}

// MustParseStrict parses the string value and panics when the value is not a
// valid decimal. Used by tooling where a bad value is a programmer mistake.
func MustParseStrict(value string) Money {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(fmt.Sprintf("invalid money %q", value))
	}

	return Money{d}
}
