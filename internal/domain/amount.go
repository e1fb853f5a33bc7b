package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a strictly positive fixed-precision decimal. The invariant is
// enforced once at construction, so downstream code never re-validates.
// The zero value is invalid; construct via NewAmount or ParseAmount.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps value, failing with ErrInvalidAmount when it is zero or
// negative.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.Sign() <= 0 {
		return Amount{}, fmt.Errorf("%w: %s", ErrInvalidAmount, value)
	}

	return Amount{value: value}, nil
}

// ParseAmount parses a decimal string and validates it like NewAmount.
func ParseAmount(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return NewAmount(value)
}

// MustAmount is a test helper; it panics on invalid input.
func MustAmount(s string) Amount {
	amount, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return amount
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.String()
}
