package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value stored in minor units (two decimal places).
type Money int64

const minorUnitExp = 2

// FromDecimal converts a major-unit decimal amount into minor units, rounding half away
// from zero.
func FromDecimal(d decimal.Decimal) Money {
	return Money(d.Shift(minorUnitExp).Round(0).IntPart())
}

// ParseMoney parses a major-unit amount such as "999.00".
func ParseMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse money %q: %w", value, err)
	}
	return FromDecimal(d), nil
}

// MustMoney behaves like ParseMoney but panics on error. Useful for tests and fixtures.
func MustMoney(value string) Money {
	m, err := ParseMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -minorUnitExp)
}

// Times multiplies a unit price by a quantity.
func (m Money) Times(qty int) Money {
	return m * Money(qty)
}

// Percent returns p percent of m rounded to the nearest minor unit.
func (m Money) Percent(p Percent) Money {
	return Money(decimal.NewFromInt(int64(m)).Mul(p.value).Shift(-2).Round(0).IntPart())
}

// NonNegative clamps negative amounts to zero.
func NonNegative(m Money) Money {
	if m < 0 {
		return 0
	}
	return m
}
