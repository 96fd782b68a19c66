package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is an exact percentage value, e.g. 12.5 for twelve and a half percent.
type Percent struct {
	value decimal.Decimal
}

// PercentOf builds a whole-number percentage.
func PercentOf(v int64) Percent {
	return Percent{value: decimal.NewFromInt(v)}
}

// PercentFromDecimal wraps an arbitrary decimal percentage.
func PercentFromDecimal(d decimal.Decimal) Percent {
	return Percent{value: d}
}

// ParsePercent parses values such as "15" or "12.5".
func ParsePercent(value string) (Percent, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Percent{}, fmt.Errorf("parse percent %q: %w", value, err)
	}
	return Percent{value: d}, nil
}

// Decimal exposes the underlying value.
func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

// IsNegative reports whether the percentage is below zero.
func (p Percent) IsNegative() bool {
	return p.value.IsNegative()
}

func (p Percent) String() string {
	return p.value.String() + "%"
}
