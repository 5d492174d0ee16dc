// Package services provides the pricing, query and export logic for quotes.
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a money value cannot be parsed or is
// out of range (negative, NaN, infinite).
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a decimal money amount. Arithmetic keeps full precision;
// rounding to two decimal places happens only when formatting or when a
// final derived value is emitted.
type Money struct {
	amt decimal.Decimal
}

// Zero is the zero money amount.
var Zero = Money{}

// ParseMoney parses a non-negative decimal string into Money.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return Money{amt: d}, nil
}

// MoneyFromFloat converts a non-negative finite float into Money.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("%w: not finite", ErrInvalidAmount)
	}
	if f < 0 {
		return Money{}, fmt.Errorf("%w: %v is negative", ErrInvalidAmount, f)
	}
	return Money{amt: decimal.NewFromFloat(f)}, nil
}

// MustMoney converts a float trusted to be valid (stored record values,
// test fixtures). Negative and non-finite inputs collapse to zero.
func MustMoney(f float64) Money {
	m, err := MoneyFromFloat(f)
	if err != nil {
		return Money{}
	}
	return m
}

func (m Money) Add(o Money) Money { return Money{amt: m.amt.Add(o.amt)} }

// Sub subtracts o from m. The result may be negative; callers that need
// a money amount clamp with Clamp or check IsNegative.
func (m Money) Sub(o Money) Money { return Money{amt: m.amt.Sub(o.amt)} }

// MulScalar multiplies by a dimensionless factor such as a quantity.
func (m Money) MulScalar(f float64) Money {
	return Money{amt: m.amt.Mul(decimal.NewFromFloat(f))}
}

// Percent returns p percent of m at full precision.
func (m Money) Percent(p float64) Money {
	return Money{amt: m.amt.Mul(decimal.NewFromFloat(p)).Div(decimal.NewFromInt(100))}
}

// Min returns the smaller of m and o.
func (m Money) Min(o Money) Money {
	if m.amt.LessThan(o.amt) {
		return m
	}
	return o
}

func (m Money) IsNegative() bool  { return m.amt.IsNegative() }
func (m Money) IsZero() bool      { return m.amt.IsZero() }
func (m Money) Equal(o Money) bool { return m.amt.Equal(o.amt) }

// ClampZero floors a possibly negative amount at zero.
func (m Money) ClampZero() Money {
	if m.amt.IsNegative() {
		return Money{}
	}
	return m
}

// Round returns m rounded half-up to two decimal places. Used only at
// the output edge of the pricing engine.
func (m Money) Round() Money {
	return Money{amt: m.amt.Round(2)}
}

// Float returns the amount as a float64 for persistence in a number
// field. Callers round first when storing a derived value.
func (m Money) Float() float64 {
	f, _ := m.amt.Float64()
	return f
}

// Fixed renders m with exactly two decimal places and no grouping,
// e.g. "1234.00". Used for form input values that must parse back
// through ParseMoney.
func (m Money) Fixed() string {
	return m.amt.Round(2).StringFixed(2)
}

// Format renders m in accounting notation with exactly two decimal
// places and comma-grouped thousands, e.g. "1,234.00". The output is
// independent of the ambient locale and is injective with respect to
// the rounded cents value.
func (m Money) Format() string {
	raw := m.amt.Round(2).StringFixed(2)

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	parts := strings.SplitN(raw, ".", 2)
	intPart := groupThousands(parts[0])

	out := intPart + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
