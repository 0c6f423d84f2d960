package pyft

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the fixed display currency. pyft does not abstract over
// currencies or locales; everything renders as USD.
const currencyCode = "USD"

// Amount represents a signed monetary value with exact decimal arithmetic.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a numeric literal, mostly useful in tests.
func A[T float32 | float64 | int | int64](value T) Amount {
	switch v := any(value).(type) {
	case float32:
		return Amount{value: decimal.NewFromFloat32(v)}
	case float64:
		return Amount{value: decimal.NewFromFloat(v)}
	case int:
		return Amount{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Amount{value: decimal.NewFromInt(v)}
	}
	return Amount{}
}

// ParseAmount parses a decimal string like "-12.50" into an Amount.
func ParseAmount(s string) (Amount, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: v}, nil
}

// currency returns the fixed display currency.
// To get a never-nil currency we go through the money constructor.
func (a Amount) currency() money.Currency {
	return *money.New(0, currencyCode).Currency()
}

// String renders the amount as currency: thousands-grouped integer part, two
// decimals, "$" prefix, leading "-" when negative ("$1,234.50", "-$1,234.50").
func (a Amount) String() string {
	cur := a.currency()
	cents := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(cents.IntPart())
}

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsPositive() bool { return a.value.IsPositive() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount         { return Amount{value: a.value.Abs()} }

// Float64 returns the inexact float value, used only for statistics.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// Persist returns the exact decimal representation written to the store.
func (a Amount) Persist() string { return a.value.String() }
