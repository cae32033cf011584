package kharcha

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value with exact decimal arithmetic.
//
// No rounding is applied internally; rounding happens only when formatting
// for display.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// ParseAmount parses a decimal string like "120.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool             { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// PercentOf returns a/b as a percentage. Returns 0 when b is zero.
func (a Amount) PercentOf(b Amount) float64 {
	if b.IsZero() {
		return 0
	}
	pct, _ := a.value.Div(b.value).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// String returns the plain decimal representation rounded to 2 places,
// e.g. "120.00". Display-only; arithmetic stays exact.
func (a Amount) String() string { return a.value.StringFixed(2) }

// SignedString is like String but with an explicit sign, and "-" for zero.
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

// Display formats the amount with the currency's symbol and grouping rules,
// e.g. "₹120,000.00" for INR.
func (a Amount) Display(currency string) string {
	cur := *money.New(0, currency).Currency()
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// MarshalJSON writes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else
// (null, non-numeric text, objects) decodes to zero: stored corruption must
// never make a balance or aggregate computation fail.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.value = decimal.Zero
		return nil
	}
	a.value = d
	return nil
}
