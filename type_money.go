package savings

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a display currency.
//
// The value is kept exact, it is only rounded to the currency's minor unit
// when formatted.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns an amount in 'currency'.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the go-money definition of the money's currency, or nil
// if the code is unknown.
func (m Money) currency() *money.Currency {
	return money.GetCurrency(m.cur)
}

// String returns the amount with the currency symbol, rounded to the
// currency's minor unit (e.g. "£2,315.03").
//
// Unknown currencies are printed with 2 decimals followed by their code.
func (m Money) String() string {
	cur := m.currency()
	if cur == nil {
		if m.cur == "" {
			return m.value.StringFixed(2)
		}
		return m.value.StringFixed(2) + " " + m.cur
	}
	fraction := int32(cur.Fraction)
	minor := m.value.Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}
