package savings

import (
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a literal.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// GBP is a helper for test to create pound sterling money from a literal.
func GBP(s string) Money { return M(D(s), "GBP") }

// newAccount is a helper for test to create an account from literals.
func newAccount(t *testing.T, name, balance, monthly, rate string) Account {
	t.Helper()
	a, err := NewAccount(name, D(balance), D(monthly), D(rate))
	if err != nil {
		t.Fatalf("NewAccount(%q) error = %v", name, err)
	}
	return a
}

// assertNear fails the test if got is further than 'tolerance' from want.
func assertNear(t *testing.T, got decimal.Decimal, want, tolerance string) {
	t.Helper()
	if got.Sub(D(want)).Abs().GreaterThan(D(tolerance)) {
		t.Errorf("got %s, want %s (±%s)", got, want, tolerance)
	}
}
