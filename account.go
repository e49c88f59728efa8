package savings

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// rootPrecision is the number of decimal places kept when computing the
// twelfth root of an annual growth factor, and the monthly balances.
const rootPrecision = 32

// MaxYears is the longest projection horizon, in years.
const MaxYears = 1000

var (
	one     = decimal.NewFromInt(1)
	twelfth = one.DivRound(decimal.NewFromInt(12), rootPrecision)
)

// Account is a savings or investment vehicle.
//
// Every month the monthly input is added to the balance, then the balance
// grows by the monthly equivalent of the annual return rate.
type Account struct {
	name    string
	balance decimal.Decimal
	monthly decimal.Decimal
	rate    decimal.Decimal // annual, as a fraction: 0.07 is 7%
}

// NewAccount creates a fully populated account.
// Balance, monthly input and rate can be negative, the name cannot be empty.
func NewAccount(name string, balance, monthly, rate decimal.Decimal) (Account, error) {
	if strings.TrimSpace(name) == "" {
		return Account{}, fmt.Errorf("%w: account name is empty", ErrInvalidInput)
	}
	return Account{name: name, balance: balance, monthly: monthly, rate: rate}, nil
}

func (a Account) Name() string                  { return a.name }
func (a Account) Balance() decimal.Decimal      { return a.balance }
func (a Account) MonthlyInput() decimal.Decimal { return a.monthly }
func (a Account) AnnualRate() decimal.Decimal   { return a.rate }

// MonthlyRate converts an annual return rate into the monthly rate that
// compounds to the same annual growth: (1+annual)^(1/12) - 1.
//
// Rates at or below -1 have no such equivalent and return ErrUndefinedGrowthRate.
func MonthlyRate(annual decimal.Decimal) (decimal.Decimal, error) {
	base := one.Add(annual)
	if !base.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: annual rate %s", ErrUndefinedGrowthRate, annual)
	}
	factor, err := base.PowWithPrecision(twelfth, rootPrecision)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: annual rate %s: %v", ErrUndefinedGrowthRate, annual, err)
	}
	return factor.Sub(one), nil
}

// ProjectBalance returns the balance of the account after 'years' whole years.
//
// Each month the monthly input is added first, then the month's growth is
// applied, so a contribution earns the growth of the month it is made in.
// The result is not rounded.
func (a Account) ProjectBalance(years int) (decimal.Decimal, error) {
	if years < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative number of years %d", ErrInvalidInput, years)
	}
	if years > MaxYears {
		return decimal.Zero, fmt.Errorf("%w: %d years is more than %d", ErrInvalidInput, years, MaxYears)
	}
	months := years * 12
	if months == 0 {
		return a.balance, nil
	}

	rate, err := MonthlyRate(a.rate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("account %q: %w", a.name, err)
	}
	growth := one.Add(rate)

	balance := a.balance
	for range months {
		// Keeps the digit count bounded, far below display precision.
		balance = balance.Add(a.monthly).Mul(growth).Round(rootPrecision)
	}
	return balance, nil
}

// Contributions returns the current balance plus every monthly input made
// over 'years' years, without any growth.
func (a Account) Contributions(years int) decimal.Decimal {
	return a.balance.Add(a.monthly.Mul(decimal.NewFromInt(int64(years) * 12)))
}

// String returns a compact description of the account, without currency.
func (a Account) String() string {
	return fmt.Sprintf("%s (balance %s, monthly %s, rate %s)", a.name, a.balance, a.monthly, a.rate)
}
