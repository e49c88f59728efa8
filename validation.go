package savings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user supplied amount, like "1000" or "-25.50".
// 'field' names the value in the error message.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, s)
	}
	return v, nil
}

// ParseRate parses a user supplied annual rate. It is either a fraction
// ("0.07") or a percentage ("7%").
func ParseRate(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := ParseAmount(field, p)
		if err != nil {
			return decimal.Zero, err
		}
		return v.Shift(-2), nil
	}
	return ParseAmount(field, s)
}

// ParseYears parses a whole number of years, between 0 and MaxYears.
func ParseYears(s string) (int, error) {
	s = strings.TrimSpace(s)
	years, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: years %q is not a whole number", ErrInvalidInput, s)
	}
	if years < 0 {
		return 0, fmt.Errorf("%w: years %d is negative", ErrInvalidInput, years)
	}
	if years > MaxYears {
		return 0, fmt.Errorf("%w: years %d is more than %d", ErrInvalidInput, years, MaxYears)
	}
	return years, nil
}

// ParseAccount builds an account from user supplied text fields.
func ParseAccount(name, balance, monthly, rate string) (Account, error) {
	b, err := ParseAmount("current balance", balance)
	if err != nil {
		return Account{}, err
	}
	m, err := ParseAmount("monthly input", monthly)
	if err != nil {
		return Account{}, err
	}
	r, err := ParseRate("annual return rate", rate)
	if err != nil {
		return Account{}, err
	}
	return NewAccount(strings.TrimSpace(name), b, m, r)
}
