package savings

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Projection details the projected value of every account of a ledger after
// a number of years, and their total.
type Projection struct {
	Years    int
	Currency string
	Accounts []AccountProjection
	Total    Money
	// Contributions is the total amount put in: balances plus monthly inputs.
	Contributions Money
}

// AccountProjection holds the projection of a single account.
type AccountProjection struct {
	Name          string
	Rate          Percent
	Contributions Money
	Projected     Money
}

// Growth returns the part of the projected value that does not come from contributions.
func (p AccountProjection) Growth() Money { return p.Projected.Sub(p.Contributions) }

// Growth returns the part of the total that does not come from contributions.
func (p *Projection) Growth() Money { return p.Total.Sub(p.Contributions) }

// NewProjection projects every account of the ledger after 'years' years.
// Amounts are reported in 'currency'.
//
// The total is the ledger's aggregate projection; the first account that
// cannot be projected fails the whole report.
func NewProjection(ledger *Ledger, years int, currency string) (*Projection, error) {
	if currency == "" {
		return nil, fmt.Errorf("%w: reporting currency is not set", ErrInvalidInput)
	}
	p := &Projection{
		Years:    years,
		Currency: currency,
		Accounts: make([]AccountProjection, 0, ledger.Len()),
	}

	total, contributions := decimal.Zero, decimal.Zero
	for _, a := range ledger.Accounts() {
		v, err := a.ProjectBalance(years)
		if err != nil {
			return nil, err
		}
		c := a.Contributions(years)
		p.Accounts = append(p.Accounts, AccountProjection{
			Name:          a.Name(),
			Rate:          RatePercent(a.AnnualRate()),
			Contributions: M(c, currency),
			Projected:     M(v, currency),
		})
		total = total.Add(v)
		contributions = contributions.Add(c)
	}
	p.Total = M(total, currency)
	p.Contributions = M(contributions, currency)
	return p, nil
}
