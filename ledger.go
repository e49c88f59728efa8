package savings

import (
	"fmt"
	"io"
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger represents an ordered list of accounts.
//
// Insertion order is kept: it is the display order and the lookup order when
// several accounts share a name. A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts []Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make([]Account, 0)}
}

// Len returns the number of accounts in the ledger.
func (l *Ledger) Len() int { return len(l.accounts) }

// Add appends an account to the ledger. Names are not checked for duplicates.
func (l *Ledger) Add(a Account) {
	l.accounts = append(l.accounts, a)
}

// Accounts iterates over a copy of each account, in insertion order.
func (l *Ledger) Accounts() iter.Seq2[int, Account] {
	return func(yield func(int, Account) bool) {
		for i, a := range l.accounts {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Account returns the first account named 'name', or false if there is none.
func (l *Ledger) Account(name string) (Account, bool) {
	i := l.index(name)
	if i < 0 {
		return Account{}, false
	}
	return l.accounts[i], true
}

// index returns the position of the first account named 'name', or -1.
func (l *Ledger) index(name string) int {
	for i, a := range l.accounts {
		if a.name == name {
			return i
		}
	}
	return -1
}

// Update replaces the balance, monthly input and annual rate of the first
// account named exactly 'name'.
//
// It returns false, and leaves the ledger untouched, if no account has this name.
func (l *Ledger) Update(name string, balance, monthly, rate decimal.Decimal) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	a := &l.accounts[i]
	a.balance, a.monthly, a.rate = balance, monthly, rate
	return true
}

// Summaries returns one human readable line per account, in insertion order.
// Amounts are formatted in 'currency'.
func (l *Ledger) Summaries(currency string) []string {
	lines := make([]string, 0, len(l.accounts))
	for _, a := range l.accounts {
		lines = append(lines, fmt.Sprintf("%s: balance %s, monthly input %s, return rate %s",
			a.name,
			M(a.balance, currency),
			M(a.monthly, currency),
			RatePercent(a.rate),
		))
	}
	return lines
}

// AggregateProjection returns the sum of every account's projected balance
// after 'years' years. An empty ledger projects to zero.
//
// The first account that cannot be projected aborts the whole computation.
func (l *Ledger) AggregateProjection(years int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range l.accounts {
		v, err := a.ProjectBalance(years)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// Load reads CSV records from 'r' and appends each of them to the ledger.
//
// Records are appended as they are read: on error the records before the
// faulty one remain in the ledger. Use Replace to load atomically.
func (l *Ledger) Load(r io.Reader) error {
	return decodeRecords(r, l.Add)
}

// Replace reads CSV records from 'r' and, only if all of them are valid,
// replaces the content of the ledger with them.
func (l *Ledger) Replace(r io.Reader) error {
	fresh, err := DecodeLedger(r)
	if err != nil {
		return err
	}
	l.accounts = fresh.accounts
	return nil
}
