package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/savings"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// AccountsMarkdown renders the accounts of a ledger as a markdown table,
// amounts formatted in 'currency'.
func AccountsMarkdown(ledger *savings.Ledger, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if ledger.Len() == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}

	rows := make([][]string, 0, ledger.Len())
	// Accounts carry no currency, totals are plain sums of their figures.
	balance, monthly := decimal.Zero, decimal.Zero
	for _, a := range ledger.Accounts() {
		rows = append(rows, []string{
			cell(a.Name()),
			savings.M(a.Balance(), currency).String(),
			savings.M(a.MonthlyInput(), currency).String(),
			savings.RatePercent(a.AnnualRate()).String(),
		})
		balance, monthly = balance.Add(a.Balance()), monthly.Add(a.MonthlyInput())
	}
	doc.Table(md.TableSet{
		Header: []string{"Account", "Balance", "Monthly input", "Annual rate"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%s, total balance %s, total monthly input %s", plural(ledger.Len(), "account"), savings.M(balance, currency), savings.M(monthly, currency)))

	return doc.String()
}
