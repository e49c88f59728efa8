package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/savings"
	"github.com/google/subcommands"
)

// accountFlags are the flags describing an account, shared by add and update.
type accountFlags struct {
	name    string
	balance string
	monthly string
	rate    string
}

// setFlags registers the account flags. An empty 'value' makes the figures
// required.
func (c *accountFlags) setFlags(f *flag.FlagSet, value string) {
	f.StringVar(&c.name, "name", "", "Account name (required)")
	f.StringVar(&c.balance, "balance", value, "Current balance")
	f.StringVar(&c.monthly, "monthly", value, "Amount added every month, negative for a withdrawal")
	f.StringVar(&c.rate, "rate", value, "Annual return rate, as a fraction (0.07) or a percentage (7%)")
}

func (c *accountFlags) account() (savings.Account, error) {
	for _, f := range [][2]string{{"balance", c.balance}, {"monthly", c.monthly}, {"rate", c.rate}} {
		if f[1] == "" {
			return savings.Account{}, fmt.Errorf("%w: -%s is required", savings.ErrInvalidInput, f[0])
		}
	}
	return savings.ParseAccount(c.name, c.balance, c.monthly, c.rate)
}

type addCmd struct {
	accountFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an account to the ledger" }
func (*addCmd) Usage() string {
	return `sav add -name <name> [-balance <amount>] [-monthly <amount>] [-rate <rate>]

  Appends a new account to the ledger file. Names are not checked for
  duplicates. Omitted figures are 0.

Usage Examples:
$ sav add -name ISA -balance 1000 -monthly 100 -rate 7%

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, "0") }

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := c.account()
	if err != nil {
		return failure(err)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return failure(err)
	}
	ledger.Add(account)

	if err := EncodeLedger(ledger); err != nil {
		return failure(err)
	}
	fmt.Fprintf(output, "Account %q added to %s\n", account.Name(), *ledgerFile)
	return subcommands.ExitSuccess
}
