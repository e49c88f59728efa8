package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct {
	accountFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update the figures of an account" }
func (*updateCmd) Usage() string {
	return `sav update -name <name> -balance <amount> -monthly <amount> -rate <rate>

  Replaces the current balance, monthly input and annual return rate of the
  first account with this exact name. Fails, leaving the ledger file
  untouched, if there is no such account. Every figure is required.

`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, "") }

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := c.account()
	if err != nil {
		return failure(err)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return failure(err)
	}
	if !ledger.Update(account.Name(), account.Balance(), account.MonthlyInput(), account.AnnualRate()) {
		fmt.Fprintf(os.Stderr, "Error: no account named %q in %s\n", account.Name(), *ledgerFile)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(ledger); err != nil {
		return failure(err)
	}
	fmt.Fprintf(output, "Account %q updated\n", account.Name())
	return subcommands.ExitSuccess
}
