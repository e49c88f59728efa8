package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/savings/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	plain bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the accounts" }
func (*listCmd) Usage() string {
	return `sav list [-plain]

  Shows every account of the ledger, in the order they were added.
  With -plain, prints one line per account instead of a table.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print one summary line per account")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return failure(err)
	}

	if c.plain {
		for _, line := range ledger.Summaries(*currency) {
			fmt.Fprintln(output, line)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.AccountsMarkdown(ledger, *currency))
	return subcommands.ExitSuccess
}
