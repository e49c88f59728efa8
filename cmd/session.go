package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/savings/session"
	"github.com/google/subcommands"
)

// input is read by interactive commands.
var input io.Reader = os.Stdin

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive session" }
func (*sessionCmd) Usage() string {
	return `sav session

  Starts an interactive session over the accounts of the ledger file: add,
  update, list, save and load accounts, then type 'done' to get the total
  predicted balance. Changes are only written by 'save'.

`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return failure(err)
	}

	p := session.NewPrompter(output, input, session.New(ledger, *currency))
	p.DefaultPath = *ledgerFile
	if err := p.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: session ended: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
