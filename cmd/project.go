package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/savings"
	"github.com/etnz/savings/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	years int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the balance of every account" }
func (*projectCmd) Usage() string {
	return `sav project [-years <n>]

  Projects the balance of every account after n whole years, and their total.
  n is at most 1000.
  Each month the monthly input is added, then the month's growth is applied.

Usage Examples:
$ sav project -years 10

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 10, "Number of years to project")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 0 || c.years > savings.MaxYears {
		return failure(fmt.Errorf("%w: years %d is not between 0 and %d", savings.ErrInvalidInput, c.years, savings.MaxYears))
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return failure(err)
	}

	projection, err := savings.NewProjection(ledger, c.years, *currency)
	if errors.Is(err, savings.ErrUndefinedGrowthRate) {
		fmt.Fprintf(os.Stderr, "Error: cannot project: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		return failure(err)
	}

	printMarkdown(renderer.ProjectionMarkdown(projection))
	return subcommands.ExitSuccess
}
