package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/savings"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the accounts to a CSV or JSON file" }
func (*exportCmd) Usage() string {
	return `sav export -o <file> [-format csv|json]

  Writes the accounts of the ledger to another file. The format defaults to
  json for files ending in .json, csv otherwise.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (required)")
	f.StringVar(&c.format, "format", "", "Output format: csv or json")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o flag is required.")
		return subcommands.ExitUsageError
	}
	format := strings.ToLower(c.format)
	if format == "" {
		format = "csv"
		if strings.EqualFold(filepath.Ext(c.output), ".json") {
			format = "json"
		}
	}
	if format != "csv" && format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want csv or json.\n", c.format)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return failure(err)
	}

	if format == "csv" {
		if err := savings.SaveLedgerFile(c.output, ledger); err != nil {
			return failure(err)
		}
	} else if err := c.writeJSON(ledger); err != nil {
		return failure(err)
	}
	fmt.Fprintf(output, "Exported %d accounts to %s\n", ledger.Len(), c.output)
	return subcommands.ExitSuccess
}

func (c *exportCmd) writeJSON(ledger *savings.Ledger) error {
	file, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", c.output, err)
	}
	if err := savings.EncodeLedgerJSON(file, ledger); err != nil {
		file.Close()
		return fmt.Errorf("error writing %q: %w", c.output, err)
	}
	return file.Close()
}
