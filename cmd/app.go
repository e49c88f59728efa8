// Package cmd implements the CLI application to manage savings accounts and
// project their growth.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/savings"
	"github.com/etnz/savings/config"
	"github.com/google/subcommands"
)

// Commands lists every command of the application, in help order.
var Commands = []subcommands.Command{
	&addCmd{},
	&updateCmd{},
	&listCmd{},
	&projectCmd{},
	&importCmd{},
	&exportCmd{},
	&sessionCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "accounts.csv", "Path to the ledger file containing the accounts (CSV format)")
var currency = flag.String("currency", "GBP", "Currency used to display amounts (ISO 4217 code)")
var Verbose = flag.Bool("v", false, "Print verbose logs")

// defaultJSONPath selects accounts in JSON imports when -json-path is not set.
var defaultJSONPath = savings.DefaultJSONPath

// output receives the command results. Markdown is rendered for the terminal
// only when it is os.Stdout.
var output io.Writer = os.Stdout

// Configure sets the defaults of the global flags from the configuration.
// It must be called before the flags are parsed.
func Configure(cfg *config.Config) {
	setDefault := func(name, value string) {
		if f := flag.Lookup(name); f != nil {
			f.DefValue = value
			f.Value.Set(value)
		}
	}
	setDefault("ledger-file", cfg.LedgerFile)
	setDefault("currency", cfg.Currency)
	if cfg.JSONPath != "" {
		defaultJSONPath = cfg.JSONPath
	}
}

// DecodeLedger loads the ledger file. A missing file is an empty ledger.
func DecodeLedger() (*savings.Ledger, error) {
	ledger, err := savings.LoadLedgerFile(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, starting with an empty ledger", *ledgerFile)
		return savings.NewLedger(), nil
	}
	return ledger, err
}

// EncodeLedger writes the ledger file.
func EncodeLedger(ledger *savings.Ledger) error {
	if err := savings.SaveLedgerFile(*ledgerFile, ledger); err != nil {
		return err
	}
	log.Printf("saved %d accounts to %q", ledger.Len(), *ledgerFile)
	return nil
}

// failure reports err and returns the matching exit status: invalid user
// input is a usage error.
func failure(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, savings.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown writes a markdown document to the output, rendered for the
// terminal when possible.
func printMarkdown(md string) {
	if output != io.Writer(os.Stdout) {
		fmt.Fprint(output, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(output, md)
		return
	}
	rendered, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(output, md)
		return
	}
	fmt.Fprint(output, rendered)
}
