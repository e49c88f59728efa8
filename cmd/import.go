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

type importCmd struct {
	file     string
	replace  bool
	jsonPath string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import accounts from a CSV or JSON file" }
func (*importCmd) Usage() string {
	return `sav import -f <file> [-replace] [-json-path <expr>]

  Appends the accounts of a file to the ledger. With -replace, the ledger
  content is replaced instead.

  Files ending in .json are JSON documents: -json-path is a JSONPath
  expression selecting the account objects (default $.accounts[*]). Other
  files are CSV files in the ledger format.

  Nothing is written if any account of the file is invalid.

Usage Examples:
$ sav import -f backup.csv -replace
$ sav import -f bank.json -json-path '$.savings[*]'

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to import (required)")
	f.BoolVar(&c.replace, "replace", false, "Replace the accounts instead of appending")
	f.StringVar(&c.jsonPath, "json-path", "", "JSONPath expression selecting accounts in a JSON file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f flag is required.")
		return subcommands.ExitUsageError
	}

	imported, err := c.decode()
	if err != nil {
		return failure(err)
	}

	ledger := imported
	if !c.replace {
		ledger, err = DecodeLedger()
		if err != nil {
			return failure(err)
		}
		for _, a := range imported.Accounts() {
			ledger.Add(a)
		}
	}

	if err := EncodeLedger(ledger); err != nil {
		return failure(err)
	}
	fmt.Fprintf(output, "Imported %d accounts from %s\n", imported.Len(), c.file)
	return subcommands.ExitSuccess
}

// decode reads every account of the imported file.
func (c *importCmd) decode() (*savings.Ledger, error) {
	if !strings.EqualFold(filepath.Ext(c.file), ".json") {
		return savings.LoadLedgerFile(c.file)
	}

	r, err := os.Open(c.file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", c.file, err)
	}
	defer r.Close()

	path := c.jsonPath
	if path == "" {
		path = defaultJSONPath
	}
	accounts, err := savings.DecodeAccountsJSON(r, path)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", c.file, err)
	}
	ledger := savings.NewLedger()
	for _, a := range accounts {
		ledger.Add(a)
	}
	return ledger, nil
}
