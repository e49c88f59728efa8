package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/savings"
)

// run plays 'input' in a new prompter over 'ledger' and returns its output.
func run(t *testing.T, ledger *savings.Ledger, input string) string {
	t.Helper()
	var out bytes.Buffer
	p := NewPrompter(&out, strings.NewReader(input), New(ledger, "GBP"))
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestPrompter_Run(t *testing.T) {
	input := strings.Join([]string{
		"add", "ISA", "1000", "abc", "100", "7%",
		"list",
		"update", "Nope",
		"fly",
		"done", "-1", "1",
	}, "\n") + "\n"

	got := run(t, savings.NewLedger(), input)
	assertContains(t, got,
		"Enter current balance for ISA: ",
		`invalid input: monthly input "abc" is not a number`,
		`Account "ISA" added.`,
		"ISA: balance £1,000.00, monthly input £100.00, return rate 7.00%",
		`Account "Nope" not found.`,
		`invalid input: unknown command "fly"`,
		"invalid input: years -1 is negative",
		"Your total predicted balance after 1 years is: £2,315.03",
	)
}

func TestPrompter_UpdateAndEmptyName(t *testing.T) {
	l := savings.NewLedger()
	input := "add\n\nCash\n0\n0\n0\nupdate\nCash\n500\n50\n0.05\ndone\n2\n"

	got := run(t, l, input)
	assertContains(t, got,
		"invalid input: account name is empty",
		`Account "Cash" updated.`,
		"Your total predicted balance after 2 years is: £1,814.31",
	)
}

func TestPrompter_UndefinedRate(t *testing.T) {
	l := savings.NewLedger()
	got := run(t, l, "add\nWiped\n1000\n0\n-100%\ndone\n1\n")

	assertContains(t, got, `cannot project: account "Wiped": undefined growth rate`)
	if strings.Contains(got, "Your total predicted balance") {
		t.Errorf("a total was printed for an undefined rate:\n%s", got)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestPrompter_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.csv")

	input := "add\nISA\n1000\n100\n0.07\nsave\n\nload\n\nn\nlist\n"
	var out bytes.Buffer
	l := savings.NewLedger()
	p := NewPrompter(&out, strings.NewReader(input), New(l, "GBP"))
	p.DefaultPath = path
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	assertContains(t, out.String(),
		"Enter file name ["+path+"]: ",
		"Saved 1 accounts to "+path+".",
		"Loaded 1 accounts from "+path+".",
	)
	if l.Len() != 2 {
		t.Errorf("Len() after appending the saved file = %d, want 2", l.Len())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("ledger file not written: %v", err)
	}

	// A bad file reports the error and the session goes on.
	if err := os.WriteFile(path, []byte("not,a,ledger\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got := run(t, l, "load\n"+path+"\ny\nlist\n")
	assertContains(t, got, "error: ", "line 1")
	if l.Len() != 2 {
		t.Errorf("failed replace changed the ledger: Len() = %d, want 2", l.Len())
	}
}

func TestPrompter_EndOfInput(t *testing.T) {
	// No trailing newline on the last line and no 'done'.
	got := run(t, savings.NewLedger(), "add\nISA\n1\n2\n3")
	if strings.Contains(got, "Your total predicted balance") {
		t.Errorf("a total was printed without 'done':\n%s", got)
	}
}

func TestPrompter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := NewPrompter(&out, strings.NewReader("list\n"), New(savings.NewLedger(), "GBP"))
	if err := p.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
