package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/savings"
	"github.com/shopspring/decimal"
)

// Prompter reads commands and their fields from a console and hands them to
// a Session.
type Prompter struct {
	w io.Writer
	r *bufio.Reader
	s *Session

	// DefaultPath is offered when saving or loading.
	DefaultPath string
}

// NewPrompter creates a Prompter writing to w (e.g. os.Stdout) and reading
// from r (e.g. os.Stdin).
func NewPrompter(w io.Writer, r io.Reader, s *Session) *Prompter {
	return &Prompter{w: w, r: bufio.NewReader(r), s: s}
}

const menu = "Enter a command (add, update, list, save, load, done): "

// Run starts the interactive loop. It returns nil once the final projection
// has been printed, or when the input ends.
func (p *Prompter) Run(ctx context.Context) error {
	fmt.Fprintln(p.w, "Welcome to sav. Type 'done' to get your projection.")

	for {
		input, err := p.ask(ctx, menu)
		if err != nil {
			return p.end(err)
		}

		cmd, err := p.read(ctx, strings.ToLower(input))
		if errors.Is(err, savings.ErrInvalidInput) {
			fmt.Fprintln(p.w, err)
			continue
		}
		if err != nil {
			return p.end(err)
		}

		out, err := p.s.Handle(cmd)
		switch {
		case errors.Is(err, savings.ErrUndefinedGrowthRate):
			fmt.Fprintf(p.w, "cannot project: %v\n", err)
			continue
		case errors.Is(err, savings.ErrInvalidInput):
			fmt.Fprintln(p.w, err)
			continue
		case err != nil:
			fmt.Fprintf(p.w, "error: %v\n", err)
			continue
		}
		for _, line := range out.Lines {
			fmt.Fprintln(p.w, line)
		}
		if out.Done {
			return nil
		}
	}
}

// end converts the end of the input into a normal termination.
func (p *Prompter) end(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.w)
		return nil
	}
	return err
}

// read prompts for the fields of the command named 'action'.
func (p *Prompter) read(ctx context.Context, action string) (Command, error) {
	switch action {
	case "add":
		name, err := askUntil(p, ctx, "Enter account name: ", func(s string) (string, error) {
			if s == "" {
				return "", fmt.Errorf("%w: account name is empty", savings.ErrInvalidInput)
			}
			return s, nil
		})
		if err != nil {
			return nil, err
		}
		balance, monthly, rate, err := p.askFigures(ctx, name)
		if err != nil {
			return nil, err
		}
		a, err := savings.NewAccount(name, balance, monthly, rate)
		return Add{Account: a}, err

	case "update":
		name, err := p.ask(ctx, "Enter the name of the account to update: ")
		if err != nil {
			return nil, err
		}
		if _, ok := p.s.Ledger.Account(name); !ok {
			return Update{Name: name}, nil // reported as not found, without asking for figures
		}
		balance, monthly, rate, err := p.askFigures(ctx, name)
		if err != nil {
			return nil, err
		}
		return Update{Name: name, Balance: balance, Monthly: monthly, Rate: rate}, nil

	case "list":
		return List{}, nil

	case "save":
		path, err := p.askPath(ctx)
		return Save{Path: path}, err

	case "load":
		path, err := p.askPath(ctx)
		if err != nil {
			return nil, err
		}
		answer, err := p.ask(ctx, "Replace the current accounts? (y/N): ")
		if err != nil {
			return nil, err
		}
		return Load{Path: path, Replace: strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")}, nil

	case "done", "finish":
		years, err := askUntil(p, ctx, "Enter the number of years you plan to keep this investment: ", savings.ParseYears)
		return Finish{Years: years}, err
	}
	return nil, fmt.Errorf("%w: unknown command %q", savings.ErrInvalidInput, action)
}

// askFigures prompts for the three figures of an account.
func (p *Prompter) askFigures(ctx context.Context, name string) (balance, monthly, rate decimal.Decimal, err error) {
	amount := func(field string) func(string) (decimal.Decimal, error) {
		return func(s string) (decimal.Decimal, error) { return savings.ParseAmount(field, s) }
	}
	balance, err = askUntil(p, ctx, fmt.Sprintf("Enter current balance for %s: ", name), amount("current balance"))
	if err != nil {
		return
	}
	monthly, err = askUntil(p, ctx, fmt.Sprintf("Enter monthly input for %s: ", name), amount("monthly input"))
	if err != nil {
		return
	}
	rate, err = askUntil(p, ctx, fmt.Sprintf("Enter annual return rate (as a decimal, or like 7%%) for %s: ", name), func(s string) (decimal.Decimal, error) {
		return savings.ParseRate("annual return rate", s)
	})
	return
}

// askPath prompts for a file name, DefaultPath if left empty.
func (p *Prompter) askPath(ctx context.Context) (string, error) {
	prompt := "Enter file name: "
	if p.DefaultPath != "" {
		prompt = fmt.Sprintf("Enter file name [%s]: ", p.DefaultPath)
	}
	path, err := p.ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = p.DefaultPath
	}
	return path, nil
}

// askUntil prompts again until 'parse' accepts the input.
func askUntil[T any](p *Prompter, ctx context.Context, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		input, err := p.ask(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(input)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, savings.ErrInvalidInput) {
			return v, err
		}
		fmt.Fprintln(p.w, err)
	}
}

// ask prints the prompt and returns the trimmed next line of input.
func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil // last line without a newline
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
