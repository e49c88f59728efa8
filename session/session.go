// Package session implements the interactive account session: a command
// handler over a ledger, and a console Prompter that drives it.
package session

import (
	"fmt"
	"log"

	"github.com/etnz/savings"
	"github.com/shopspring/decimal"
)

// Command is an action requested during a session.
type Command interface {
	command()
}

// Add appends an account to the ledger.
type Add struct {
	Account savings.Account
}

// Update changes the figures of the first account called Name.
type Update struct {
	Name                   string
	Balance, Monthly, Rate decimal.Decimal
}

// Save writes the ledger to a CSV file.
type Save struct {
	Path string
}

// Load reads a CSV file into the ledger. Records are appended unless Replace
// is set, in which case the ledger content is swapped only if the whole file
// is valid.
type Load struct {
	Path    string
	Replace bool
}

// List describes every account.
type List struct{}

// Finish projects the whole ledger after Years years and ends the session.
type Finish struct {
	Years int
}

func (Add) command()    {}
func (Update) command() {}
func (Save) command()   {}
func (Load) command()   {}
func (List) command()   {}
func (Finish) command() {}

// Outcome is the result of a successfully handled command.
type Outcome struct {
	Lines []string        // messages for the user, in order
	Done  bool            // the session is over
	Total decimal.Decimal // the aggregate projection, set by Finish
}

// Session applies commands to a ledger.
type Session struct {
	Ledger   *savings.Ledger
	Currency string // display currency
}

// New returns a session over 'ledger'. Amounts are displayed in 'currency'.
func New(ledger *savings.Ledger, currency string) *Session {
	return &Session{Ledger: ledger, Currency: currency}
}

// Handle applies a single command.
//
// An unknown account in Update is not an error: the outcome says so and the
// ledger is untouched.
func (s *Session) Handle(cmd Command) (Outcome, error) {
	switch c := cmd.(type) {
	case Add:
		s.Ledger.Add(c.Account)
		return message("Account %q added.", c.Account.Name()), nil

	case Update:
		if !s.Ledger.Update(c.Name, c.Balance, c.Monthly, c.Rate) {
			return message("Account %q not found.", c.Name), nil
		}
		return message("Account %q updated.", c.Name), nil

	case List:
		if s.Ledger.Len() == 0 {
			return message("No accounts."), nil
		}
		return Outcome{Lines: s.Ledger.Summaries(s.Currency)}, nil

	case Save:
		if c.Path == "" {
			return Outcome{}, fmt.Errorf("%w: no file name", savings.ErrInvalidInput)
		}
		if err := savings.SaveLedgerFile(c.Path, s.Ledger); err != nil {
			return Outcome{}, err
		}
		log.Printf("saved %d accounts to %q", s.Ledger.Len(), c.Path)
		return message("Saved %d accounts to %s.", s.Ledger.Len(), c.Path), nil

	case Load:
		if c.Path == "" {
			return Outcome{}, fmt.Errorf("%w: no file name", savings.ErrInvalidInput)
		}
		before := s.Ledger.Len()
		if c.Replace {
			if err := s.Ledger.ReplaceFile(c.Path); err != nil {
				return Outcome{}, err
			}
			return message("Loaded %d accounts from %s.", s.Ledger.Len(), c.Path), nil
		}
		err := s.Ledger.LoadFile(c.Path)
		added := s.Ledger.Len() - before
		if err != nil {
			log.Printf("%d accounts appended from %q before the error", added, c.Path)
			return Outcome{}, err
		}
		return message("Loaded %d accounts from %s.", added, c.Path), nil

	case Finish:
		if c.Years < 0 || c.Years > savings.MaxYears {
			return Outcome{}, fmt.Errorf("%w: years %d is not between 0 and %d", savings.ErrInvalidInput, c.Years, savings.MaxYears)
		}
		total, err := s.Ledger.AggregateProjection(c.Years)
		if err != nil {
			return Outcome{}, err
		}
		out := message("Your total predicted balance after %d years is: %s", c.Years, savings.M(total, s.Currency))
		out.Done, out.Total = true, total
		return out, nil
	}
	return Outcome{}, fmt.Errorf("unsupported command %T", cmd)
}

func message(format string, args ...any) Outcome {
	return Outcome{Lines: []string{fmt.Sprintf(format, args...)}}
}
