package savings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Header is the mandatory first record of a ledger file.
var Header = []string{"name", "current_balance", "monthly_input", "annual_return_rate"}

// DecodeLedger decodes a CSV stream into a new Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	if err := decodeRecords(r, ledger.Add); err != nil {
		return nil, err
	}
	return ledger, nil
}

// decodeRecords reads the header and then every record of a CSV stream,
// calling 'add' with each decoded account as soon as it is read.
func decodeRecords(r io.Reader, add func(Account)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked per record to report the line.

	header, err := cr.Read()
	if err == io.EOF {
		return recordErrorf(1, "missing header, want %q", strings.Join(Header, ","))
	}
	if err != nil {
		return csvError(err)
	}
	if !slices.Equal(header, Header) {
		return recordErrorf(1, "invalid header %q, want %q", strings.Join(header, ","), strings.Join(Header, ","))
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return csvError(err)
		}
		line, _ := cr.FieldPos(0)

		account, err := decodeRecord(line, record)
		if err != nil {
			return err
		}
		add(account)
	}
}

// decodeRecord converts a single CSV record into an Account.
func decodeRecord(line int, record []string) (Account, error) {
	if len(record) != len(Header) {
		return Account{}, recordErrorf(line, "got %d fields, want %d", len(record), len(Header))
	}
	if strings.TrimSpace(record[0]) == "" {
		return Account{}, recordErrorf(line, "empty account name")
	}
	var values [3]decimal.Decimal
	for i, field := range record[1:] {
		v, err := decimal.NewFromString(strings.TrimSpace(field))
		if err != nil {
			return Account{}, recordErrorf(line, "%s %q is not a number", Header[i+1], field)
		}
		values[i] = v
	}
	return Account{name: record[0], balance: values[0], monthly: values[1], rate: values[2]}, nil
}

// csvError converts a csv.ParseError into a RecordError on the same line.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RecordError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, pe.Err)}
	}
	return fmt.Errorf("error reading from input: %w", err)
}

// EncodeAccount writes a single account as a CSV record.
func EncodeAccount(w *csv.Writer, a Account) error {
	return w.Write([]string{a.name, a.balance.String(), a.monthly.String(), a.rate.String()})
}

// EncodeLedger writes the header and then every account, in insertion order,
// to 'w'. Values are written exactly, without rounding.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, a := range ledger.accounts {
		if err := EncodeAccount(cw, a); err != nil {
			return fmt.Errorf("failed to write account %q: %w", a.name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
