package savings

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultJSONPath selects the accounts in a document written by EncodeLedgerJSON.
const DefaultJSONPath = "$.accounts[*]"

// MarshalJSON writes the account with its keys in the ledger file column order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(Header[0], a.name)
	w.Number(Header[1], a.balance)
	w.Number(Header[2], a.monthly)
	w.Number(Header[3], a.rate)
	return w.MarshalJSON()
}

// EncodeLedgerJSON writes the ledger as a JSON document {"accounts":[...]}.
func EncodeLedgerJSON(w io.Writer, ledger *Ledger) error {
	accounts := ledger.accounts
	if accounts == nil {
		accounts = []Account{}
	}
	doc := struct {
		Accounts []Account `json:"accounts"`
	}{accounts}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	return nil
}

// DecodeAccountsJSON reads a JSON document and returns the accounts selected
// by the JSONPath expression 'path' (DefaultJSONPath if empty).
//
// Each selected value must be an object with the ledger file column names
// as keys. Numbers can be JSON numbers or strings.
func DecodeAccountsJSON(r io.Reader, path string) ([]Account, error) {
	if path == "" {
		path = DefaultJSONPath
	}

	dec := json.NewDecoder(r)
	dec.UseNumber() // keep all the digits
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode JSON document: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not select %q: %w", path, err)
	}
	// jsonpath returns a list for wildcards and filters, a single value otherwise.
	items, ok := selected.([]any)
	if !ok {
		items = []any{selected}
	}

	accounts := make([]Account, 0, len(items))
	for i, item := range items {
		a, err := decodeJSONAccount(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// decodeJSONAccount converts a generic JSON object into an Account.
func decodeJSONAccount(item any) (Account, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Account{}, fmt.Errorf("%w: not a JSON object: %v", ErrMalformedRecord, item)
	}
	name, _ := obj[Header[0]].(string)
	if strings.TrimSpace(name) == "" {
		return Account{}, fmt.Errorf("%w: missing %q", ErrMalformedRecord, Header[0])
	}
	var values [3]decimal.Decimal
	for i, key := range Header[1:] {
		v, err := jsonDecimal(obj[key])
		if err != nil {
			return Account{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, key, err)
		}
		values[i] = v
	}
	return Account{name: name, balance: values[0], monthly: values[1], rate: values[2]}, nil
}

func jsonDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	case nil:
		return decimal.Zero, fmt.Errorf("missing value")
	}
	return decimal.Zero, fmt.Errorf("%v is not a number", v)
}
