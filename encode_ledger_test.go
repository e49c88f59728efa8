package savings

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	stream := `name,current_balance,monthly_input,annual_return_rate
ISA,1000,100,0.07
"Rainy day, joint",250.50,-10,0.015
Pension,120000.123456789,450,0.055
`
	ledger, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if got, want := names(ledger), []string{"ISA", "Rainy day, joint", "Pension"}; !slices.Equal(got, want) {
		t.Fatalf("DecodeLedger() names = %q, want %q", got, want)
	}
	pension, _ := ledger.Account("Pension")
	if !pension.Balance().Equal(D("120000.123456789")) {
		t.Errorf("Pension balance = %s, want all digits kept", pension.Balance())
	}
	joint, _ := ledger.Account("Rainy day, joint")
	if !joint.MonthlyInput().Equal(D("-10")) {
		t.Errorf("joint monthly input = %s, want -10", joint.MonthlyInput())
	}
}

func TestDecodeLedger_HeaderOnly(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader("name,current_balance,monthly_input,annual_return_rate\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledger.Len())
	}
}

func TestEncodeLedger(t *testing.T) {
	l := NewLedger()
	l.Add(newAccount(t, "ISA", "1000", "100", "0.07"))
	l.Add(newAccount(t, "Rainy day, joint", "250.50", "-10", "0.015"))

	var b bytes.Buffer
	if err := EncodeLedger(&b, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	want := `name,current_balance,monthly_input,annual_return_rate
ISA,1000,100,0.07
"Rainy day, joint",250.5,-10,0.015
`
	if got := b.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeLedger_Empty(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeLedger(&b, NewLedger()); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "name,current_balance,monthly_input,annual_return_rate\n"; got != want {
		t.Errorf("EncodeLedger() = %q, want %q", got, want)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	l := NewLedger()
	l.Add(newAccount(t, "ISA", "1000", "100", "0.07"))
	l.Add(newAccount(t, "ISA", "3.14159265358979", "0", "-0.5"))
	l.Add(newAccount(t, `Quote "me"`, "-1", "2", "1"))

	first := snapshot(t, l)
	decoded, err := DecodeLedger(strings.NewReader(first))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if second := snapshot(t, decoded); second != first {
		t.Errorf("round trip changed the ledger:\n%s\nwant:\n%s", second, first)
	}
	got, _ := decoded.AggregateProjection(5)
	want, _ := l.AggregateProjection(5)
	if !got.Equal(want) {
		t.Errorf("projection after round trip = %s, want %s", got, want)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	const header = "name,current_balance,monthly_input,annual_return_rate\n"
	testCases := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "empty input", input: "", wantLine: 1},
		{name: "wrong header", input: "name,balance\nISA,1\n", wantLine: 1},
		{name: "header order", input: "current_balance,name,monthly_input,annual_return_rate\n", wantLine: 1},
		{name: "missing field", input: header + "ISA,1000,100,0.07\nBad,1,2\n", wantLine: 3},
		{name: "extra field", input: header + "Bad,1,2,3,4\n", wantLine: 2},
		{name: "not a number", input: header + "ISA,1000,100,0.07\nA,1,2,3\nB,lots,1,0\n", wantLine: 4},
		{name: "empty name", input: header + " ,1,2,3\n", wantLine: 2},
		{name: "empty rate", input: header + "ISA,1,2,\n", wantLine: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.input))
			if !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("DecodeLedger() error = %v, want ErrMalformedRecord", err)
			}
			var re *RecordError
			if !errors.As(err, &re) {
				t.Fatalf("DecodeLedger() error = %v, want a *RecordError", err)
			}
			if re.Line != tc.wantLine {
				t.Errorf("error line = %d, want %d (%v)", re.Line, tc.wantLine, err)
			}
		})
	}
}

func TestLedger_LoadAppends(t *testing.T) {
	stream := "name,current_balance,monthly_input,annual_return_rate\nISA,1000,100,0.07\n"

	l := NewLedger()
	l.Add(newAccount(t, "Existing", "1", "1", "0"))
	for range 2 {
		if err := l.Load(strings.NewReader(stream)); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}
	if got, want := names(l), []string{"Existing", "ISA", "ISA"}; !slices.Equal(got, want) {
		t.Errorf("names = %q, want %q", got, want)
	}
}

func TestLedger_LoadKeepsRecordsBeforeError(t *testing.T) {
	stream := "name,current_balance,monthly_input,annual_return_rate\nA,1,1,0\nB,1,1,0\nC,oops,1,0\nD,1,1,0\n"

	l := NewLedger()
	err := l.Load(strings.NewReader(stream))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Load() error = %v, want ErrMalformedRecord", err)
	}
	if got, want := names(l), []string{"A", "B"}; !slices.Equal(got, want) {
		t.Errorf("names = %q, want %q", got, want)
	}
}

func TestLedger_Replace(t *testing.T) {
	l := NewLedger()
	l.Add(newAccount(t, "Old", "1", "1", "0"))

	good := "name,current_balance,monthly_input,annual_return_rate\nNew,2,2,0.02\n"
	if err := l.Replace(strings.NewReader(good)); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got, want := names(l), []string{"New"}; !slices.Equal(got, want) {
		t.Errorf("names after Replace = %q, want %q", got, want)
	}

	before := snapshot(t, l)
	bad := "name,current_balance,monthly_input,annual_return_rate\nA,1,1,0\nB,x,1,0\n"
	if err := l.Replace(strings.NewReader(bad)); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Replace() error = %v, want ErrMalformedRecord", err)
	}
	if after := snapshot(t, l); after != before {
		t.Errorf("failed Replace changed the ledger:\n%s\nwant:\n%s", after, before)
	}
}
