package savings

import (
	"errors"
	"testing"
)

func TestNewAccount_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		if _, err := NewAccount(name, D("1"), D("1"), D("0.01")); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewAccount(%q) error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestMonthlyRate(t *testing.T) {
	testCases := []struct {
		name   string
		annual string
		want   string
	}{
		{name: "zero", annual: "0", want: "0"},
		{name: "seven percent", annual: "0.07", want: "0.005654145387"},
		{name: "doubling", annual: "1", want: "0.059463094359"},
		{name: "loss", annual: "-0.2", want: "-0.018423470126"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MonthlyRate(D(tc.annual))
			if err != nil {
				t.Fatalf("MonthlyRate(%s) error = %v", tc.annual, err)
			}
			assertNear(t, got, tc.want, "0.000000000001")
		})
	}
}

func TestMonthlyRate_Undefined(t *testing.T) {
	for _, annual := range []string{"-1", "-1.5"} {
		if _, err := MonthlyRate(D(annual)); !errors.Is(err, ErrUndefinedGrowthRate) {
			t.Errorf("MonthlyRate(%s) error = %v, want ErrUndefinedGrowthRate", annual, err)
		}
	}
}

func TestAccount_ProjectBalance(t *testing.T) {
	testCases := []struct {
		name                   string
		balance, monthly, rate string
		years                  int
		want                   string
	}{
		{name: "reference scenario", balance: "1000", monthly: "100", rate: "0.07", years: 1, want: "2315.0297145511"},
		{name: "ten years", balance: "1000", monthly: "100", rate: "0.07", years: 10, want: "19169.0396186321"},
		{name: "no growth", balance: "0", monthly: "100", rate: "0", years: 1, want: "1200"},
		{name: "withdrawals go negative", balance: "100", monthly: "-50", rate: "0", years: 1, want: "-500"},
		{name: "no contribution", balance: "2000", monthly: "0", rate: "0.05", years: 1, want: "2100"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAccount(t, "A", tc.balance, tc.monthly, tc.rate)
			got, err := a.ProjectBalance(tc.years)
			if err != nil {
				t.Fatalf("ProjectBalance(%d) error = %v", tc.years, err)
			}
			assertNear(t, got, tc.want, "0.000001")
		})
	}
}

func TestAccount_ProjectBalance_ReferenceDisplay(t *testing.T) {
	a := newAccount(t, "ISA", "1000", "100", "0.07")
	got, err := a.ProjectBalance(1)
	if err != nil {
		t.Fatal(err)
	}
	if s := got.StringFixed(2); s != "2315.03" {
		t.Errorf("ProjectBalance(1) = %s, want 2315.03", s)
	}
}

func TestAccount_ProjectBalance_ZeroYears(t *testing.T) {
	// Zero years never needs the rate, even an undefined one.
	for _, rate := range []string{"0.07", "-0.3", "-1"} {
		a := newAccount(t, "A", "1234.5678", "100", rate)
		got, err := a.ProjectBalance(0)
		if err != nil {
			t.Fatalf("rate %s: ProjectBalance(0) error = %v", rate, err)
		}
		if !got.Equal(D("1234.5678")) {
			t.Errorf("rate %s: ProjectBalance(0) = %s, want the current balance", rate, got)
		}
	}
}

func TestAccount_ProjectBalance_AnnualCompounding(t *testing.T) {
	// Without contributions, twelve monthly steps must compound to the annual rate.
	testCases := []struct {
		rate  string
		years int
		want  string
	}{
		{rate: "0.07", years: 3, want: "1225.043"},
		{rate: "0.05", years: 10, want: "1628.894626777442"},
		{rate: "-0.1", years: 2, want: "810"},
	}
	for _, tc := range testCases {
		a := newAccount(t, "A", "1000", "0", tc.rate)
		got, err := a.ProjectBalance(tc.years)
		if err != nil {
			t.Fatalf("rate %s: ProjectBalance(%d) error = %v", tc.rate, tc.years, err)
		}
		assertNear(t, got, tc.want, "0.0000001")
	}
}

func TestAccount_ProjectBalance_Errors(t *testing.T) {
	a := newAccount(t, "Broke", "1000", "10", "-1")
	if _, err := a.ProjectBalance(1); !errors.Is(err, ErrUndefinedGrowthRate) {
		t.Errorf("ProjectBalance with rate -1 error = %v, want ErrUndefinedGrowthRate", err)
	}

	b := newAccount(t, "A", "1000", "10", "0.07")
	if _, err := b.ProjectBalance(-1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ProjectBalance(-1) error = %v, want ErrInvalidInput", err)
	}
	// 768614336404564651*12 overflows an int.
	for _, years := range []int{MaxYears + 1, 768614336404564651} {
		if _, err := b.ProjectBalance(years); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ProjectBalance(%d) error = %v, want ErrInvalidInput", years, err)
		}
	}
	if _, err := b.ProjectBalance(MaxYears); err != nil {
		t.Errorf("ProjectBalance(MaxYears) error = %v", err)
	}
}

func TestAccount_ProjectBalance_NoSideEffect(t *testing.T) {
	a := newAccount(t, "A", "1000", "100", "0.07")
	if _, err := a.ProjectBalance(5); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(D("1000")) || !a.MonthlyInput().Equal(D("100")) || !a.AnnualRate().Equal(D("0.07")) {
		t.Errorf("account changed by projection: %v", a)
	}
}

func TestAccount_Contributions(t *testing.T) {
	a := newAccount(t, "A", "1000", "100", "0.07")
	if got := a.Contributions(2); !got.Equal(D("3400")) {
		t.Errorf("Contributions(2) = %s, want 3400", got)
	}
}
