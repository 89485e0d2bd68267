package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2024-05")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if ym.Year != 2024 || ym.Month != time.May {
		t.Fatalf("unexpected result %+v", ym)
	}
	if ym.String() != "2024-05" {
		t.Fatalf("round trip mismatch: %s", ym)
	}

	for _, bad := range []string{"2024", "2024-13", "05-2024", ""} {
		if _, err := ParseYearMonth(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestDateYearMonth(t *testing.T) {
	d := NewDate(2024, 5, 3)
	ym := d.YearMonth()
	if ym != (YearMonth{Year: 2024, Month: time.May}) {
		t.Fatalf("unexpected year-month %+v", ym)
	}
}

func TestMonthlySummaryBalance(t *testing.T) {
	s := NewMonthlySummary(YearMonth{Year: 2024, Month: time.May})
	if !s.Income.IsZero() || !s.Expense.IsZero() {
		t.Fatalf("new summary should start at zero: %+v", s)
	}

	s.Income = decimal.RequireFromString("200")
	s.Expense = decimal.RequireFromString("50.25")
	if !s.Balance().Equal(decimal.RequireFromString("149.75")) {
		t.Fatalf("unexpected balance %s", s.Balance())
	}
}
