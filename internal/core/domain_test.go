package core

import (
	"errors"
	"testing"
)

func TestParseTransactionType(t *testing.T) {
	cases := []struct {
		in  string
		out TransactionType
		ok  bool
	}{
		{"income", Income, true},
		{"expense", Expense, true},
		{"Income", Income, true},
		{"EXPENSE", Expense, true},
		{"  income  ", Income, true},
		{"bogus", "", false},
		{"", "", false},
		{"incomes", "", false},
	}
	for _, tc := range cases {
		got, err := ParseTransactionType(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidType) {
				t.Fatalf("%q expected ErrInvalidType, got %v", tc.in, err)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-03")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.String() != "2024-05-03" {
		t.Fatalf("round trip mismatch: %s", d)
	}

	if _, err := ParseDate("03/05/2024"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestTodayIsNotZero(t *testing.T) {
	if Today().IsZero() {
		t.Fatal("Today returned the zero date")
	}
}
