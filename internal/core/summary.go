package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthlySummary is the income-vs-expense aggregate for one month.
// Months with no transactions yield zero totals.
type MonthlySummary struct {
	Month   YearMonth
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CurrentYearMonth returns the month of the current calendar date.
func CurrentYearMonth() YearMonth {
	return Today().YearMonth()
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// String renders the month as YYYY-MM, the prefix of every date in it.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// YearMonth returns the month the date falls in.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year(), Month: d.Time.Month()}
}

// NewMonthlySummary returns a summary with both totals at zero.
func NewMonthlySummary(ym YearMonth) MonthlySummary {
	return MonthlySummary{Month: ym, Income: decimal.Zero, Expense: decimal.Zero}
}

// Balance is income minus expense for the month.
func (s MonthlySummary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}
