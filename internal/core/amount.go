// Package core holds the domain model: users, sessions, transactions and
// the parsing/validation rules that guard what reaches storage.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw user input into an exact decimal amount.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted.
// Negative amounts are rejected: a transaction's direction is carried by its
// type, never by the sign of the amount. Returns ErrInvalidAmount for
// anything that does not parse.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
