package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType is the fixed income/expense classification.
	TransactionType string

	// Date is a calendar date; the time portion is always midnight UTC.
	Date struct {
		time.Time
	}

	// User is a registered account. The password is never held in clear:
	// only the bcrypt digest is stored.
	User struct {
		ID           int64
		Username     string
		PasswordHash string
	}

	// Session identifies the authenticated user for the duration of the
	// process. It is passed explicitly to every transaction operation.
	Session struct {
		UserID int64
	}

	// Transaction is an immutable income or expense record owned by one user.
	Transaction struct {
		ID     int64
		UserID int64
		Type   TransactionType
		Amount decimal.Decimal
		Note   string
		Date   Date
	}
)

var (
	ErrEmptyUsername        = errors.New("empty username")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrInvalidAmount        = errors.New("invalid amount")
)

// ParseTransactionType normalizes raw input to a TransactionType.
// Input is case-insensitive and surrounding whitespace is ignored.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", ErrInvalidType
	}
}

func (t TransactionType) String() string {
	return string(t)
}

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String renders the date as YYYY-MM-DD, the storage representation.
func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}
