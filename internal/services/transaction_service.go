package services

import (
	"context"
	"fmt"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// TransactionInput is the raw user input for a new transaction, before any
// normalization or validation.
type TransactionInput struct {
	Type   string
	Amount string
	Note   string
	Date   core.Date // zero value means today
}

// TransactionService records and reports a user's transactions. Every call
// takes the session established by AccountService.Authenticate.
type TransactionService struct {
	txs store.TransactionStore
}

func NewTransactionService(txs store.TransactionStore) *TransactionService {
	return &TransactionService{txs: txs}
}

// Add validates the input and persists a new transaction. The type is
// normalized to lowercase, the amount parsed as an exact decimal, and the
// date defaults to the current calendar date. On core.ErrInvalidType or
// core.ErrInvalidAmount nothing reaches storage.
func (s *TransactionService) Add(ctx context.Context, sess core.Session, input TransactionInput) (core.Transaction, error) {
	txType, err := core.ParseTransactionType(input.Type)
	if err != nil {
		return core.Transaction{}, err
	}

	amount, err := core.ParseAmount(input.Amount)
	if err != nil {
		return core.Transaction{}, err
	}

	date := input.Date
	if date.IsZero() {
		date = core.Today()
	}

	tx := core.Transaction{
		UserID: sess.UserID,
		Type:   txType,
		Amount: amount,
		Note:   input.Note,
		Date:   date,
	}

	stored, err := s.txs.InsertTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	return stored, nil
}

// List returns all of the user's transactions ordered by date then id.
// A user with no transactions gets an empty slice.
func (s *TransactionService) List(ctx context.Context, sess core.Session) ([]core.Transaction, error) {
	txs, err := s.txs.TransactionsByUser(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// MonthlySummary sums the user's income and expense amounts for one month.
// Months with no transactions yield zero totals, never an error.
func (s *TransactionService) MonthlySummary(ctx context.Context, sess core.Session, ym core.YearMonth) (core.MonthlySummary, error) {
	txs, err := s.txs.TransactionsByMonth(ctx, sess.UserID, ym)
	if err != nil {
		return core.MonthlySummary{}, fmt.Errorf("load month transactions: %w", err)
	}

	summary := core.NewMonthlySummary(ym)
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			summary.Income = summary.Income.Add(tx.Amount)
		case core.Expense:
			summary.Expense = summary.Expense.Add(tx.Amount)
		}
	}
	return summary, nil
}
