package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// InsertTransaction implements store.TransactionStore. The transaction is
// expected to be validated already; amount and date are stored in their
// canonical text forms.
func (r *SQLiteRepository) InsertTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, type, amount, note, date) VALUES (?, ?, ?, ?, ?)`,
		tx.UserID, tx.Type.String(), tx.Amount.String(), tx.Note, tx.Date.String())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("last insert id: %w", err)
	}
	tx.ID = id

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"user_id", tx.UserID,
		"type", tx.Type.String(),
		"amount", tx.Amount.String(),
		"date", tx.Date.String())

	return tx, nil
}

// TransactionsByUser implements store.TransactionStore.
func (r *SQLiteRepository) TransactionsByUser(ctx context.Context, userID int64) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, amount, note, date
		 FROM transactions
		 WHERE user_id = ?
		 ORDER BY date, id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions by user: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// TransactionsByMonth implements store.TransactionStore. Dates are stored as
// YYYY-MM-DD, so a month is a simple prefix match.
func (r *SQLiteRepository) TransactionsByMonth(ctx context.Context, userID int64, ym core.YearMonth) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, amount, note, date
		 FROM transactions
		 WHERE user_id = ? AND date LIKE ?
		 ORDER BY date, id`,
		userID, ym.String()+"-%")
	if err != nil {
		return nil, fmt.Errorf("query transactions by month: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0)
	for rows.Next() {
		var (
			tx      core.Transaction
			txType  string
			rawDate string
		)
		if err := rows.Scan(&tx.ID, &tx.UserID, &txType, &tx.Amount, &tx.Note, &rawDate); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		tx.Type = core.TransactionType(txType)

		date, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", rawDate, err)
		}
		tx.Date = date

		out = append(out, tx)
	}
	return out, rows.Err()
}
