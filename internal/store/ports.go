package store

import (
	"context"

	"fintrack/internal/core"
)

// Ports for outbound storage adapters.
type (
	// UserStore persists registered accounts.
	UserStore interface {
		// CreateUser inserts a new user and returns it with its generated ID.
		// Returns core.ErrDuplicateUsername when the username is taken;
		// storage is left unchanged in that case.
		CreateUser(ctx context.Context, username, passwordHash string) (core.User, error)

		// UserByUsername returns the user with the given username, or
		// (nil, nil) when no such user exists.
		UserByUsername(ctx context.Context, username string) (*core.User, error)
	}

	// TransactionStore persists immutable income/expense records.
	TransactionStore interface {
		// InsertTransaction stores a validated transaction and returns it
		// with its generated ID.
		InsertTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)

		// TransactionsByUser returns every transaction owned by the user,
		// ordered by date then id. No rows is an empty slice, not an error.
		TransactionsByUser(ctx context.Context, userID int64) ([]core.Transaction, error)

		// TransactionsByMonth returns the user's transactions whose date
		// falls in the given month, ordered by date then id.
		TransactionsByMonth(ctx context.Context, userID int64, ym core.YearMonth) ([]core.Transaction, error)
	}
)
