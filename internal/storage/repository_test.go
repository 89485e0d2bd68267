package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")

	repo, err := NewSQLiteRepository(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	repo.Close()

	// Second start against the same file must be a no-op.
	repo, err = NewSQLiteRepository(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	repo.Close()
}

func TestCreateUserAndLookup(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "alice", "hash-a")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("user id not generated")
	}

	found, err := repo.UserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found == nil || found.ID != user.ID || found.PasswordHash != "hash-a" {
		t.Fatalf("unexpected user %+v", found)
	}

	missing, err := repo.UserByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("lookup missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown username, got %+v", missing)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, "alice", "hash-a"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := repo.CreateUser(ctx, "alice", "hash-b")
	if !errors.Is(err, core.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	var count int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("user count changed after failed insert: %d", count)
	}
}

func TestInsertAndListTransactions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "alice", "hash-a")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Inserted out of chronological order on purpose.
	inputs := []core.Transaction{
		{UserID: user.ID, Type: core.Expense, Amount: decimal.RequireFromString("50"), Note: "groceries", Date: core.NewDate(2024, 5, 10)},
		{UserID: user.ID, Type: core.Income, Amount: decimal.RequireFromString("100.50"), Note: "salary", Date: core.NewDate(2024, 5, 3)},
	}
	for _, tx := range inputs {
		stored, err := repo.InsertTransaction(ctx, tx)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if stored.ID == 0 {
			t.Fatal("transaction id not generated")
		}
	}

	txs, err := repo.TransactionsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(txs))
	}
	if txs[0].Date.String() != "2024-05-03" || txs[1].Date.String() != "2024-05-10" {
		t.Fatalf("rows not ordered by date: %s, %s", txs[0].Date, txs[1].Date)
	}
	if !txs[0].Amount.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("amount round trip broken: %s", txs[0].Amount)
	}
	if txs[0].Note != "salary" {
		t.Fatalf("unexpected note %q", txs[0].Note)
	}

	empty, err := repo.TransactionsByUser(ctx, user.ID+1)
	if err != nil {
		t.Fatalf("list for other user: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no rows for other user, got %d", len(empty))
	}
}

func TestTransactionsByMonth(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "alice", "hash-a")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	dates := []core.Date{
		core.NewDate(2024, 5, 3),
		core.NewDate(2024, 5, 31),
		core.NewDate(2024, 6, 1),
	}
	for _, d := range dates {
		_, err := repo.InsertTransaction(ctx, core.Transaction{
			UserID: user.ID,
			Type:   core.Expense,
			Amount: decimal.RequireFromString("1"),
			Date:   d,
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	may, _ := core.ParseYearMonth("2024-05")
	txs, err := repo.TransactionsByMonth(ctx, user.ID, may)
	if err != nil {
		t.Fatalf("by month: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 rows in 2024-05, got %d", len(txs))
	}

	july, _ := core.ParseYearMonth("2024-07")
	txs, err = repo.TransactionsByMonth(ctx, user.ID, july)
	if err != nil {
		t.Fatalf("by empty month: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected no rows in 2024-07, got %d", len(txs))
	}
}

func TestInsertTransactionRejectsUnknownType(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "alice", "hash-a")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// The CHECK constraint is the last line of defense behind service
	// validation.
	_, err = repo.InsertTransaction(ctx, core.Transaction{
		UserID: user.ID,
		Type:   core.TransactionType("bogus"),
		Amount: decimal.RequireFromString("1"),
		Date:   core.NewDate(2024, 5, 3),
	})
	if err == nil {
		t.Fatal("expected constraint error for bogus type")
	}
}
