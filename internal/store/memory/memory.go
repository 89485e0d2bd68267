// Package memory is an in-memory store implementation. It backs the
// "memory" backend and keeps service tests free of any database file.
package memory

import (
	"context"
	"sort"
	"sync"

	"fintrack/internal/core"
)

type Store struct {
	mu     sync.Mutex
	users  []core.User
	txs    []core.Transaction
	nextID int64
}

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) CreateUser(_ context.Context, username, passwordHash string) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return core.User{}, core.ErrDuplicateUsername
		}
	}
	u := core.User{ID: s.nextID, Username: username, PasswordHash: passwordHash}
	s.nextID++
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) InsertTransaction(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	s.txs = append(s.txs, tx)
	return tx, nil
}

func (s *Store) TransactionsByUser(_ context.Context, userID int64) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, 0)
	for _, tx := range s.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sortByDateThenID(out)
	return out, nil
}

func (s *Store) TransactionsByMonth(_ context.Context, userID int64, ym core.YearMonth) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, 0)
	for _, tx := range s.txs {
		if tx.UserID == userID && tx.Date.YearMonth() == ym {
			out = append(out, tx)
		}
	}
	sortByDateThenID(out)
	return out, nil
}

// Close satisfies the backend cleanup contract; nothing to release.
func (s *Store) Close() error {
	return nil
}

func sortByDateThenID(txs []core.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date.Time) {
			return txs[i].Date.Before(txs[j].Date.Time)
		}
		return txs[i].ID < txs[j].ID
	})
}
