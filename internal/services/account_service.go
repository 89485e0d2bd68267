// Package services holds the business rules between the presentation layer
// and the stores. Callers get plain domain values or the sentinel errors
// from core; raw storage errors never cross this boundary untyped.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// AccountService handles registration and login.
type AccountService struct {
	users      store.UserStore
	bcryptCost int
}

func NewAccountService(users store.UserStore, bcryptCost int) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{users: users, bcryptCost: bcryptCost}
}

// Register creates a new account. The password is stored only as a bcrypt
// digest. Returns core.ErrDuplicateUsername when the username is taken and
// core.ErrEmptyUsername for a blank username; storage is untouched on failure.
func (s *AccountService) Register(ctx context.Context, username, password string) (core.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return core.User{}, core.ErrEmptyUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return core.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		return core.User{}, err
	}

	return user, nil
}

// Authenticate verifies the claimed identity and returns a session for it.
// An unknown username and a wrong password are both
// core.ErrAuthenticationFailed; callers cannot tell them apart.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (core.Session, error) {
	user, err := s.users.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return core.Session{}, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return core.Session{}, core.ErrAuthenticationFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return core.Session{}, core.ErrAuthenticationFailed
	}

	slog.InfoContext(ctx, "User authenticated", "user_id", user.ID, "username", user.Username)

	return core.Session{UserID: user.ID}, nil
}
