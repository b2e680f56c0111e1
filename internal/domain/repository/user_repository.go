// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. Username uniqueness is enforced by the
	// storage layer itself, so two concurrent registrations of the same
	// username cannot both succeed.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by their unique username.
	// Lookups are case-sensitive.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByToken retrieves the single user holding the given session token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// Update persists the mutable fields (name, password hash, token) of an
	// existing user. The write is atomic with respect to the single row;
	// concurrent logins resolve as last-write-wins on the token column.
	Update(ctx context.Context, user *entity.User) error
}
