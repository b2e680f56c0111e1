// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Passwords are capped at 72 characters, the longest input bcrypt hashes.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateInput carries the optional profile changes for the current user.
// A nil field means "leave unchanged"; a present field must be non-empty.
type UpdateInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=72"`
}

// --- Output DTOs ---

// UserOutput is the public view of a user: the subset of the record that is
// safe to return externally. It never carries the password hash or the token.
type UserOutput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginOutput extends the public view with the freshly issued session token.
type LoginOutput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (API handlers) depends on.
type UserUsecase interface {
	// Register creates a new account from validated input.
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)

	// Login verifies credentials and issues a fresh session token,
	// invalidating any previous token for the same user.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Current returns the public view of the identity the auth gate resolved.
	// It cannot fail; a request without a resolved identity never gets here.
	Current(user *entity.User) *UserOutput

	// Update applies the optional profile changes to the resolved identity.
	Update(ctx context.Context, user *entity.User, input *UpdateInput) (*UserOutput, error)

	// Logout clears the resolved identity's session token.
	Logout(ctx context.Context, user *entity.User) error
}
