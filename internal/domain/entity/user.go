// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system, representing one registered account.
// Username is the external identifier and is immutable after registration.
type User struct {
	ID            uuid.UUID  // Surrogate key generated by the database.
	Username      string     // Unique login identifier, never changed after creation.
	Name          string     // Display name, mutable through profile updates.
	PasswordHash  string     // bcrypt hash of the password. Never leaves the service.
	Token         *string    // Current session token. Nil until the first login.
	TokenIssuedAt *time.Time // When Token was issued. Kept so expiry can be added later.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasToken reports whether the user currently holds a live session token.
func (u *User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}
