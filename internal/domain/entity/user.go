// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing any account that can
// log in. Store accounts are Users with RoleStore; administrators are Users
// with RoleAdmin. The password digest lives here because an account has
// exactly one credential, but it must never leave the service boundary --
// handlers map Users to response views that omit it.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name, 20-60 characters.
	Email        string    // Login identifier, unique across all roles.
	PasswordHash string    // bcrypt digest. Never serialized.
	Address      string    // Optional postal address, at most 400 characters.
	Role         Role      // Access tier: user, store or admin.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsStore reports whether this account is a store account.
func (u *User) IsStore() bool {
	return u.Role == RoleStore
}
