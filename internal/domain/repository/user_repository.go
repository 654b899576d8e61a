// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no account matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new account. The storage layer assigns ID and
	// timestamps and writes them back into the entity.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword overwrites the stored password digest for an account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// ListByRoles returns all accounts whose role is in the given set,
	// ordered by creation time.
	ListByRoles(ctx context.Context, roles ...entity.Role) ([]*entity.User, error)

	// CountByRoles counts accounts whose role is in the given set.
	CountByRoles(ctx context.Context, roles ...entity.Role) (int64, error)
}
