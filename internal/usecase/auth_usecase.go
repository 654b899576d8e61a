// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role is optional and defaults to the regular user role; store accounts
// cannot self-register.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated account and its freshly issued
// bearer token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for registration, login and password
// management. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register validates, persists and logs in a new account.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates an email/password pair for any role.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// StoreLogin authenticates like Login but requires the store role.
	StoreLogin(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ChangePassword overwrites the caller's password digest. The subject
	// comes from a verified token, never from the request body.
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}
