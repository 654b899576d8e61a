package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
)

// Stats are the platform-wide counts shown on the admin dashboard.
type Stats struct {
	Users   int64
	Stores  int64
	Ratings int64
}

// CreateAccountInput defines the data an administrator supplies when
// creating an account directly.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// AdminUsecase defines the administrator-only operations.
type AdminUsecase interface {
	// Stats returns platform-wide user/store/rating counts.
	Stats(ctx context.Context) (*Stats, error)

	// ListUsers returns all non-store accounts.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// ListStores returns all stores with their aggregates.
	ListStores(ctx context.Context) ([]*entity.StoreListing, error)

	// CreateUser creates a user or admin account. No token is issued.
	CreateUser(ctx context.Context, input *CreateAccountInput) (*entity.User, error)

	// CreateStore creates a store account. No token is issued.
	CreateStore(ctx context.Context, input *CreateAccountInput) (*entity.User, error)
}
