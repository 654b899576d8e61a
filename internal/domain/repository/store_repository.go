package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when an ID does not resolve to a store account.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository is the read side for store accounts. Stores live in the
// same table as users (role=store); this interface hides that and serves
// the listing views with their derived aggregates.
type StoreRepository interface {
	// FindByID retrieves a store account by ID. Returns ErrStoreNotFound if
	// the ID is unknown or does not carry the store role.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListWithSummaries returns every store together with its current
	// rating aggregate, recomputed from the rating rows.
	ListWithSummaries(ctx context.Context) ([]*entity.StoreListing, error)
}
