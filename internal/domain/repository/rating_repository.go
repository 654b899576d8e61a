package repository

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines the operations for rating persistence.
type RatingRepository interface {
	// Upsert submits or replaces a rating. The (UserID, StoreID) pair is the
	// conflict key: a second rating by the same user for the same store
	// overwrites the value and comment of the first.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// ListByStore returns all rating rows for a store joined with the
	// rater's email, newest first.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRating, error)

	// SummarizeStore recomputes the (count, average) aggregate for a store
	// from its current rating rows. Average is 0 when there are no rows.
	SummarizeStore(ctx context.Context, storeID uuid.UUID) (entity.RatingSummary, error)

	// Count returns the total number of rating rows in the system.
	Count(ctx context.Context) (int64, error)
}
