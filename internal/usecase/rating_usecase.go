package usecase

import (
	"context"

	"ratehub/internal/domain/entity"

	"github.com/google/uuid"
)

// RateStoreInput defines the data required to submit or replace a rating.
type RateStoreInput struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
	Value   int
	Comment string
}

// StoreRatingsOutput is the store dashboard view: all rating rows plus the
// derived aggregate.
type StoreRatingsOutput struct {
	Ratings []*entity.StoreRating
	Summary entity.RatingSummary
}

// RatingUsecase defines the interface for rating submission and the
// rating-aggregation reads.
type RatingUsecase interface {
	// RateStore submits or replaces the caller's rating of a store.
	RateStore(ctx context.Context, input *RateStoreInput) (*entity.Rating, error)

	// ListStores returns every store with its current aggregate, recomputed
	// from the rating rows on each call.
	ListStores(ctx context.Context) ([]*entity.StoreListing, error)

	// StoreRatings returns the rating rows and aggregate for one store.
	StoreRatings(ctx context.Context, storeID uuid.UUID) (*StoreRatingsOutput, error)
}
