package impl

import (
	"context"
	"log/slog"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo repository.RatingRepository
	StoreRepo  repository.StoreRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: params.RatingRepo,
		storeRepo:  params.StoreRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RateStore submits or replaces the caller's rating of a store. Re-rating
// the same store overwrites the previous value instead of adding a row.
func (srv *ratingService) RateStore(ctx context.Context, input *usecase.RateStoreInput) (*entity.Rating, error) {
	if input.Value < entity.MinRatingValue || input.Value > entity.MaxRatingValue {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	if input.UserID == input.StoreID {
		return nil, domainerrors.ErrCannotRateSelf
	}

	if _, err := srv.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to look up store before rating")
	}

	rating := &entity.Rating{
		UserID:  input.UserID,
		StoreID: input.StoreID,
		Value:   input.Value,
		Comment: input.Comment,
	}

	if err := srv.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Rating recorded",
		slog.Any("userID", input.UserID),
		slog.Any("storeID", input.StoreID),
		slog.Int("value", input.Value))

	return rating, nil
}

// ListStores returns every store with its current aggregate. The aggregate is
// recomputed from the rating rows on every call rather than cached.
func (srv *ratingService) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	listings, err := srv.storeRepo.ListWithSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return listings, nil
}

// StoreRatings returns the rating rows and aggregate for one store, used by
// the store dashboard. The store ID comes from the caller's verified token.
func (srv *ratingService) StoreRatings(ctx context.Context, storeID uuid.UUID) (*usecase.StoreRatingsOutput, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to look up store for dashboard")
	}

	ratings, err := srv.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings for store")
	}

	summary, err := srv.ratingRepo.SummarizeStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings for store")
	}

	return &usecase.StoreRatingsOutput{Ratings: ratings, Summary: summary}, nil
}
