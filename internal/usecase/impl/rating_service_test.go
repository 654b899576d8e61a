package impl

import (
	"context"
	"testing"
	"time"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	mockRepo "ratehub/internal/mocks/repository"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixtures struct {
	service    usecase.RatingUsecase
	ratingRepo *mockRepo.MockRatingRepository
	storeRepo  *mockRepo.MockStoreRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewRatingService(RatingServiceParams{
		RatingRepo: ratingRepo,
		StoreRepo:  storeRepo,
		Logger:     newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:    service,
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

func TestRatingService_RateStore_Success(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.User{ID: storeID, Role: entity.RoleStore}, nil)

	fx.ratingRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(ctx context.Context, rating *entity.Rating) {
			rating.ID = uuid.New()
			rating.UpdatedAt = time.Now()
		}).
		Return(nil)

	rating, err := fx.service.RateStore(ctx, &usecase.RateStoreInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   4,
		Comment: "solid",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, rating.UserID)
	assert.Equal(t, storeID, rating.StoreID)
	assert.Equal(t, 4, rating.Value)
}

func TestRatingService_RateStore_OutOfRange(t *testing.T) {
	fx := createTestRatingService(t)

	for _, value := range []int{0, -1, 6, 100} {
		rating, err := fx.service.RateStore(context.Background(), &usecase.RateStoreInput{
			UserID:  uuid.New(),
			StoreID: uuid.New(),
			Value:   value,
		})

		assert.Nil(t, rating)
		assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange, "value %d", value)
	}
}

func TestRatingService_RateStore_UnknownStore(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	rating, err := fx.service.RateStore(ctx, &usecase.RateStoreInput{
		UserID:  uuid.New(),
		StoreID: storeID,
		Value:   3,
	})

	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestRatingService_RateStore_SelfRating(t *testing.T) {
	fx := createTestRatingService(t)

	id := uuid.New()
	rating, err := fx.service.RateStore(context.Background(), &usecase.RateStoreInput{
		UserID:  id,
		StoreID: id,
		Value:   5,
	})

	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrCannotRateSelf)
}

func TestRatingService_ListStores(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	listings := []*entity.StoreListing{
		{
			ID:      uuid.New(),
			Name:    "Corner Grocery and General Supplies",
			Summary: entity.RatingSummary{Count: 2, Average: 4.5},
		},
		{
			ID:      uuid.New(),
			Name:    "Harbor Street Hardware Emporium",
			Summary: entity.RatingSummary{},
		},
	}

	fx.storeRepo.EXPECT().ListWithSummaries(ctx).Return(listings, nil)

	got, err := fx.service.ListStores(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4.5, got[0].Summary.Average)
	assert.Zero(t, got[1].Summary.Count)
}

func TestRatingService_StoreRatings(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.User{ID: storeID, Role: entity.RoleStore}, nil)

	rows := []*entity.StoreRating{
		{UserID: uuid.New(), UserEmail: "a@example.com", Value: 5},
		{UserID: uuid.New(), UserEmail: "b@example.com", Value: 2},
	}
	fx.ratingRepo.EXPECT().ListByStore(ctx, storeID).Return(rows, nil)
	fx.ratingRepo.EXPECT().
		SummarizeStore(ctx, storeID).
		Return(entity.RatingSummary{Count: 2, Average: 3.5}, nil)

	output, err := fx.service.StoreRatings(ctx, storeID)

	require.NoError(t, err)
	assert.Len(t, output.Ratings, 2)
	assert.Equal(t, int64(2), output.Summary.Count)
	assert.Equal(t, 3.5, output.Summary.Average)
}

func TestRatingService_StoreRatings_UnknownStore(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	output, err := fx.service.StoreRatings(ctx, storeID)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
