package postgres

import (
	"context"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert submits or replaces a rating. ON CONFLICT on the (user_id,
// store_id) unique index makes a repeat rating update value, comment and
// updated_at in place, so the storage layer is the only concurrency guard
// the operation needs.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "comment", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("rating references unknown account")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrRatingOutOfRange.WrapMessage("value outside [1,5]")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// ListByStore returns all rating rows for a store joined with the rater's
// email, newest first.
func (repo *ratingRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRating, error) {
	var ratings []model.RatingModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by store")
	}

	out := make([]*entity.StoreRating, 0, len(ratings))
	for i := range ratings {
		row := &entity.StoreRating{
			UserID:    ratings[i].UserID,
			Value:     ratings[i].Value,
			Comment:   ratings[i].Comment,
			CreatedAt: ratings[i].CreatedAt,
		}
		if ratings[i].User != nil {
			row.UserEmail = ratings[i].User.Email
		}
		out = append(out, row)
	}

	return out, nil
}

// SummarizeStore recomputes the aggregate for a store from its rating rows.
func (repo *ratingRepository) SummarizeStore(ctx context.Context, storeID uuid.UUID) (entity.RatingSummary, error) {
	var row struct {
		RatingCount int64
		AvgRating   float64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COUNT(id) AS rating_count, COALESCE(AVG(value), 0) AS avg_rating").
		Where("store_id = ?", storeID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to summarize store ratings")
	}

	return entity.RatingSummary{Count: row.RatingCount, Average: row.AvgRating}, nil
}

// Count returns the total number of rating rows.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}

// fromRatingDomain converts a domain Rating to a GORM RatingModel.
func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:      data.ID,
		UserID:  data.UserID,
		StoreID: data.StoreID,
		Value:   data.Value,
		Comment: data.Comment,
	}
}
