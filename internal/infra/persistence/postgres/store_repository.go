package postgres

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface. Store
// accounts live in the users table with role=store; the aggregate join keeps
// that detail out of the domain layer.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID retrieves a store account by ID.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, entity.RoleStore.String()).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toUserDomain(&userM), nil
}

// storeListingRow is the scan target for the aggregate join.
type storeListingRow struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Address     string
	RatingCount int64
	AvgRating   float64
}

// ListWithSummaries returns every store with its rating aggregate. The
// aggregate is recomputed from the rating rows on every call; nothing is
// cached or persisted.
func (repo *storeRepository) ListWithSummaries(ctx context.Context) ([]*entity.StoreListing, error) {
	var rows []storeListingRow
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select(`users.id, users.name, users.email, users.address,
			COUNT(ratings.id) AS rating_count,
			COALESCE(AVG(ratings.value), 0) AS avg_rating`).
		Joins("LEFT JOIN ratings ON ratings.store_id = users.id").
		Where("users.role = ?", entity.RoleStore.String()).
		Group("users.id").
		Order("users.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores with summaries")
	}

	listings := make([]*entity.StoreListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, &entity.StoreListing{
			ID:      row.ID,
			Name:    row.Name,
			Email:   row.Email,
			Address: row.Address,
			Summary: entity.RatingSummary{
				Count:   row.RatingCount,
				Average: row.AvgRating,
			},
		})
	}

	return listings, nil
}
