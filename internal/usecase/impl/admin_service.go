package impl

import (
	"context"
	"log/slog"

	deliverycontext "ratehub/internal/delivery/context"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	"ratehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats returns platform-wide counts for the admin dashboard. The three
// counts come from separate queries, so they are not a single snapshot.
func (srv *adminService) Stats(ctx context.Context) (*usecase.Stats, error) {
	users, err := srv.userRepo.CountByRoles(ctx, entity.RoleUser, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	stores, err := srv.userRepo.CountByRoles(ctx, entity.RoleStore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	ratings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.Stats{Users: users, Stores: stores, Ratings: ratings}, nil
}

// ListUsers returns all non-store accounts, oldest first.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListByRoles(ctx, entity.RoleUser, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListStores returns all stores with their aggregates, same view the public
// listing uses.
func (srv *adminService) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	listings, err := srv.storeRepo.ListWithSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return listings, nil
}

// CreateUser creates a user or admin account on behalf of an administrator.
// No token is issued; the new account logs in on its own.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be user or admin")
	}

	return srv.createAccount(ctx, input, role)
}

// CreateStore creates a store account. This is the only path that creates
// accounts with the store role.
func (srv *adminService) CreateStore(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	return srv.createAccount(ctx, input, entity.RoleStore)
}

func (srv *adminService) createAccount(ctx context.Context, input *usecase.CreateAccountInput, role entity.Role) (*entity.User, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account created by administrator",
		slog.Any("userID", newUser.ID),
		slog.Any("role", role))

	return newUser, nil
}
