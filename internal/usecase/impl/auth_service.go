// Package impl contains the implementation of the application's business logic.
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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration flow: policy check, hash,
// duplicate-email check and insert inside one transaction, then token
// issuance.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role == entity.RoleStore {
		return nil, domainerrors.ErrForbidden.WrapMessage("store accounts are created by administrators")
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("role", role))

	user, err := srv.createAccount(ctx, &usecase.CreateAccountInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// createAccount is the shared write path for self-registration and admin
// account creation. Hashing happens outside the transaction so bcrypt work
// never holds a database connection.
func (srv *authService) createAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password policy rejected during account creation", slog.String("email", input.Email))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         input.Role,
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

		// The unique index on email remains the real guard; a concurrent
		// duplicate insert still maps to ErrEmailTaken in the repository.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		return nil, err
	}

	return newUser, nil
}

// Login authenticates an email/password pair for any role.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// StoreLogin authenticates like Login but requires the store role, so a
// regular user cannot enter the store dashboard.
func (srv *authService) StoreLogin(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	output, err := srv.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	if !output.User.IsStore() {
		srv.log(ctx).Warn("Non-store account attempted store login", slog.Any("userID", output.User.ID))

		return nil, domainerrors.ErrForbidden.WrapMessage("store role required")
	}

	return output, nil
}

// ChangePassword overwrites the caller's password digest. It returns only an
// acknowledgment; previously issued tokens stay valid until expiry.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if err := srv.hasher.ValidatePasswordStrength(newPassword); err != nil {
		srv.log(ctx).Warn("Password policy rejected during password change", slog.Any("userID", userID))

		return err
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.Any("userID", userID))

	return nil
}
