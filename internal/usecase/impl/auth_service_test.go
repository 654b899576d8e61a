package impl

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	mockRepo "ratehub/internal/mocks/repository"
	mockSvc "ratehub/internal/mocks/service"
	"ratehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Jonathan Maxwell Harrington III",
		Email:    "jon@example.com",
		Password: "Abcdef1!",
		Address:  "12 Harbor Street",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleUser).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Jonathan Maxwell Harrington III",
		Email:    "taken@example.com",
		Password: "Abcdef1!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	existing := &entity.User{ID: uuid.New(), Email: input.Email, Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_StoreRoleForbidden(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Jonathan Maxwell Harrington III",
		Email:    "store@example.com",
		Password: "Abcdef1!",
		Role:     entity.RoleStore,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrWeakPassword)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Jonathan Maxwell Harrington III",
		Email:    "jon@example.com",
		Password: "weak",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jon@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Abcdef1!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, entity.RoleUser).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Abcdef1!"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "Abcdef1!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jon@example.com", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_StoreLogin_RejectsNonStore(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "jon@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Abcdef1!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, entity.RoleUser).Return("signed-token", nil)

	output, err := fx.service.StoreLogin(ctx, &usecase.LoginInput{Email: user.Email, Password: "Abcdef1!"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_StoreLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	store := &entity.User{
		ID:           uuid.New(),
		Email:        "store@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleStore,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, store.Email).Return(store, nil)
	fx.hasher.EXPECT().Check("Abcdef1!", store.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(store.ID, entity.RoleStore).Return("signed-token", nil)

	output, err := fx.service.StoreLogin(ctx, &usecase.LoginInput{Email: store.Email, Password: "Abcdef1!"})

	require.NoError(t, err)
	assert.Equal(t, store.ID, output.User.ID)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("Newpass1!").Return(nil)
	fx.hasher.EXPECT().Hash("Newpass1!").Return("new_hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new_hash").Return(nil)

	err := fx.service.ChangePassword(ctx, userID, "Newpass1!")
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("Newpass1!").Return(nil)
	fx.hasher.EXPECT().Hash("Newpass1!").Return("new_hash", nil)
	fx.userRepo.EXPECT().UpdatePassword(ctx, userID, "new_hash").Return(repository.ErrUserNotFound)

	err := fx.service.ChangePassword(ctx, userID, "Newpass1!")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ChangePassword_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrWeakPassword)

	err := fx.service.ChangePassword(context.Background(), uuid.New(), "weak")
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
}
