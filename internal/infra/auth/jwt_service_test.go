package auth

import (
	"testing"
	"time"

	"ratehub/config"
	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, entity.RoleStore)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleStore, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-a")
	verifier := newTestTokenService(t, "secret-b")

	token, err := issuer.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	// Sign an already-expired token with the same secret and claim shape.
	now := time.Now()
	claims := service.Claims{
		UserID: uuid.New(),
		Role:   entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateToken_UnknownRole(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	claims := service.Claims{
		UserID: uuid.New(),
		Role:   entity.Role("superuser"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
