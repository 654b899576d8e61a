package service

import (
	"ratehub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the decoded, verified content of a bearer token: who the caller
// is and which access tier they hold.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer
// tokens. Tokens are stateless; there is no server-side session store and
// no revocation.
type TokenService interface {
	// GenerateToken signs a new access token for the given account and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
