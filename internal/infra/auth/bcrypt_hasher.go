// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"ratehub/config"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/service"
)

// specialChars is the fixed punctuation set a password must draw from.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordPolicyConfig
}

// NewBcryptHasher is the constructor for bcryptHasher. Cost and password
// policy come from configuration; zero values fall back to bcrypt defaults
// and the standard 8-16/uppercase/special policy.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordPolicyConfig{
		MinLength:        8,
		MaxLength:        16,
		RequireUppercase: true,
		RequireSpecial:   true,
	}
	if cfg != nil && cfg.PasswordPolicy != nil {
		policy = *cfg.PasswordPolicy
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength enforces the configured password policy: length
// bounds plus required character classes.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength || len(password) > h.policy.MaxLength {
		return domainerrors.ErrWeakPassword
	}

	if h.policy.RequireUppercase && !containsUppercase(password) {
		return domainerrors.ErrWeakPassword
	}

	if h.policy.RequireSpecial && !strings.ContainsAny(password, specialChars) {
		return domainerrors.ErrWeakPassword
	}

	return nil
}

func containsUppercase(s string) bool {
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsUpper(r) {
			return true
		}
	}

	return false
}
