// Package validator wires go-playground/validator into Echo so handlers can
// call c.Validate on bound request DTOs.
package validator

import (
	"strings"
	"unicode"

	domainerrors "ratehub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const passwordSpecialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New builds the validator and registers the custom rules the API uses.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	// Registration only fails for a nil func or an empty tag.
	_ = validate.RegisterValidation("userpassword", validPassword)

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as a 400 with the
// offending fields listed in the error details.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details = append(details, fieldError.Field()+" failed on the '"+fieldError.Tag()+"' rule")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// validPassword enforces the account password policy: 8 to 16 characters
// with at least one ASCII uppercase letter and one special character. The
// ASCII restriction matches the hasher's policy so a password accepted here
// never fails the deeper strength check.
func validPassword(fl playground.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 16 {
		return false
	}

	hasUpper := false
	hasSpecial := false
	for _, r := range password {
		if r <= unicode.MaxASCII && unicode.IsUpper(r) {
			hasUpper = true
		}
		if strings.ContainsRune(passwordSpecialChars, r) {
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}
