// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "roster/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a configured validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures surface as a
// domain validation error so the central error handler renders a 400.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
