// Package validator adapts the domain validation rules to echo.
package validator

import (
	"lodging/internal/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct{}

// New returns an echo.Validator backed by the shared validation rules.
func New() echo.Validator {
	return echoValidator{}
}

// Validate reports failures as ErrValidationFailed with field level details.
func (echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
