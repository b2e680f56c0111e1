// Package validator adapts go-playground/validator to echo's Validator
// interface, turning tag violations into the domain's field-level errors.
package validator

import (
	"strings"

	domainerrors "accounts/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request DTO and converts any violations into a
// FieldErrors value, which the error handler renders as a 400 with
// `{"errors": {field: message}}`.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := strings.ToLower(fieldErr.Field())
		fields[name] = fieldMessage(name, fieldErr)
	}

	return domainerrors.NewFieldErrors(fields)
}

func fieldMessage(name string, fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return name + " must not be empty"
	case "max":
		return name + " must be at most " + fieldErr.Param() + " characters"
	default:
		return name + " is invalid"
	}
}
