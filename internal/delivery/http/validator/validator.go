// Package validator adapts go-playground/validator to Echo's Validator
// interface and flattens its errors into API-friendly field messages.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates field errors for one request.
type ValidationErrors struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationErrors) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	return strings.Join(messages, "; ")
}

// Validator wraps the go-playground validator for Echo.
type Validator struct {
	validate *validator.Validate
}

// New creates a request validator
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]FieldError, 0, len(invalid))
	for _, f := range invalid {
		fields = append(fields, FieldError{
			Field:   f.Field(),
			Message: fieldMessage(f),
		})
	}

	return &ValidationErrors{Fields: fields}
}

func fieldMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", f.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", f.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", f.Field(), f.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", f.Field(), f.Param())
	default:
		return fmt.Sprintf("%s is invalid", f.Field())
	}
}
