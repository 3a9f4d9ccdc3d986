package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error caused by bad caller input.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// validateStruct returns nil or sentinel wrapped in ErrValidation.
func validateStruct(input interface{}, sentinel error) error {
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return &ValidationError{Sentinel: sentinel, Fields: fieldNames(fieldErrs)}
		}
		return err
	}
	return nil
}

// ValidationError names the fields that failed validation.
type ValidationError struct {
	Sentinel error
	Fields   []string
}

func (e *ValidationError) Error() string {
	return e.Sentinel.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Sentinel
}

func fieldNames(errs validator.ValidationErrors) []string {
	names := make([]string, 0, len(errs))
	for _, fe := range errs {
		names = append(names, fe.Field())
	}
	return names
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
