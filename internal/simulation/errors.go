package simulation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// InvalidInputError is returned when a simulation input fails validation.
// No computation is performed when it is returned.
type InvalidInputError struct {
	Fields []FieldError
}

// NewInvalidInputError builds an InvalidInputError from field errors.
func NewInvalidInputError(fields ...FieldError) *InvalidInputError {
	return &InvalidInputError{Fields: fields}
}

func (e *InvalidInputError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Reason
	}
	return "invalid simulation input: " + strings.Join(parts, "; ")
}

// Has reports whether the named field is among the rejected ones.
func (e *InvalidInputError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// FieldErrorsFrom converts validator errors into FieldErrors.
func FieldErrorsFrom(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Reason: Reason(fe.Tag(), fe.Param())})
	}
	return fields
}

func invalidInputFrom(verrs validator.ValidationErrors) *InvalidInputError {
	return NewInvalidInputError(FieldErrorsFrom(verrs)...)
}

// Reason renders a validation tag as a sentence fragment.
func Reason(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be less than or equal to " + param
	case "percent":
		return "must be between 0 and 100"
	case "finite":
		return "must be a finite number"
	case "numeric":
		return "must be a number"
	}
	return fmt.Sprintf("failed %q validation", tag)
}
