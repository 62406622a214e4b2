package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one rejected request field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

// ValidationErrors is returned when one or more fields fail validation
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	switch len(ve) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	default:
		return fmt.Sprintf("validation failed: %d field errors", len(ve))
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message, rule string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
		Rule:    rule,
	}
}

// ToValidationErrors converts validator failures; any other error yields nil
func ToValidationErrors(err error) ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return result
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "practice_stage":
		return "must be a valid practice stage (behavioral, technical, case_study)"
	case "sort_order":
		return "must be asc or desc"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", fe.Tag())
	}
}
