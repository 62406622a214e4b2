package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/interviewprep/practice-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	ErrGroupNotFound   = errors.New("practice group not found")
	ErrSessionNotFound = errors.New("practice session not found")
	ErrProfileNotFound = errors.New("profile not found")

	ErrNothingToExport = errors.New("no data could be exported")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message, rule string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, rule, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}
