package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/interviewprep/practice-service/internal/errors"
	"github.com/interviewprep/practice-service/internal/report"
)

// Validator wraps go-playground validator with the service's custom rules
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	RegisterCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate checks struct tags and converts failures to apperrors.ValidationErrors
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

func ValidateStage(fl validator.FieldLevel) bool {
	return report.ParseStage(fl.Field().String()) != report.StageOther
}

func ValidateSortOrder(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "asc", "desc":
		return true
	}
	return false
}

// RegisterCustomValidators registers all custom validators
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("practice_stage", ValidateStage)
	validate.RegisterValidation("sort_order", ValidateSortOrder)

	// Report json/form names in errors instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}
