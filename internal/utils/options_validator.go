package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	optionTagNameConstant                  = "option"
	optionTagIgnoredValueConstant          = "-"
	invalidOptionsPrefixConstant           = "invalid options: "
	invalidOptionsSeparatorConstant        = "; "
	fieldViolationTemplateConstant         = "%s: %s"
	violationRequiredMessageConstant       = "is required"
	violationMinimumTemplateConstant       = "requires at least %s value(s)"
	violationGenericTemplateConstant       = "failed %s validation"
	validationTagRequiredConstant          = "required"
	validationTagMinimumConstant           = "min"
	unexpectedValidationErrorTemplateConst = "unable to validate options: %w"
)

// FieldViolation describes a single option that failed validation.
type FieldViolation struct {
	Field   string
	Message string
}

// InvalidOptionsError reports command options that failed validation.
type InvalidOptionsError struct {
	Violations []FieldViolation
}

// Error describes every violation in declaration order.
func (optionsError InvalidOptionsError) Error() string {
	formattedViolations := make([]string, 0, len(optionsError.Violations))
	for _, violation := range optionsError.Violations {
		formattedViolations = append(formattedViolations, fmt.Sprintf(fieldViolationTemplateConstant, violation.Field, violation.Message))
	}
	return invalidOptionsPrefixConstant + strings.Join(formattedViolations, invalidOptionsSeparatorConstant)
}

// OptionsValidator validates command option structs declared with validate tags.
//
// Field names in violations come from the option tag, so messages can name the CLI flag.
type OptionsValidator struct {
	validate *validator.Validate
}

// NewOptionsValidator constructs an OptionsValidator.
func NewOptionsValidator() *OptionsValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		optionName := strings.SplitN(field.Tag.Get(optionTagNameConstant), ",", 2)[0]
		if optionName == optionTagIgnoredValueConstant {
			return ""
		}
		if len(optionName) == 0 {
			return field.Name
		}
		return optionName
	})
	return &OptionsValidator{validate: validate}
}

// Validate returns InvalidOptionsError when options violate their declared constraints.
func (optionsValidator *OptionsValidator) Validate(options any) error {
	validationError := optionsValidator.validate.Struct(options)
	if validationError == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(validationError, &validationErrors) {
		return fmt.Errorf(unexpectedValidationErrorTemplateConst, validationError)
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, FieldViolation{
			Field:   fieldError.Field(),
			Message: describeFieldError(fieldError),
		})
	}

	return InvalidOptionsError{Violations: violations}
}

func describeFieldError(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case validationTagRequiredConstant:
		return violationRequiredMessageConstant
	case validationTagMinimumConstant:
		return fmt.Sprintf(violationMinimumTemplateConstant, fieldError.Param())
	default:
		return fmt.Sprintf(violationGenericTemplateConstant, fieldError.Tag())
	}
}
