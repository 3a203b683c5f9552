// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative validation of configuration and request structs with
// standardized error formatting.
//
// Struct fields are validated using tags (e.g., `validate:"required"`) and every
// violated rule produces one descriptive error, joined behind ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Host': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// Secret values are never echoed: Password and APIKey fields are reported by name only.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		value := validationErr.Value()
		if isRedacted(validationErr) {
			value = "***"
		}

		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			value,
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// isRedacted reports whether the failing field holds a secret.
func isRedacted(fe gvalidator.FieldError) bool {
	switch fe.StructField() {
	case "Password", "APIKey":
		return true
	default:
		return false
	}
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type SMTP struct {
//	    Host string `validate:"required,hostname"`
//	}
//
//	if err := validator.Validate(smtp); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against tag, e.g. Var(port, "min=1,max=65535").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
