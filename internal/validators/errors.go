package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field value")
)

// FieldError describes a single failed field. It unwraps to ErrMissingField
// when the field was absent and to ErrInvalidField otherwise.
type FieldError struct {
	// Field is the JSON name of the field, prefixed with its parent path
	// for nested values (e.g. "products[1].weight").
	Field string
	// Rule is the validation rule that failed (e.g. "required", "gt").
	Rule string
	// Param is the rule parameter, if any (e.g. "0" for gt=0).
	Param string
}

func (e *FieldError) Error() string {
	if e.Rule == "required" {
		return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
	}
	if e.Param != "" {
		return fmt.Sprintf("%s: %s must satisfy %s=%s", ErrInvalidField, e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s: %s must satisfy %s", ErrInvalidField, e.Field, e.Rule)
}

func (e *FieldError) Unwrap() error {
	if e.Rule == "required" {
		return ErrMissingField
	}
	return ErrInvalidField
}
