package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/freight-calculator/models"
	"github.com/go-playground/validator/v10"
)

// StructValidator implements [Validator] on top of go-playground/validator.
// Field names in reported errors are the JSON names of the payload, so they
// can be echoed to API callers as-is.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator. The returned value is safe
// for concurrent use and is meant to be shared.
func NewStructValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &StructValidator{validate: v}
}

// Validate checks obj against its `validate` struct tags and returns the
// first failure as a [*FieldError]. A []models.Product is validated element
// by element, with the element index in the reported field path.
//
// When fields is non-empty only failures on those JSON field paths are
// reported.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case nil:
		return ErrUnsupportedType
	case []models.Product:
		for i, product := range value {
			if err := v.validateStruct(ctx, fmt.Sprintf("products[%d].", i), product, fields...); err != nil {
				return err
			}
		}
		return nil
	default:
		return v.validateStruct(ctx, "", obj, fields...)
	}
}

func (v *StructValidator) validateStruct(ctx context.Context, prefix string, obj any, fields ...string) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, fe := range validationErrs {
		field := fieldPath(fe.Namespace())
		if len(fields) > 0 && !slices.Contains(fields, field) {
			continue
		}
		return &FieldError{Field: prefix + field, Rule: fe.Tag(), Param: fe.Param()}
	}

	return nil
}

// fieldPath turns a validator namespace such as
// "ShopifyCalculateRequest.Route.from_postal_code" into "from_postal_code":
// the root type name is dropped, and so are embedded structs, which carry no
// JSON name and therefore keep their capitalised Go name.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	kept := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}
		if unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		kept = append(kept, part)
	}

	return strings.Join(kept, ".")
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
