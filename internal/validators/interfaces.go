// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the freight calculator.
//
// Two kinds of checks live here:
//   - IsValidPostalCode, a pure predicate for Brazilian postal codes (CEP);
//   - StructValidator, a [Validator] backed by go-playground/validator that
//     enforces the `validate` struct tags declared on request payloads and
//     canonical products.
//
// Validation failures are reported as [*FieldError] values that unwrap to
// [ErrMissingField] or [ErrInvalidField], so callers can branch with
// [errors.Is] and still recover the offending field name with [errors.As].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
