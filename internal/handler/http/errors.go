// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while decoding a request body, before the service
// layer is reached.
var (
	// ErrNoDataProvided is returned when the body is empty or holds a JSON
	// value with nothing in it ({}, [], null, "", 0, false).
	ErrNoDataProvided = errors.New("no data provided")

	// ErrInvalidJSON is returned when the body is not a JSON object or does
	// not fit the request shape.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrNoPostalCodeProvided is returned by the postal-code check when the
	// body lacks postal_code.
	ErrNoPostalCodeProvided = errors.New("postal code not provided")
)
