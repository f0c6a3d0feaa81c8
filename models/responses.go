// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuoteResponse is the success body of every calculate endpoint.
type QuoteResponse struct {
	Success bool `json:"success"`
	QuoteResult
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidatePostalCodeResponse echoes the submitted postal code with its
// validity.
type ValidatePostalCodeResponse struct {
	Success    bool   `json:"success"`
	Valid      bool   `json:"valid"`
	PostalCode string `json:"postal_code"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Sandbox bool   `json:"sandbox"`
	Version string `json:"version,omitempty"`
}
