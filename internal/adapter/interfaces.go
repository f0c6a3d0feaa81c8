// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the Melhor Envio shipment
// calculation API.
//
// The primary abstraction is [QuoteClient], which decouples the service layer
// from the provider protocol. The package ships a resty-based implementation
// ([NewMelhorEnvioClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that failures can be logged and matched with [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrUnprocessableEntity] for 422). They
// never reach callers of [QuoteClient]: every failure becomes an empty list.
package adapter

import (
	"context"

	"github.com/MKhiriev/freight-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/quote_client_mock.go -package=mock

// QuoteClient requests shipment quotes from the provider. Implementations
// are bound to one credential and one environment at construction time and
// are safe for concurrent use.
type QuoteClient interface {
	// GetQuotes asks for quotes covering products shipped from origin to
	// destination. Separators in both postal codes are stripped. options is
	// attached only when non-empty.
	//
	// Any transport failure, non-2xx status or undecodable body is logged
	// and reported as an empty list.
	GetQuotes(ctx context.Context, origin, destination string, products []models.Product, options models.ShippingOptions) []models.RawQuote

	// GetQuotesByPackage is GetQuotes for a single pre-packed volume.
	GetQuotesByPackage(ctx context.Context, origin, destination string, pkg models.Package, options models.ShippingOptions) []models.RawQuote

	// Sandbox reports whether the client talks to the sandbox environment.
	Sandbox() bool
}
