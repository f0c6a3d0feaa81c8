package service

import (
	"context"

	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// CalculationRequest is one quote calculation. Exactly one of Input and
// Package is set: Input for product-based requests, Package for a single
// pre-packed volume.
type CalculationRequest struct {
	Origin      string
	Destination string

	Input   normalizer.Input
	Package *models.Package

	Options models.ShippingOptions
}

type ShippingService interface {
	Calculate(ctx context.Context, req CalculationRequest) (models.QuoteResult, error)
	ValidatePostalCode(ctx context.Context, postalCode string) bool
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	IsSandbox(ctx context.Context) bool
}

// ShippingServiceWrapper defines middleware composition for ShippingService.
// Implementations wrap an existing ShippingService to add behavior such as
// input validation.
type ShippingServiceWrapper interface {
	Wrap(ShippingService) ShippingService // returns a decorated ShippingService applying additional behavior
}
