// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package normalizer converts the product shapes accepted by the HTTP API
// into the canonical [models.Product] list sent to the quote provider.
//
// Each caller shape is one variant of the sealed [Input] interface:
// [GenericInput] for ready-made product lists, [SimpleInput] for the flat
// single-product payload and [ShopifyInput] for a Shopify storefront product.
// Every product produced, or passed through, satisfies the Product
// invariants: positive dimensions and weight in kilograms, non-negative
// insurance value and a quantity of at least one.
package normalizer

import (
	"context"

	"github.com/MKhiriev/freight-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/normalizer_mock.go -package=mock -exclude_interfaces=Input

// Normalizer turns a caller payload into canonical products.
type Normalizer interface {
	// Normalize returns at least one product or an error. Validation
	// failures are reported as *validators.FieldError carrying the field
	// name as the caller spelled it.
	Normalize(ctx context.Context, input Input) ([]models.Product, error)
}

// Input is a caller payload variant. The set of variants is closed.
type Input interface {
	isInput()
}

// GenericInput carries a product list that is already canonical. It is
// validated but never rewritten.
type GenericInput struct {
	Products []models.Product
}

// SimpleInput carries the flat payload of the simplified endpoint.
type SimpleInput struct {
	Product models.SimpleProduct
}

// ShopifyInput carries a Shopify product whose weight may be in grams.
type ShopifyInput struct {
	Product models.ShopifyProduct
}

func (GenericInput) isInput() {}
func (SimpleInput) isInput()  {}
func (ShopifyInput) isInput() {}
