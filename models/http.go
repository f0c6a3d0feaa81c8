// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Route holds the origin and destination postal codes shared by every
// calculation request. Pointers distinguish an absent field from an empty one.
type Route struct {
	FromPostalCode *string `json:"from_postal_code" validate:"required"`
	ToPostalCode   *string `json:"to_postal_code" validate:"required"`
}

// CalculateRequest is the body of POST /calculate.
type CalculateRequest struct {
	Route
	Products []Product      `json:"products" validate:"required"`
	Options  ShippingOptions `json:"options,omitempty"`
}

// SimpleCalculateRequest is the body of POST /calculate-simple.
type SimpleCalculateRequest struct {
	Route
	SimpleProduct
	Options ShippingOptions `json:"options,omitempty"`
}

// ShopifyCalculateRequest is the body of POST /calculate-shopify.
type ShopifyCalculateRequest struct {
	Route
	ShopifyProduct *ShopifyProduct `json:"shopify_product" validate:"required"`
	Options        ShippingOptions `json:"options,omitempty"`
}

// PackageCalculateRequest is the body of POST /calculate-package.
type PackageCalculateRequest struct {
	Route
	Package *Package        `json:"package" validate:"required"`
	Options ShippingOptions `json:"options,omitempty"`
}

// ValidatePostalCodeRequest is the body of POST /validate-postal-code.
type ValidatePostalCodeRequest struct {
	PostalCode *string `json:"postal_code" validate:"required"`
}
