// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is the canonical product representation sent to the quote
// provider. Every caller payload shape converges to it.
type Product struct {
	// ID identifies the product inside a single quote request.
	ID string `json:"id"`

	// Width in centimetres.
	Width float64 `json:"width" validate:"gt=0"`

	// Height in centimetres.
	Height float64 `json:"height" validate:"gt=0"`

	// Length in centimetres.
	Length float64 `json:"length" validate:"gt=0"`

	// Weight in kilograms. Never grams: callers submitting grams are
	// normalized before a Product is built.
	Weight float64 `json:"weight" validate:"gt=0"`

	// InsuranceValue is the declared value in currency units.
	InsuranceValue float64 `json:"insurance_value" validate:"gte=0"`

	// Quantity of identical units, at least one.
	Quantity int `json:"quantity" validate:"gte=1"`
}

// Package describes a single pre-packed volume. It is the alternative request
// shape to a product list: a quote request carries one or the other.
type Package struct {
	Width          float64 `json:"width" validate:"gt=0"`
	Height         float64 `json:"height" validate:"gt=0"`
	Length         float64 `json:"length" validate:"gt=0"`
	Weight         float64 `json:"weight" validate:"gt=0"`
	InsuranceValue float64 `json:"insurance_value,omitempty" validate:"gte=0"`
}

// ShippingOptions is a free-form set of service flags (receipt, own_hand,
// insurance_value, ...) forwarded verbatim to the provider.
type ShippingOptions map[string]any

// SimpleProduct is the flat single-product payload of the simplified
// endpoint. Only Weight is required. Like [ShopifyProduct], every field
// accepts a JSON number or a numeric string.
type SimpleProduct struct {
	Weight   *Number `json:"weight" validate:"required"`
	Width    *Number `json:"width,omitempty"`
	Height   *Number `json:"height,omitempty"`
	Length   *Number `json:"length,omitempty"`
	Value    *Number `json:"value,omitempty"`
	Quantity *Number `json:"quantity,omitempty"`
}

// ShopifyProduct is the product object as submitted by a Shopify storefront.
// Weight may be grams or kilograms; price may be a string or a number.
type ShopifyProduct struct {
	ID       *FlexibleString `json:"id,omitempty"`
	Price    *Number         `json:"price,omitempty"`
	Weight   *Number         `json:"weight,omitempty"`
	Width    *Number         `json:"width,omitempty"`
	Height   *Number         `json:"height,omitempty"`
	Length   *Number         `json:"length,omitempty"`
	Quantity *Number         `json:"quantity,omitempty"`
}
