// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/freight-calculator/internal/config"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/validators"
	"github.com/MKhiriev/freight-calculator/models"
)

const (
	// DefaultGramsThreshold is the Shopify weight above which the value is
	// read as grams. 50 stays kilograms, 51 becomes 0.051 kg.
	DefaultGramsThreshold = config.DefaultGramsThreshold

	DefaultWidth  = 10.0
	DefaultHeight = 5.0
	DefaultLength = 15.0

	// DefaultShopifyWeightGrams is assumed when a Shopify product has no
	// weight. It goes through the grams heuristic like any submitted value.
	DefaultShopifyWeightGrams = 300.0

	SimpleProductID         = "product_1"
	DefaultShopifyProductID = "default"
)

type productNormalizer struct {
	gramsThreshold float64
	validator      validators.Validator
}

// NewNormalizer builds a [Normalizer]. A zero cfg.GramsThreshold falls back
// to [DefaultGramsThreshold].
func NewNormalizer(cfg config.Normalizer, validator validators.Validator) Normalizer {
	threshold := cfg.GramsThreshold
	if threshold <= 0 {
		threshold = DefaultGramsThreshold
	}

	return &productNormalizer{
		gramsThreshold: threshold,
		validator:      validator,
	}
}

func (n *productNormalizer) Normalize(ctx context.Context, input Input) ([]models.Product, error) {
	switch in := input.(type) {
	case GenericInput:
		return n.normalizeGeneric(ctx, in)
	case SimpleInput:
		return n.normalizeSimple(ctx, in)
	case ShopifyInput:
		return n.normalizeShopify(ctx, in)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
}

func (n *productNormalizer) normalizeGeneric(ctx context.Context, in GenericInput) ([]models.Product, error) {
	if len(in.Products) == 0 {
		return nil, ErrEmptyProductList
	}

	if err := n.validator.Validate(ctx, in.Products); err != nil {
		return nil, err
	}

	return in.Products, nil
}

func (n *productNormalizer) normalizeSimple(ctx context.Context, in SimpleInput) ([]models.Product, error) {
	src := in.Product
	if src.Weight == nil {
		return nil, &validators.FieldError{Field: "weight", Rule: "required"}
	}

	product := models.Product{
		ID:             SimpleProductID,
		Width:          numberOr(src.Width, DefaultWidth),
		Height:         numberOr(src.Height, DefaultHeight),
		Length:         numberOr(src.Length, DefaultLength),
		Weight:         src.Weight.Float64(),
		InsuranceValue: numberOr(src.Value, 0),
		Quantity:       int(math.Trunc(numberOr(src.Quantity, 1))),
	}

	if err := n.validator.Validate(ctx, product); err != nil {
		return nil, renameField(err, "", map[string]string{"insurance_value": "value"})
	}

	return []models.Product{product}, nil
}

func (n *productNormalizer) normalizeShopify(ctx context.Context, in ShopifyInput) ([]models.Product, error) {
	src := in.Product

	id := DefaultShopifyProductID
	if src.ID != nil {
		id = string(*src.ID)
	}

	weight := numberOr(src.Weight, DefaultShopifyWeightGrams)
	if weight > n.gramsThreshold {
		logger.FromContext(ctx).Debug().
			Float64("submitted_weight", weight).
			Float64("grams_threshold", n.gramsThreshold).
			Msg("shopify weight read as grams")
		weight /= 1000
	}

	product := models.Product{
		ID:             id,
		Width:          numberOr(src.Width, DefaultWidth),
		Height:         numberOr(src.Height, DefaultHeight),
		Length:         numberOr(src.Length, DefaultLength),
		Weight:         weight,
		InsuranceValue: numberOr(src.Price, 0),
		Quantity:       int(math.Trunc(numberOr(src.Quantity, 1))),
	}

	if err := n.validator.Validate(ctx, product); err != nil {
		return nil, renameField(err, "shopify_product.", map[string]string{"insurance_value": "price"})
	}

	return []models.Product{product}, nil
}

func numberOr(v *models.Number, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return v.Float64()
}

// renameField reports a canonical product field under the name the caller
// used for it.
func renameField(err error, prefix string, aliases map[string]string) error {
	var fieldErr *validators.FieldError
	if !errors.As(err, &fieldErr) {
		return err
	}

	field := fieldErr.Field
	if alias, ok := aliases[field]; ok {
		field = alias
	}

	return &validators.FieldError{Field: prefix + field, Rule: fieldErr.Rule, Param: fieldErr.Param}
}
