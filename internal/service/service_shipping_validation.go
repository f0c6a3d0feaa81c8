package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/freight-calculator/internal/validators"
	"github.com/MKhiriev/freight-calculator/models"
)

// ShippingValidationService checks postal codes and the package shape
// before a calculation reaches the wrapped service, so invalid requests never
// trigger a provider call.
type ShippingValidationService struct {
	inner     ShippingService
	validator validators.Validator
}

func NewShippingValidationService(validator validators.Validator) ShippingServiceWrapper {
	return &ShippingValidationService{
		validator: validator,
	}
}

func (v *ShippingValidationService) Calculate(ctx context.Context, req CalculationRequest) (models.QuoteResult, error) {
	if !validators.IsValidPostalCode(req.Origin) {
		return models.QuoteResult{}, ErrInvalidOriginPostalCode
	}
	if !validators.IsValidPostalCode(req.Destination) {
		return models.QuoteResult{}, ErrInvalidDestinationPostalCode
	}

	if req.Package != nil {
		if err := v.validator.Validate(ctx, *req.Package); err != nil {
			return models.QuoteResult{}, packageFieldError(err)
		}
	}

	return v.inner.Calculate(ctx, req)
}

func (v *ShippingValidationService) ValidatePostalCode(ctx context.Context, postalCode string) bool {
	return v.inner.ValidatePostalCode(ctx, postalCode)
}

func (v *ShippingValidationService) Wrap(wrapped ShippingService) ShippingService {
	v.inner = wrapped
	return v
}

// packageFieldError reports a Package field under its request path.
func packageFieldError(err error) error {
	var fieldErr *validators.FieldError
	if !errors.As(err, &fieldErr) {
		return err
	}
	return &validators.FieldError{Field: "package." + fieldErr.Field, Rule: fieldErr.Rule, Param: fieldErr.Param}
}
