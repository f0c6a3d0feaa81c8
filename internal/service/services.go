package service

import (
	"fmt"

	"github.com/MKhiriev/freight-calculator/internal/adapter"
	"github.com/MKhiriev/freight-calculator/internal/config"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/validators"
)

type Services struct {
	ShippingService ShippingService
	AppInfoService  AppInfoService
}

// NewServices wires the service layer around quoteClient. The shipping
// service is wrapped in input validation.
func NewServices(quoteClient adapter.QuoteClient, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(cfg.App, cfg.Provider, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	shippingService := NewShippingValidationService(validator).Wrap(
		NewShippingService(quoteClient, normalizer.NewNormalizer(cfg.Normalizer, validator), logger),
	)

	return &Services{
		ShippingService: shippingService,
		AppInfoService:  appInfoService,
	}, nil
}
