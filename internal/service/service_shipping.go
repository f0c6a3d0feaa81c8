package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/freight-calculator/internal/adapter"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/validators"
	"github.com/MKhiriev/freight-calculator/models"
)

type shippingService struct {
	quoteClient adapter.QuoteClient
	normalizer  normalizer.Normalizer

	logger *logger.Logger
}

func NewShippingService(quoteClient adapter.QuoteClient, normalizer normalizer.Normalizer, logger *logger.Logger) ShippingService {
	return &shippingService{
		quoteClient: quoteClient,
		normalizer:  normalizer,
		logger:      logger,
	}
}

// Calculate normalizes the request, asks the provider for quotes and formats
// them. An empty provider answer, whatever its cause, is ErrNoQuotesAvailable.
func (s *shippingService) Calculate(ctx context.Context, req CalculationRequest) (models.QuoteResult, error) {
	log := logger.FromContext(ctx)

	var raw []models.RawQuote
	switch {
	case req.Package != nil:
		raw = s.quoteClient.GetQuotesByPackage(ctx, req.Origin, req.Destination, *req.Package, req.Options)
	case req.Input != nil:
		products, err := s.normalizer.Normalize(ctx, req.Input)
		if err != nil {
			return models.QuoteResult{}, fmt.Errorf("error normalizing products: %w", err)
		}
		raw = s.quoteClient.GetQuotes(ctx, req.Origin, req.Destination, products, req.Options)
	default:
		return models.QuoteResult{}, ErrNoShipmentProvided
	}

	if len(raw) == 0 {
		return models.QuoteResult{}, ErrNoQuotesAvailable
	}

	result := BuildQuoteResult(raw)
	if result.Dropped > 0 {
		log.Warn().
			Int("dropped", result.Dropped).
			Int("kept", len(result.ShippingOptions)).
			Msg("quotes with provider errors dropped")
	}

	return result, nil
}

func (s *shippingService) ValidatePostalCode(ctx context.Context, postalCode string) bool {
	return validators.IsValidPostalCode(postalCode)
}
