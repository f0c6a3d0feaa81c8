package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/freight-calculator/internal/config"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/utils"
	"github.com/MKhiriev/freight-calculator/internal/validators"
	"github.com/MKhiriev/freight-calculator/models"
)

// calculatePath is the provider endpoint for both request shapes.
const calculatePath = "/api/v2/me/shipment/calculate"

type melhorEnvioClient struct {
	client  *utils.HTTPClient
	sandbox bool

	logger *logger.Logger
}

type postalAddress struct {
	PostalCode string `json:"postal_code"`
}

// calculateRequest is the provider request body. Exactly one of Products
// and Package is set.
type calculateRequest struct {
	From     postalAddress          `json:"from"`
	To       postalAddress          `json:"to"`
	Products []models.Product       `json:"products,omitempty"`
	Package  *models.Package        `json:"package,omitempty"`
	Options  models.ShippingOptions `json:"options,omitempty"`
}

// NewMelhorEnvioClient constructs the resty implementation of [QuoteClient]
// for the environment selected by providerCfg. The bearer token, User-Agent,
// JSON headers and request timeout are set once on the underlying client.
func NewMelhorEnvioClient(providerCfg config.Provider, logger *logger.Logger) QuoteClient {
	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL:     providerCfg.BaseURL(),
		Timeout:     providerCfg.RequestTimeout,
		UserAgent:   providerCfg.UserAgent,
		BearerToken: providerCfg.Token,
	})

	logger.Info().
		Str("base_url", client.BaseURL).
		Bool("sandbox", providerCfg.IsSandbox()).
		Msg("quote client created")

	return &melhorEnvioClient{
		client:  client,
		sandbox: providerCfg.IsSandbox(),
		logger:  logger,
	}
}

// GetQuotes implements [QuoteClient].
func (m *melhorEnvioClient) GetQuotes(ctx context.Context, origin, destination string, products []models.Product, options models.ShippingOptions) []models.RawQuote {
	return m.calculate(ctx, calculateRequest{
		From:     postalAddress{PostalCode: validators.CleanPostalCode(origin)},
		To:       postalAddress{PostalCode: validators.CleanPostalCode(destination)},
		Products: products,
		Options:  nonEmpty(options),
	})
}

// GetQuotesByPackage implements [QuoteClient].
func (m *melhorEnvioClient) GetQuotesByPackage(ctx context.Context, origin, destination string, pkg models.Package, options models.ShippingOptions) []models.RawQuote {
	return m.calculate(ctx, calculateRequest{
		From:    postalAddress{PostalCode: validators.CleanPostalCode(origin)},
		To:      postalAddress{PostalCode: validators.CleanPostalCode(destination)},
		Package: &pkg,
		Options: nonEmpty(options),
	})
}

// Sandbox implements [QuoteClient].
func (m *melhorEnvioClient) Sandbox() bool {
	return m.sandbox
}

func (m *melhorEnvioClient) calculate(ctx context.Context, body calculateRequest) []models.RawQuote {
	log := logger.FromContext(ctx)

	quotes, err := m.post(ctx, body)
	if err != nil {
		log.Error().
			Err(err).
			Str("from", body.From.PostalCode).
			Str("to", body.To.PostalCode).
			Bool("package", body.Package != nil).
			Msg("error calculating shipment quotes")
		return []models.RawQuote{}
	}

	log.Debug().Int("quotes", len(quotes)).Msg("shipment quotes received")
	return quotes
}

func (m *melhorEnvioClient) post(ctx context.Context, body calculateRequest) ([]models.RawQuote, error) {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(calculatePath)
	if err != nil {
		return nil, fmt.Errorf("calculate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return decodeQuotes(ctx, records), nil
}

// malformedRecord marks a provider record that could not be decoded, so the
// formatter drops and counts it like any other failed carrier.
var malformedRecord = models.NewQuoteError("malformed provider record")

// decodeQuotes decodes every record on its own: one carrier sending an
// unexpected shape must not cost the other carriers' quotes.
func decodeQuotes(ctx context.Context, records []json.RawMessage) []models.RawQuote {
	quotes := make([]models.RawQuote, 0, len(records))
	for i, record := range records {
		var quote models.RawQuote
		err := json.Unmarshal(record, &quote)
		if err == nil && isJSONNull(record) {
			err = errNullRecord
		}
		if err != nil {
			logger.FromContext(ctx).Warn().
				Err(err).
				Int("index", i).
				RawJSON("record", record).
				Msg("malformed provider record")
			quotes = append(quotes, models.RawQuote{Error: malformedRecord})
			continue
		}
		quotes = append(quotes, quote)
	}
	return quotes
}

func isJSONNull(record json.RawMessage) bool {
	return string(bytes.TrimSpace(record)) == "null"
}

func nonEmpty(options models.ShippingOptions) models.ShippingOptions {
	if len(options) == 0 {
		return nil
	}
	return options
}
