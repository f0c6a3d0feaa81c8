package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/mock"
	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/MKhiriev/freight-calculator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	origin      = "01310-100"
	destination = "20040-020"
)

func number(v float64) *models.Number {
	n := models.Number(v)
	return &n
}

func intPtr(v int) *int { return &v }

func quote(id int, price float64, days int) models.RawQuote {
	return models.RawQuote{
		ID:           id,
		Name:         "PAC",
		Price:        number(price),
		DeliveryTime: intPtr(days),
		Company:      models.Company{Name: "Correios"},
	}
}

func newShippingService(t *testing.T) (service.ShippingService, *mock.MockQuoteClient, *mock.MockNormalizer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockQuoteClient(ctrl)
	norm := mock.NewMockNormalizer(ctrl)
	return service.NewShippingService(client, norm, logger.Nop()), client, norm
}

func TestShippingService_Calculate_Products(t *testing.T) {
	svc, client, norm := newShippingService(t)
	ctx := context.Background()

	input := normalizer.SimpleInput{Product: models.SimpleProduct{}}
	products := []models.Product{{ID: "product_1", Width: 10, Height: 5, Length: 15, Weight: 1, Quantity: 1}}
	options := models.ShippingOptions{"receipt": true}

	norm.EXPECT().Normalize(gomock.Any(), input).Return(products, nil)
	client.EXPECT().
		GetQuotes(gomock.Any(), origin, destination, products, options).
		Return([]models.RawQuote{quote(1, 30, 2), quote(2, 10, 6), {ID: 3, Error: models.NewQuoteError("x")}})

	result, err := svc.Calculate(ctx, service.CalculationRequest{
		Origin:      origin,
		Destination: destination,
		Input:       input,
		Options:     options,
	})

	require.NoError(t, err)
	require.Len(t, result.ShippingOptions, 2)
	assert.Equal(t, 2, result.ShippingOptions[0].ID)
	assert.Equal(t, 2, result.Cheapest.ID)
	assert.Equal(t, 1, result.Fastest.ID)
	assert.Equal(t, 1, result.Dropped)
}

func TestShippingService_Calculate_Package(t *testing.T) {
	svc, client, _ := newShippingService(t)

	pkg := models.Package{Width: 11, Height: 17, Length: 11, Weight: 0.3}
	client.EXPECT().
		GetQuotesByPackage(gomock.Any(), origin, destination, pkg, gomock.Nil()).
		Return([]models.RawQuote{quote(1, 15.38, 5)})

	result, err := svc.Calculate(context.Background(), service.CalculationRequest{
		Origin:      origin,
		Destination: destination,
		Package:     &pkg,
	})

	require.NoError(t, err)
	require.Len(t, result.ShippingOptions, 1)
	assert.Equal(t, "R$ 15,38", result.ShippingOptions[0].FormattedPrice)
	assert.Zero(t, result.Dropped)
}

func TestShippingService_Calculate_PackageTakesPrecedence(t *testing.T) {
	svc, client, _ := newShippingService(t)

	pkg := models.Package{Width: 11, Height: 17, Length: 11, Weight: 0.3}
	client.EXPECT().
		GetQuotesByPackage(gomock.Any(), origin, destination, pkg, gomock.Any()).
		Return([]models.RawQuote{quote(1, 20, 3)})

	_, err := svc.Calculate(context.Background(), service.CalculationRequest{
		Origin:      origin,
		Destination: destination,
		Input:       normalizer.GenericInput{},
		Package:     &pkg,
	})

	require.NoError(t, err)
}

func TestShippingService_Calculate_NoQuotes(t *testing.T) {
	tests := []struct {
		name string
		raw  []models.RawQuote
	}{
		{name: "provider failure", raw: []models.RawQuote{}},
		{name: "nil answer", raw: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client, norm := newShippingService(t)

			norm.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return([]models.Product{{ID: "1"}}, nil)
			client.EXPECT().GetQuotes(gomock.Any(), origin, destination, gomock.Any(), gomock.Any()).Return(tt.raw)

			_, err := svc.Calculate(context.Background(), service.CalculationRequest{
				Origin:      origin,
				Destination: destination,
				Input:       normalizer.GenericInput{Products: []models.Product{{ID: "1"}}},
			})

			assert.ErrorIs(t, err, service.ErrNoQuotesAvailable)
		})
	}
}

func TestShippingService_Calculate_OnlyErroredQuotes(t *testing.T) {
	svc, client, _ := newShippingService(t)

	pkg := models.Package{Width: 1, Height: 1, Length: 1, Weight: 1}
	client.EXPECT().
		GetQuotesByPackage(gomock.Any(), origin, destination, pkg, gomock.Any()).
		Return([]models.RawQuote{{ID: 1, Error: models.NewQuoteError("Transportadora não atende este trecho.")}})

	result, err := svc.Calculate(context.Background(), service.CalculationRequest{
		Origin:      origin,
		Destination: destination,
		Package:     &pkg,
	})

	require.NoError(t, err)
	assert.Empty(t, result.ShippingOptions)
	assert.Nil(t, result.Cheapest)
	assert.Nil(t, result.Fastest)
	assert.Equal(t, 1, result.Dropped)
}

func TestShippingService_Calculate_NormalizeError(t *testing.T) {
	svc, _, norm := newShippingService(t)

	norm.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(nil, normalizer.ErrEmptyProductList)

	_, err := svc.Calculate(context.Background(), service.CalculationRequest{
		Origin:      origin,
		Destination: destination,
		Input:       normalizer.GenericInput{},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, normalizer.ErrEmptyProductList))
}

func TestShippingService_Calculate_NoShipment(t *testing.T) {
	svc, _, _ := newShippingService(t)

	_, err := svc.Calculate(context.Background(), service.CalculationRequest{
		Origin:      origin,
		Destination: destination,
	})

	assert.ErrorIs(t, err, service.ErrNoShipmentProvided)
}

func TestShippingService_ValidatePostalCode(t *testing.T) {
	svc, _, _ := newShippingService(t)
	ctx := context.Background()

	assert.True(t, svc.ValidatePostalCode(ctx, "01310-100"))
	assert.True(t, svc.ValidatePostalCode(ctx, "01310100"))
	assert.False(t, svc.ValidatePostalCode(ctx, "1234"))
	assert.False(t, svc.ValidatePostalCode(ctx, ""))
}
