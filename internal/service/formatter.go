// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/freight-calculator/models"
)

const (
	DefaultCurrency = "R$"

	sameDayDelivery = "Mesmo dia"
	oneDayDelivery  = "1 dia útil"
	daysDelivery    = "%d dias úteis"
)

var (
	emptyPackages           = json.RawMessage(`[]`)
	emptyAdditionalServices = json.RawMessage(`{}`)
)

// FormatQuotes turns provider records into display-ready quotes sorted by
// ascending price, quotes without a price last. Records carrying an error
// are left out; their number is returned as dropped.
func FormatQuotes(raw []models.RawQuote) (formatted []models.FormattedQuote, dropped int) {
	formatted = make([]models.FormattedQuote, 0, len(raw))
	for _, quote := range raw {
		if quote.Error.IsSet() {
			dropped++
			continue
		}
		formatted = append(formatted, formatQuote(quote))
	}

	slices.SortStableFunc(formatted, func(a, b models.FormattedQuote) int {
		return cmp.Compare(sortablePrice(a.Price), sortablePrice(b.Price))
	})

	return formatted, dropped
}

// CheapestQuote returns the first quote of FormatQuotes(raw), or nil.
func CheapestQuote(raw []models.RawQuote) *models.FormattedQuote {
	formatted, _ := FormatQuotes(raw)
	return cheapest(formatted)
}

// FastestQuote returns the quote of FormatQuotes(raw) with the smallest
// delivery time, or nil. Ties go to the cheaper quote.
func FastestQuote(raw []models.RawQuote) *models.FormattedQuote {
	formatted, _ := FormatQuotes(raw)
	return fastest(formatted)
}

// BuildQuoteResult formats raw once and derives both picks from it.
func BuildQuoteResult(raw []models.RawQuote) models.QuoteResult {
	formatted, dropped := FormatQuotes(raw)

	return models.QuoteResult{
		ShippingOptions: formatted,
		Cheapest:        cheapest(formatted),
		Fastest:         fastest(formatted),
		Dropped:         dropped,
	}
}

func cheapest(formatted []models.FormattedQuote) *models.FormattedQuote {
	if len(formatted) == 0 {
		return nil
	}
	quote := formatted[0]
	return &quote
}

func fastest(formatted []models.FormattedQuote) *models.FormattedQuote {
	if len(formatted) == 0 {
		return nil
	}
	quote := slices.MinFunc(formatted, func(a, b models.FormattedQuote) int {
		return cmp.Compare(a.DeliveryTime, b.DeliveryTime)
	})
	return &quote
}

func formatQuote(quote models.RawQuote) models.FormattedQuote {
	price := numberOf(quote.CustomPrice, quote.Price)
	deliveryTime := intOf(quote.CustomDeliveryTime, quote.DeliveryTime)

	formatted := models.FormattedQuote{
		ID:                 quote.ID,
		Name:               quote.Name,
		Company:            quote.Company.Name,
		CompanyLogo:        quote.Company.Picture,
		Price:              price,
		DeliveryTime:       deliveryTime,
		Currency:           quote.Currency,
		DeliveryRange:      quote.DeliveryRange,
		Packages:           quote.Packages,
		AdditionalServices: quote.AdditionalServices,
		FormattedPrice:     FormatPrice(price),
		FormattedDelivery:  FormatDelivery(deliveryTime),
	}

	if formatted.Currency == "" {
		formatted.Currency = DefaultCurrency
	}
	if isNullJSON(formatted.Packages) {
		formatted.Packages = emptyPackages
	}
	if isNullJSON(formatted.AdditionalServices) {
		formatted.AdditionalServices = emptyAdditionalServices
	}

	return formatted
}

// FormatPrice renders price as "R$ 49,90". Zero yields "".
func FormatPrice(price float64) string {
	if price == 0 {
		return ""
	}
	return "R$ " + strings.Replace(strconv.FormatFloat(price, 'f', 2, 64), ".", ",", 1)
}

// FormatDelivery renders a delivery time in business days.
func FormatDelivery(days int) string {
	switch days {
	case 0:
		return sameDayDelivery
	case 1:
		return oneDayDelivery
	default:
		return fmt.Sprintf(daysDelivery, days)
	}
}

func sortablePrice(price float64) float64 {
	if price == 0 {
		return math.Inf(1)
	}
	return price
}

func numberOf(preferred, fallback *models.Number) float64 {
	if preferred != nil {
		return preferred.Float64()
	}
	if fallback != nil {
		return fallback.Float64()
	}
	return 0
}

func intOf(preferred, fallback *int) int {
	if preferred != nil {
		return *preferred
	}
	if fallback != nil {
		return *fallback
	}
	return 0
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
