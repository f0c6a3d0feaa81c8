// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Company is the carrier behind a quote.
type Company struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// DeliveryRange is the min/max business-day window the carrier commits to.
type DeliveryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RawQuote is a single record of the provider's calculate response.
//
// Custom* fields carry provider-side overrides configured on the account and
// take precedence over their plain counterparts when present. Packages and
// AdditionalServices are kept as raw JSON and forwarded untouched.
type RawQuote struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	Price               *Number         `json:"price,omitempty"`
	CustomPrice         *Number         `json:"custom_price,omitempty"`
	Discount            *Number         `json:"discount,omitempty"`
	Currency            string          `json:"currency,omitempty"`
	DeliveryTime        *int            `json:"delivery_time,omitempty"`
	CustomDeliveryTime  *int            `json:"custom_delivery_time,omitempty"`
	DeliveryRange       *DeliveryRange  `json:"delivery_range,omitempty"`
	CustomDeliveryRange *DeliveryRange  `json:"custom_delivery_range,omitempty"`
	Packages            json.RawMessage `json:"packages,omitempty"`
	AdditionalServices  json.RawMessage `json:"additional_services,omitempty"`
	Company             Company         `json:"company"`

	// Error is set by the provider when this carrier/service could not quote
	// the shipment. Such records are never shown to callers.
	Error QuoteError `json:"error,omitempty"`
}

// QuoteError is the raw "error" member of a provider record. The provider
// usually sends a message string, but objects and booleans occur too.
type QuoteError []byte

// NewQuoteError returns a QuoteError holding msg as a JSON string.
func NewQuoteError(msg string) QuoteError {
	b, _ := json.Marshal(msg)
	return QuoteError(b)
}

// IsSet reports whether the record failed. Absent, null, a blank string and
// false mean no error; any other value does.
func (e QuoteError) IsSet() bool {
	raw := bytes.TrimSpace(e)
	if len(raw) == 0 {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}

	switch value := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(value) != ""
	case bool:
		return value
	default:
		return true
	}
}

// String returns the message when the error is a JSON string, the raw JSON
// otherwise.
func (e QuoteError) String() string {
	var msg string
	if err := json.Unmarshal(e, &msg); err == nil {
		return msg
	}
	return string(e)
}

// UnmarshalJSON implements [json.Unmarshaler] by keeping the raw value.
func (e *QuoteError) UnmarshalJSON(b []byte) error {
	*e = append((*e)[:0], b...)
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (e QuoteError) MarshalJSON() ([]byte, error) {
	if len(e) == 0 {
		return []byte("null"), nil
	}
	return e, nil
}

// FormattedQuote is the display-ready projection of a [RawQuote].
type FormattedQuote struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Company            string          `json:"company"`
	CompanyLogo        string          `json:"company_logo"`
	Price              float64         `json:"price"`
	DeliveryTime       int             `json:"delivery_time"`
	Currency           string          `json:"currency"`
	DeliveryRange      *DeliveryRange  `json:"delivery_range,omitempty"`
	Packages           json.RawMessage `json:"packages"`
	AdditionalServices json.RawMessage `json:"additional_services"`

	// FormattedPrice is e.g. "R$ 49,90"; absent when the quote has no price.
	FormattedPrice string `json:"formatted_price,omitempty"`

	// FormattedDelivery is a human phrase for DeliveryTime.
	FormattedDelivery string `json:"formatted_delivery"`
}

// QuoteResult is the formatted outcome of one quote calculation.
type QuoteResult struct {
	ShippingOptions []FormattedQuote `json:"shipping_options"`
	Cheapest        *FormattedQuote  `json:"cheapest"`
	Fastest         *FormattedQuote  `json:"fastest"`

	// Dropped counts provider records excluded because they carried an
	// error. Diagnostic only, not part of the response body.
	Dropped int `json:"-"`
}
