// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/freight-calculator/internal/app"
	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/MKhiriev/freight-calculator/internal/validators"
)

// HumanizeError turns a calculation error into a message for the terminal.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr) && errors.Is(fieldErr, validators.ErrMissingField):
		return app.MsgMissingField + fieldErr.Field
	case errors.As(err, &fieldErr):
		return app.MsgInvalidField + fieldErr.Field
	case errors.Is(err, service.ErrInvalidOriginPostalCode):
		return app.MsgInvalidOriginPostalCode
	case errors.Is(err, service.ErrInvalidDestinationPostalCode):
		return app.MsgInvalidDestinationPostalCode
	case errors.Is(err, normalizer.ErrEmptyProductList):
		return app.MsgEmptyProductList
	case errors.Is(err, service.ErrNoQuotesAvailable):
		// the quote client swallows transport and auth failures
		return app.MsgCalculationFailed + ": verifique o token, o ambiente e a conexão"
	}

	return err.Error()
}
