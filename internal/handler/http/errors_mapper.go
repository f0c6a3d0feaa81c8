package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/freight-calculator/internal/app"
	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/MKhiriev/freight-calculator/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrNoDataProvided:       http.StatusBadRequest,
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrNoPostalCodeProvided: http.StatusBadRequest,

	validators.ErrMissingField: http.StatusBadRequest,
	validators.ErrInvalidField: http.StatusBadRequest,

	normalizer.ErrEmptyProductList: http.StatusBadRequest,

	service.ErrInvalidOriginPostalCode:      http.StatusBadRequest,
	service.ErrInvalidDestinationPostalCode: http.StatusBadRequest,
	service.ErrNoShipmentProvided:           http.StatusBadRequest,
	service.ErrNoQuotesAvailable:            http.StatusInternalServerError,
}

// errorMessageMap holds the caller-facing text of known errors. Errors not
// listed here are reported with their own text.
var errorMessageMap = map[error]string{
	ErrNoDataProvided:       app.MsgNoDataProvided,
	ErrInvalidJSON:          app.MsgInvalidJSON,
	ErrNoPostalCodeProvided: app.MsgNoPostalCodeProvided,

	normalizer.ErrEmptyProductList: app.MsgEmptyProductList,

	service.ErrInvalidOriginPostalCode:      app.MsgInvalidOriginPostalCode,
	service.ErrInvalidDestinationPostalCode: app.MsgInvalidDestinationPostalCode,
	service.ErrNoShipmentProvided:           app.MsgNoShipmentProvided,
	service.ErrNoQuotesAvailable:            app.MsgCalculationFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		if errors.Is(fieldErr, validators.ErrMissingField) {
			return app.MsgMissingField + fieldErr.Field
		}
		return app.MsgInvalidField + fieldErr.Field
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}
