package service

import "errors"

var (
	ErrInvalidOriginPostalCode      = errors.New("invalid origin postal code")
	ErrInvalidDestinationPostalCode = errors.New("invalid destination postal code")

	ErrNoShipmentProvided = errors.New("neither products nor package provided")
	ErrNoQuotesAvailable  = errors.New("no quotes available")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
