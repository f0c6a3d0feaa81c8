package normalizer

import "errors"

var (
	// ErrEmptyProductList is returned when a generic payload has no products.
	ErrEmptyProductList = errors.New("product list is empty")
	// ErrUnsupportedInput is returned for a nil Input.
	ErrUnsupportedInput = errors.New("unsupported normalizer input")
)
