package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidProviderConfigs indicates invalid quote provider settings
	// (for example, a missing token or a malformed base URL).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidNormalizerConfigs indicates invalid normalization settings
	// (for example, a negative grams threshold).
	ErrInvalidNormalizerConfigs = errors.New("invalid normalizer configuration")
)
