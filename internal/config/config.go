// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// freight calculator. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Provider holds the credential and environment selector of the
	// Melhor Envio quote API.
	Provider Provider `envPrefix:"MELHOR_ENVIO_"`

	// Normalizer holds tunables of the product normalization layer.
	Normalizer Normalizer `envPrefix:"NORMALIZER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by GET /health.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Provider configures the outbound quote client. It is read once at startup
// and handed to the client constructor; nothing mutates it afterwards.
type Provider struct {
	// Token is the bearer credential sent with every quote request.
	// Env: MELHOR_ENVIO_TOKEN
	Token string `env:"TOKEN"`

	// Sandbox selects the sandbox ("true", the default) or production
	// ("false") environment. Any value accepted by [strconv.ParseBool] works.
	// Env: MELHOR_ENVIO_SANDBOX
	Sandbox string `env:"SANDBOX"`

	// SandboxURL is the base URL used when Sandbox is true.
	// Env: MELHOR_ENVIO_SANDBOX_URL
	SandboxURL string `env:"SANDBOX_URL"`

	// ProductionURL is the base URL used when Sandbox is false.
	// Env: MELHOR_ENVIO_PRODUCTION_URL
	ProductionURL string `env:"PRODUCTION_URL"`

	// UserAgent is sent on every request; the provider asks integrators to
	// identify themselves with a contact address.
	// Env: MELHOR_ENVIO_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds a single outbound quote call.
	// Env: MELHOR_ENVIO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IsSandbox reports whether the sandbox environment is selected. The
// selector is read with strconv.ParseBool; empty or unparsable means sandbox,
// so production is only reached by an explicit false.
func (p Provider) IsSandbox() bool {
	if strings.TrimSpace(p.Sandbox) == "" {
		return true
	}
	sandbox, err := strconv.ParseBool(strings.TrimSpace(p.Sandbox))
	if err != nil {
		return true
	}
	return sandbox
}

// BaseURL returns the provider host matching the selected environment.
func (p Provider) BaseURL() string {
	if p.IsSandbox() {
		return p.SandboxURL
	}
	return p.ProductionURL
}

// Normalizer holds settings of the product normalization layer.
type Normalizer struct {
	// GramsThreshold is the weight above which a Shopify product weight is
	// assumed to be in grams rather than kilograms.
	// Env: NORMALIZER_GRAMS_THRESHOLD
	GramsThreshold float64 `env:"GRAMS_THRESHOLD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetEnvConfig is [GetStructuredConfig] without command-line flags, for
// binaries that own their flag parsing.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
