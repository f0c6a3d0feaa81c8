// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults applied by [StructuredConfig.validate] to fields left empty by
// every configuration source.
const (
	DefaultVersion                = "dev"
	DefaultHTTPAddress            = "0.0.0.0:5000"
	DefaultServerRequestTimeout   = 60 * time.Second
	DefaultSandboxURL             = "https://sandbox.melhorenvio.com.br"
	DefaultProductionURL          = "https://www.melhorenvio.com.br"
	DefaultUserAgent              = "CalculadorFrete/1.0 (contato@loja.com)"
	DefaultProviderRequestTimeout = 30 * time.Second
	DefaultGramsThreshold         = 50.0
)

// validate fills defaults and checks that the final merged
// [StructuredConfig] satisfies all application invariants before it is used
// at startup.
func (cfg *StructuredConfig) validate() error {
	cfg.applyDefaults()

	if strings.TrimSpace(cfg.Provider.Token) == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidProviderConfigs)
	}
	if sandbox := strings.TrimSpace(cfg.Provider.Sandbox); sandbox != "" {
		if _, err := strconv.ParseBool(sandbox); err != nil {
			return fmt.Errorf("%w: sandbox must be a boolean, got %q", ErrInvalidProviderConfigs, sandbox)
		}
	}
	for _, raw := range []string{cfg.Provider.SandboxURL, cfg.Provider.ProductionURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidProviderConfigs, raw)
		}
	}
	if cfg.Provider.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidProviderConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Normalizer.GramsThreshold < 0 {
		return fmt.Errorf("%w: negative grams threshold", ErrInvalidNormalizerConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	cfg.Provider.Token = normalizeToken(cfg.Provider.Token)

	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if cfg.Provider.SandboxURL == "" {
		cfg.Provider.SandboxURL = DefaultSandboxURL
	}
	if cfg.Provider.ProductionURL == "" {
		cfg.Provider.ProductionURL = DefaultProductionURL
	}
	if cfg.Provider.UserAgent == "" {
		cfg.Provider.UserAgent = DefaultUserAgent
	}
	if cfg.Provider.RequestTimeout == 0 {
		cfg.Provider.RequestTimeout = DefaultProviderRequestTimeout
	}
	if cfg.Normalizer.GramsThreshold == 0 {
		cfg.Normalizer.GramsThreshold = DefaultGramsThreshold
	}
}

const bearerPrefix = "Bearer "

// normalizeToken drops surrounding whitespace and a pasted "Bearer " prefix;
// the outbound client adds the scheme itself.
func normalizeToken(token string) string {
	token = strings.TrimSpace(token)
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	return token
}
