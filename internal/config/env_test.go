// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.4.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"MELHOR_ENVIO_TOKEN":           "bearer-token",
		"MELHOR_ENVIO_SANDBOX":         "false",
		"MELHOR_ENVIO_SANDBOX_URL":     "https://sandbox.example.com",
		"MELHOR_ENVIO_PRODUCTION_URL":  "https://prod.example.com",
		"MELHOR_ENVIO_USER_AGENT":      "Loja/1.0",
		"MELHOR_ENVIO_REQUEST_TIMEOUT": "5s",

		"NORMALIZER_GRAMS_THRESHOLD": "75.5",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "bearer-token", cfg.Provider.Token)
	assert.Equal(t, "false", cfg.Provider.Sandbox)
	assert.Equal(t, "https://sandbox.example.com", cfg.Provider.SandboxURL)
	assert.Equal(t, "https://prod.example.com", cfg.Provider.ProductionURL)
	assert.Equal(t, "Loja/1.0", cfg.Provider.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.Provider.RequestTimeout)

	assert.Equal(t, 75.5, cfg.Normalizer.GramsThreshold)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"MELHOR_ENVIO_TOKEN": "bearer-token",
		"SERVER_ADDRESS":     "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", cfg.Provider.Token)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Provider.Sandbox)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Normalizer.GramsThreshold)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"MELHOR_ENVIO_REQUEST_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidThreshold(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NORMALIZER_GRAMS_THRESHOLD": "fifty",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_VERSION",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"MELHOR_ENVIO_TOKEN",
	"MELHOR_ENVIO_SANDBOX",
	"MELHOR_ENVIO_SANDBOX_URL",
	"MELHOR_ENVIO_PRODUCTION_URL",
	"MELHOR_ENVIO_USER_AGENT",
	"MELHOR_ENVIO_REQUEST_TIMEOUT",

	"NORMALIZER_GRAMS_THRESHOLD",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads. t.Setenv restores
// the previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}
