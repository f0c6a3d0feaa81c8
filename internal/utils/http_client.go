package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{BaseURL: "https://example.com"})
//	resp, err := client.R().Get("/status")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig holds the settings applied to every request of an
// [HTTPClient]. Zero values leave the resty defaults in place.
type HTTPClientConfig struct {
	// BaseURL is prepended to relative request paths. A trailing slash is
	// removed.
	BaseURL string

	// Timeout bounds a whole request including reading the body.
	Timeout time.Duration

	// UserAgent replaces resty's default User-Agent header.
	UserAgent string

	// BearerToken, when non-empty, is sent as "Authorization: Bearer <token>".
	BearerToken string
}

// NewHTTPClient creates and returns a new HTTPClient instance that talks
// JSON: both Accept and Content-Type are set to "application/json".
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The returned client is safe
// for concurrent use.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{
//	    BaseURL:     "https://sandbox.melhorenvio.com.br",
//	    Timeout:     30 * time.Second,
//	    BearerToken: token,
//	})
//	resp, err := client.R().SetBody(payload).Post("/api/v2/me/shipment/calculate")
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if cfg.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.BearerToken != "" {
		client.SetAuthToken(cfg.BearerToken)
	}

	return &HTTPClient{Client: client}
}
