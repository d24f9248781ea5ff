package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	EnvUpstreamBaseURL         = "UPSTREAM_BASE_URL"
	EnvUpstreamTimeout         = "UPSTREAM_TIMEOUT"
	EnvUpstreamTokenHeader     = "UPSTREAM_TOKEN_HEADER"
	EnvUpstreamMaxResponseSize = "UPSTREAM_MAX_RESPONSE_SIZE"
)

// UpstreamConfig points the API call surface at the backend it wraps.
type UpstreamConfig struct {
	BaseURL         string `toml:"base_url"`
	Timeout         string `toml:"timeout"`
	TokenHeader     string `toml:"token_header"`
	MaxResponseSize string `toml:"max_response_size"`

	maxResponseSizeVal int64
}

func (c *UpstreamConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// MaxResponseSizeBytes returns the parsed response body limit.
func (c *UpstreamConfig) MaxResponseSizeBytes() int64 {
	return c.maxResponseSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the upstream configuration.
func (c *UpstreamConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *UpstreamConfig) Merge(overlay *UpstreamConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.TokenHeader != "" {
		c.TokenHeader = overlay.TokenHeader
	}
	if overlay.MaxResponseSize != "" {
		c.MaxResponseSize = overlay.MaxResponseSize
	}
}

func (c *UpstreamConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8080/api/v1"
	}
	if c.Timeout == "" {
		c.Timeout = "15s"
	}
	if c.TokenHeader == "" {
		c.TokenHeader = "token"
	}
	if c.MaxResponseSize == "" {
		c.MaxResponseSize = "10MB"
	}
}

func (c *UpstreamConfig) loadEnv() {
	if v := os.Getenv(EnvUpstreamBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvUpstreamTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvUpstreamTokenHeader); v != "" {
		c.TokenHeader = v
	}
	if v := os.Getenv(EnvUpstreamMaxResponseSize); v != "" {
		c.MaxResponseSize = v
	}
}

func (c *UpstreamConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url scheme: %q", u.Scheme)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	size, err := units.FromHumanSize(c.MaxResponseSize)
	if err != nil {
		return fmt.Errorf("invalid max_response_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_response_size must be positive")
	}
	c.maxResponseSizeVal = size
	return nil
}
