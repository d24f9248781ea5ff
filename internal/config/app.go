package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvAppBasePath    = "APP_BASE_PATH"
	EnvAppTokenCookie = "APP_TOKEN_COOKIE"
	EnvAppTitle       = "APP_TITLE"
)

// AppConfig contains settings for the server-rendered dashboard module.
type AppConfig struct {
	BasePath    string `toml:"base_path"`
	TokenCookie string `toml:"token_cookie"`
	Title       string `toml:"title"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.TokenCookie != "" {
		c.TokenCookie = overlay.TokenCookie
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.TokenCookie == "" {
		c.TokenCookie = "token"
	}
	if c.Title == "" {
		c.Title = "Admin Console"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppTokenCookie); v != "" {
		c.TokenCookie = v
	}
	if v := os.Getenv(EnvAppTitle); v != "" {
		c.Title = v
	}
}

func (c *AppConfig) validate() error {
	if err := validatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}
	return nil
}

// validatePrefix enforces the single-segment form modules are mounted at.
func validatePrefix(prefix string) error {
	if !strings.HasPrefix(prefix, "/") || len(prefix) < 2 {
		return fmt.Errorf("must start with / and name a segment: %q", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("must be a single path segment: %q", prefix)
	}
	return nil
}
