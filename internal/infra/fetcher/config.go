// Package fetcher implements the article fetching collaborator: it downloads
// a web page, extracts the readable article text with go-readability, and
// collects the page's images.
package fetcher

import (
	"fmt"
	"time"

	"article-digest/pkg/config"
)

// Config holds the configuration for article fetching operations.
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Enforced while reading the response, not via Content-Length.
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Each redirect target is re-validated for SSRF.
	MaxRedirects int

	// DenyPrivateIPs blocks URLs resolving to private/loopback/link-local
	// addresses. Should always be true in production.
	DenyPrivateIPs bool

	// MaxImages caps the number of image URLs collected from a page.
	MaxImages int
}

// DefaultConfig returns production-ready fetcher defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:        15 * time.Second,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		MaxImages:      10,
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	minBodySize := int64(1024)
	maxBodySize := int64(100 * 1024 * 1024)
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d",
			minBodySize, maxBodySize, c.MaxBodySize)
	}
	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}
	if c.MaxImages < 0 {
		return fmt.Errorf("max images must be non-negative, got %d", c.MaxImages)
	}
	return nil
}

// LoadConfigFromEnv loads fetcher configuration from environment variables,
// falling back to defaults, and validates the result.
//
// Environment variables:
//   - ARTICLE_FETCH_TIMEOUT: duration string, e.g. "15s"
//   - ARTICLE_FETCH_MAX_BODY_SIZE: integer in bytes
//   - ARTICLE_FETCH_MAX_REDIRECTS: integer
//   - ARTICLE_FETCH_DENY_PRIVATE_IPS: boolean
//   - ARTICLE_FETCH_MAX_IMAGES: integer
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.Timeout = config.GetEnvDuration("ARTICLE_FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = int64(config.GetEnvInt("ARTICLE_FETCH_MAX_BODY_SIZE", int(cfg.MaxBodySize)))
	cfg.MaxRedirects = config.GetEnvInt("ARTICLE_FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = config.GetEnvBool("ARTICLE_FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.MaxImages = config.GetEnvInt("ARTICLE_FETCH_MAX_IMAGES", cfg.MaxImages)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("fetcher configuration validation failed: %w", err)
	}
	return cfg, nil
}
