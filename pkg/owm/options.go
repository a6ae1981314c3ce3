package owm

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithAPIKey stores the provider credential used on every request that
// is not given an explicit per-call override.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithUnits sets the measurement system (default: metric).
func WithUnits(units Units) Option {
	return func(c *Client) {
		c.units = units
	}
}

// WithLanguage sets the language code for textual fields (default: "en").
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithFetcher replaces the transport capability. The default is an
// HTTPFetcher with a 10 second timeout.
func WithFetcher(f Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithCache enables response caching through the given capability with
// the given freshness window. A TTL of zero disables caching even with
// a capability configured.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.ttl = ttl
	}
}

// WithLogger sets the diagnostics collaborator. Provider and decoding
// failures are reported through it before being returned. The default
// is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
