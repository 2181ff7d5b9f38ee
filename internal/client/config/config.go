// Package config handles configuration for the visitor client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - StoreURL: where the published testimonial store JSON is fetched from.
//   - FormEndpoint: the external form-submission target.
//   - RelayEndpoint: the intake relay's submission URL; empty disables the
//     moderation notification.
//   - DatabasePath: the client-local sqlite file holding the draft and
//     cache slots.
//   - CacheTTL: how long a cached display view stays fresh.
//   - AutosaveInterval: the unconditional draft snapshot cadence.
type Config struct {
	StoreURL         string
	FormEndpoint     string
	RelayEndpoint    string
	DatabasePath     string
	CacheTTL         time.Duration
	AutosaveInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreURL = "http://127.0.0.1:8080/data/testimonials.json"
	c.FormEndpoint = "http://127.0.0.1:8080/submit"
	c.RelayEndpoint = "http://127.0.0.1:8090/api/submissions"
	c.DatabasePath = "kudos.db"
	c.CacheTTL = time.Hour
	c.AutosaveInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
