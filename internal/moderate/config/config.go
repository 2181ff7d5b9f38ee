// Package config handles configuration for the moderation tool.
package config

// Config holds runtime settings for the moderation tool.
//
// Fields:
//   - StorePath: location of the testimonial store file.
type Config struct {
	StorePath string
}

// LoadDefaults populates Config with sensible defaults. The default path
// matches where the site build publishes the store.
func (c *Config) LoadDefaults() {
	c.StorePath = "data/testimonials.json"
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
