// Package config handles configuration for the intake relay, including
// defaults, environment variables, JSON overlay and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the intake relay.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DispatchToken: bearer token for the moderation dispatch API.
//   - DispatchRepo: target repository identifier ("owner/repo").
//   - DispatchBaseURL: dispatch API base (overridable for tests).
//   - DispatchTimeout: outbound call timeout.
//
// The token and repo have no defaults; without both the endpoint answers
// every submission with a server-configuration error.
type Config struct {
	EndpointAddr    string
	DispatchToken   string
	DispatchRepo    string
	DispatchBaseURL string
	DispatchTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8090"
	c.DispatchBaseURL = "https://api.github.com"
	c.DispatchTimeout = 10 * time.Second
}

// parseEnv overlays credentials from the environment. The relay's main
// loads a .env file first (godotenv), so these work both locally and under
// a process manager.
func parseEnv(c *Config) {
	if v := os.Getenv("KUDOS_DISPATCH_TOKEN"); v != "" {
		c.DispatchToken = v
	}
	if v := os.Getenv("KUDOS_DISPATCH_REPO"); v != "" {
		c.DispatchRepo = v
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
