package config

import "time"

// Config holds runtime settings for the fittrack CLI.
//
// Fields:
//   - AuthEndpointAddr: base URL of the authentication service.
//   - CatalogEndpointAddr: base URL of the exercise catalog service.
//   - CatalogAPIKey: API key sent with catalog requests; empty disables the header.
//   - RequestTimeout: cap on any single outbound HTTP request.
//   - DatabasePath: SQLite file holding all durable client state.
type Config struct {
	AuthEndpointAddr    string
	CatalogEndpointAddr string
	CatalogAPIKey       string
	RequestTimeout      time.Duration
	DatabasePath        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthEndpointAddr = "https://dummyjson.com"
	c.CatalogEndpointAddr = "https://api.api-ninjas.com/v1"
	c.CatalogAPIKey = ""
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "fittrack.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
