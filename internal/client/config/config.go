// Package config loads runtime settings for the authkeeper CLI.
package config

import "time"

// Config holds runtime settings for the authkeeper CLI.
//
// Fields:
//   - APIBaseURL: root of the account API, including the /api mount point.
//   - StateDBPath: path of the local sqlite state database.
//   - RequestTimeout: per-request timeout for API calls.
//   - InsecureSkipVerify: skip TLS certificate verification; development
//     servers run behind self-signed certificates.
type Config struct {
	APIBaseURL         string
	StateDBPath        string
	RequestTimeout     time.Duration
	InsecureSkipVerify bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://localhost:8443/api"
	c.StateDBPath = "authkeeper.db"
	c.RequestTimeout = 10 * time.Second
	c.InsecureSkipVerify = false
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
