package config

import "time"

// Config holds runtime settings for the StoreHub terminal client.
//
// Fields:
//   - ServerBaseURL: base URL of the StoreHub REST API, without a trailing slash.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - LocalDBPath: path of the SQLite file holding the persisted session.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	ServerBaseURL  string
	LocalDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.LocalDBPath = "storehub.db"
	c.RequestTimeout = 10 * time.Second
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
