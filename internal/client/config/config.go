// Package config loads runtime settings for the FlyZone CLI.
//
// Sources are layered, later ones overriding earlier ones:
// defaults -> environment (including a .env file) -> JSON file -> flags.
package config

// Config holds runtime settings for the FlyZone CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabasePath: sqlite file holding the persisted session.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.DatabasePath = "flyzone.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
