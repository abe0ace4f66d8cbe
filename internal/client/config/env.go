package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the client.
const (
	EnvServerBaseURL = "FLYZONE_SERVER_URL"
	EnvDatabasePath  = "FLYZONE_DB_PATH"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; a missing file is not
// an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
