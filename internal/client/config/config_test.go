package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerBaseURL)
	assert.Equal(t, "flyzone.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.ServerBaseURL)
	assert.Equal(t, "flyzone.db", cfg.DatabasePath)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv(EnvServerBaseURL, "http://api.example.com")
	t.Setenv(EnvDatabasePath, "/tmp/session.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://api.example.com", c.ServerBaseURL)
	assert.Equal(t, "/tmp/session.db", c.DatabasePath)
}

func TestApplyJSON_OverlaysOnlyProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url":"http://json.example.com"}`), 0o600))

	var c Config
	c.LoadDefaults()
	applyJSON(&c, path)

	assert.Equal(t, "http://json.example.com", c.ServerBaseURL)
	assert.Equal(t, "flyzone.db", c.DatabasePath, "absent fields keep their previous value")
}

func TestApplyJSON_PanicsOnMissingFile(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Panics(t, func() { applyJSON(&c, "does-not-exist.json") })
}
