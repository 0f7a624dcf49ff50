package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "bike_data.json", cfg.DataFile)
	assert.Equal(t, "money units", cfg.Currency)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Journal.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing data file",
			mutate:  func(c *Config) { c.DataFile = "  " },
			wantErr: true,
			errMsg:  "data_file is required",
		},
		{
			name:    "missing currency",
			mutate:  func(c *Config) { c.Currency = "" },
			wantErr: true,
			errMsg:  "currency is required",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
			errMsg:  "log.level must be one of",
		},
		{
			name: "journal enabled without db",
			mutate: func(c *Config) {
				c.Journal.Enabled = true
				c.Journal.DBPath = ""
			},
			wantErr: true,
			errMsg:  "journal db_path required",
		},
		{
			name: "journal disabled without db",
			mutate: func(c *Config) {
				c.Journal.DBPath = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bikelog.yaml")

	cfg := Default()
	cfg.DataFile = "/var/lib/bikelog/data.json"
	cfg.Currency = "EUR"
	cfg.Journal.Enabled = true
	require.NoError(t, cfg.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_file: /var/lib/bikelog/data.json")

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bikelog.json")

	cfg := Default()
	cfg.Currency = "USD"
	require.NoError(t, cfg.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"currency": "USD"`)

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: CHF\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, "bike_data.json", cfg.DataFile)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("data_file: [unclosed\n"), 0o644))
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("currency: \"\"\n"), 0o644))
	_, err = LoadFromFile(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency is required")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvDataFile, "/tmp/other.json")
	t.Setenv(EnvCurrency, "GBP")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvJournalEnabled, "true")
	t.Setenv(EnvJournalDB, "/tmp/j.sqlite")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.json", cfg.DataFile)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/j.sqlite", cfg.Journal.DBPath)
	assert.Equal(t, "debug", cfg.LoggerConfig().Level)
}

func TestLoadEnvBadBool(t *testing.T) {
	t.Setenv(EnvJournalEnabled, "maybe")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvJournalEnabled)
}
