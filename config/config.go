package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/bikelog/pkg/logger"
)

// Environment variables that override file settings.
const (
	EnvDataFile       = "BIKELOG_DATA_FILE"
	EnvCurrency       = "BIKELOG_CURRENCY"
	EnvLogLevel       = "BIKELOG_LOG_LEVEL"
	EnvJournalEnabled = "BIKELOG_JOURNAL"
	EnvJournalDB      = "BIKELOG_JOURNAL_DB"
)

// Config represents the tracker configuration
type Config struct {
	DataFile string        `json:"data_file" yaml:"data_file"`
	Currency string        `json:"currency" yaml:"currency"`
	Log      LogConfig     `json:"log" yaml:"log"`
	Journal  JournalConfig `json:"journal" yaml:"journal"`
}

// LogConfig controls diagnostic logging (written to stderr)
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// JournalConfig controls the optional SQLite mirror
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Load builds the configuration from defaults, the optional file at path
// and the environment (a .env file in the working directory is honored).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		fc, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fc
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Settings missing from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("data_file is required")
	}
	if strings.TrimSpace(c.Currency) == "" {
		return fmt.Errorf("currency is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "off", "disabled":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, off")
	}
	if c.Journal.Enabled && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required when journal is enabled")
	}
	return nil
}

// LoggerConfig converts the log section for logger.New.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.Log.Level, Pretty: c.Log.Pretty}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		DataFile: "bike_data.json",
		Currency: "money units",
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
		Journal: JournalConfig{
			Enabled: false,
			DBPath:  "./bikelog.sqlite",
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvJournalDB); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv(EnvJournalEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJournalEnabled, err)
		}
		c.Journal.Enabled = b
	}
	return nil
}
