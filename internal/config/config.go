// Package config loads the diagnosis tool's configuration from an optional
// YAML file, RDX_* environment variables and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Snapshot backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// EnvPrefix is prepended to every environment override, e.g. RDX_SCORING_DELAY.
const EnvPrefix = "RDX"

// Config is the complete configuration.
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SnapshotConfig selects where the session snapshot lives.
type SnapshotConfig struct {
	Backend string        `mapstructure:"backend"`
	Slot    string        `mapstructure:"slot"`
	Breaker BreakerConfig `mapstructure:"breaker"`
}

// BreakerConfig tunes the circuit breaker around snapshot writes.
type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ScoringConfig tunes the computing transition.
type ScoringConfig struct {
	Delay     time.Duration `mapstructure:"delay"`
	CacheSize int           `mapstructure:"cache_size"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. configFile, when non-empty, names an explicit
// file that must exist; otherwise config.yaml is searched in the working
// directory, ./config and the default data directory.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath(defaultDataDir())
	}

	// Set environment variable prefix and enable automatic env binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without reading files or environment.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Snapshot: SnapshotConfig{
			Backend: BackendFile,
			Slot:    "default",
			Breaker: BreakerConfig{
				MaxFailures: 5,
				Timeout:     30 * time.Second,
			},
		},
		Scoring: ScoringConfig{
			Delay:     2 * time.Second,
			CacheSize: 128,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("data_dir", d.DataDir)

	// Snapshot defaults
	v.SetDefault("snapshot.backend", d.Snapshot.Backend)
	v.SetDefault("snapshot.slot", d.Snapshot.Slot)
	v.SetDefault("snapshot.breaker.max_failures", d.Snapshot.Breaker.MaxFailures)
	v.SetDefault("snapshot.breaker.timeout", d.Snapshot.Breaker.Timeout.String())

	// Scoring defaults
	v.SetDefault("scoring.delay", d.Scoring.Delay.String())
	v.SetDefault("scoring.cache_size", d.Scoring.CacheSize)

	// Logging defaults
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rare-disease-dx"
	}
	return filepath.Join(homeDir, ".rare-disease-dx")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	switch c.Snapshot.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid snapshot backend: %q", c.Snapshot.Backend)
	}
	if strings.TrimSpace(c.Snapshot.Slot) == "" {
		return fmt.Errorf("snapshot slot is required")
	}
	if strings.ContainsAny(c.Snapshot.Slot, `/\`) {
		return fmt.Errorf("invalid snapshot slot: %q", c.Snapshot.Slot)
	}
	if c.Snapshot.Breaker.Timeout < 0 {
		return fmt.Errorf("invalid breaker timeout: %s", c.Snapshot.Breaker.Timeout)
	}

	if c.Scoring.Delay < 0 {
		return fmt.Errorf("invalid scoring delay: %s", c.Scoring.Delay)
	}
	if c.Scoring.CacheSize < 0 {
		return fmt.Errorf("invalid scoring cache size: %d", c.Scoring.CacheSize)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// SnapshotFilePath returns the JSON snapshot location for the file backend.
func (c *Config) SnapshotFilePath() string {
	return filepath.Join(c.DataDir, fmt.Sprintf("session-%s.json", c.Snapshot.Slot))
}

// SnapshotDBPath returns the SQLite database location for the sqlite backend.
func (c *Config) SnapshotDBPath() string {
	return filepath.Join(c.DataDir, "session.db")
}

// ExportDir returns the directory for report exports.
func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.ExportDir(), 0755)
}

// NewLogger builds a logger for the logging section. An unparsable level
// falls back to info.
func (l LoggingConfig) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
