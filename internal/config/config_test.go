package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at a temp dir so no real
// config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rare-disease-dx"), cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Snapshot.Backend)
	assert.Equal(t, "default", cfg.Snapshot.Slot)
	assert.Equal(t, uint32(5), cfg.Snapshot.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Snapshot.Breaker.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Scoring.Delay)
	assert.Equal(t, 128, cfg.Scoring.CacheSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("RDX_DATA_DIR", "/tmp/rdx-test")
	t.Setenv("RDX_SNAPSHOT_BACKEND", "sqlite")
	t.Setenv("RDX_SNAPSHOT_SLOT", "ward-7")
	t.Setenv("RDX_SCORING_DELAY", "0s")
	t.Setenv("RDX_SCORING_CACHE_SIZE", "0")
	t.Setenv("RDX_LOGGING_LEVEL", "debug")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/rdx-test", cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Snapshot.Backend)
	assert.Equal(t, "ward-7", cfg.Snapshot.Slot)
	assert.Zero(t, cfg.Scoring.Delay)
	assert.Zero(t, cfg.Scoring.CacheSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rdx.yaml")
	content := `
data_dir: /var/lib/rdx
snapshot:
  backend: memory
  breaker:
    max_failures: 2
    timeout: 1m
scoring:
  delay: 250ms
logging:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/rdx", cfg.DataDir)
	assert.Equal(t, BackendMemory, cfg.Snapshot.Backend)
	assert.Equal(t, "default", cfg.Snapshot.Slot)
	assert.Equal(t, uint32(2), cfg.Snapshot.Breaker.MaxFailures)
	assert.Equal(t, time.Minute, cfg.Snapshot.Breaker.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Scoring.Delay)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("RDX_SNAPSHOT_BACKEND", "redis")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot backend")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "data_dir is required"},
		{"unknown backend", func(c *Config) { c.Snapshot.Backend = "s3" }, "invalid snapshot backend"},
		{"empty slot", func(c *Config) { c.Snapshot.Slot = " " }, "snapshot slot is required"},
		{"slot with separator", func(c *Config) { c.Snapshot.Slot = "../x" }, "invalid snapshot slot"},
		{"negative delay", func(c *Config) { c.Scoring.Delay = -time.Second }, "invalid scoring delay"},
		{"zero delay", func(c *Config) { c.Scoring.Delay = 0 }, ""},
		{"negative cache", func(c *Config) { c.Scoring.CacheSize = -1 }, "invalid scoring cache size"},
		{"negative breaker timeout", func(c *Config) { c.Snapshot.Breaker.Timeout = -time.Second }, "invalid breaker timeout"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Paths(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/home/user/.rare-disease-dx"
	cfg.Snapshot.Slot = "clinic"

	assert.Equal(t, "/home/user/.rare-disease-dx/session-clinic.json", cfg.SnapshotFilePath())
	assert.Equal(t, "/home/user/.rare-disease-dx/session.db", cfg.SnapshotDBPath())
	assert.Equal(t, "/home/user/.rare-disease-dx/exports", cfg.ExportDir())
}

func TestConfig_EnsureDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = filepath.Join(t.TempDir(), "nested", "data")

	// Act
	err := cfg.EnsureDataDir()

	// Assert
	require.NoError(t, err)
	info, err := os.Stat(cfg.ExportDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	jsonLogger := LoggingConfig{Level: "debug", Format: "json"}.NewLogger()
	assert.IsType(t, &logrus.JSONFormatter{}, jsonLogger.Formatter)
	assert.Equal(t, logrus.DebugLevel, jsonLogger.GetLevel())

	textLogger := LoggingConfig{Level: "nonsense", Format: "text"}.NewLogger()
	assert.IsType(t, &logrus.TextFormatter{}, textLogger.Formatter)
	assert.Equal(t, logrus.InfoLevel, textLogger.GetLevel())
}
