package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config dir and working directory at an empty
// temp dir so the developer's own config and .env never leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, 1024, cfg.Calculator.MaxLength)
	assert.Equal(t, 64, cfg.Calculator.MaxDepth)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "textkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
log_level: DEBUG
history_limit: 25
calculator:
  max_depth: 8
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, 8, cfg.Calculator.MaxDepth)
	assert.Equal(t, 1024, cfg.Calculator.MaxLength)
}

func TestLoad_DefaultDirFile(t *testing.T) {
	isolate(t)
	base, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "textkit"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "textkit", "config.yaml"),
		[]byte("history_limit: 4\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.HistoryLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTKIT_HISTORY_LIMIT", "3")
	t.Setenv("TEXTKIT_CALCULATOR_MAX_LENGTH", "99")
	t.Setenv("TEXTKIT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.HistoryLimit)
	assert.Equal(t, 99, cfg.Calculator.MaxLength)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("TEXTKIT_HISTORY_LIMIT=7\n"), 0o644))
	// godotenv sets real env vars; make sure they are cleaned up afterwards.
	t.Setenv("TEXTKIT_HISTORY_LIMIT", "")
	require.NoError(t, os.Unsetenv("TEXTKIT_HISTORY_LIMIT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.HistoryLimit)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", HistoryLimit: 10, Calculator: CalculatorConfig{MaxLength: 1, MaxDepth: 1}}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"history", func(c *Config) { c.HistoryLimit = 0 }},
		{"max length", func(c *Config) { c.Calculator.MaxLength = -1 }},
		{"max depth", func(c *Config) { c.Calculator.MaxDepth = 0 }},
		{"log level", func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		cfg := valid
		tt.mutate(&cfg)
		assert.Error(t, cfg.Validate(), tt.name)
	}
}
