package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// TEXTKIT_HISTORY_LIMIT or TEXTKIT_CALCULATOR_MAX_DEPTH.
const EnvPrefix = "TEXTKIT"

// Config holds all application configuration.
type Config struct {
	Environment  string           `mapstructure:"environment"`
	LogLevel     string           `mapstructure:"log_level"`
	LogFile      string           `mapstructure:"log_file"`
	HistoryLimit int              `mapstructure:"history_limit"`
	Calculator   CalculatorConfig `mapstructure:"calculator"`
}

// CalculatorConfig bounds the cost of evaluating one expression.
type CalculatorConfig struct {
	MaxLength int `mapstructure:"max_length"`
	MaxDepth  int `mapstructure:"max_depth"`
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Load reads configuration from, in increasing priority: defaults, the
// config file, a .env file and TEXTKIT_* environment variables. An empty
// path falls back to $XDG_CONFIG_HOME/textkit/config.yaml, which may be
// absent.
func Load(path string) (Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("history_limit", 10)
	v.SetDefault("calculator.max_length", 1024)
	v.SetDefault("calculator.max_depth", 64)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if dir := defaultDir(); dir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFile = os.ExpandEnv(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks that limits are usable and the log level is known.
func (c *Config) Validate() error {
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.Calculator.MaxLength <= 0 {
		return fmt.Errorf("calculator.max_length must be positive, got %d", c.Calculator.MaxLength)
	}
	if c.Calculator.MaxDepth <= 0 {
		return fmt.Errorf("calculator.max_depth must be positive, got %d", c.Calculator.MaxDepth)
	}
	for _, l := range validLevels {
		if c.LogLevel == l {
			return nil
		}
	}
	return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(validLevels, ", "), c.LogLevel)
}

// IsProduction reports whether the production logging profile applies.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "textkit")
}
