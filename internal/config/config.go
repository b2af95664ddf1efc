package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDir     = ".lcdshot"
	configFile = "config.yaml"
	logFile    = "lcdshot.log"

	// TokenEnv overrides server.token when set, so the token can stay
	// out of the config file entirely.
	TokenEnv = "LCDSHOT_TOKEN"

	// DefaultQuietPeriodMS is the debounce window between the last
	// edit and the render request.
	DefaultQuietPeriodMS = 500
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Refresh RefreshConfig `mapstructure:"refresh" yaml:"refresh"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig points at the render service.
type ServerConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	Token   string `mapstructure:"token" yaml:"token"`
}

// RefreshConfig controls the live-preview debounce.
type RefreshConfig struct {
	QuietPeriodMS int `mapstructure:"quiet_period_ms" yaml:"quiet_period_ms"`
}

// LoggingConfig controls the session log.
type LoggingConfig struct {
	File string `mapstructure:"file" yaml:"file"`
	HTTP bool   `mapstructure:"http" yaml:"http"`
}

// QuietPeriod returns the debounce window as a duration.
func (c Config) QuietPeriod() time.Duration {
	ms := c.Refresh.QuietPeriodMS
	if ms <= 0 {
		ms = DefaultQuietPeriodMS
	}
	return time.Duration(ms) * time.Millisecond
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Server: ServerConfig{
			BaseURL: "http://127.0.0.1:5000",
			Token:   "",
		},
		Refresh: RefreshConfig{
			QuietPeriodMS: DefaultQuietPeriodMS,
		},
		Logging: LoggingConfig{
			File: filepath.Join(home, appDir, logFile),
			HTTP: true,
		},
	}, nil
}

// DefaultConfigPath returns ~/.lcdshot/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir, configFile), nil
}
