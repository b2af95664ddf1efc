package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the provided path. If path is empty,
// uses DefaultConfigPath. A missing file is not an error; defaults
// apply and LCDSHOT_TOKEN still overrides the token.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("server.base_url", cfg.Server.BaseURL)
	v.SetDefault("server.token", cfg.Server.Token)
	v.SetDefault("refresh.quiet_period_ms", cfg.Refresh.QuietPeriodMS)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.http", cfg.Logging.HTTP)

	if err := v.ReadInConfig(); err != nil {
		// SetConfigFile makes viper surface a missing file as a plain
		// path error rather than ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	expandConfigEnv(&cfg)
	if token := os.Getenv(TokenEnv); token != "" {
		cfg.Server.Token = token
	}
	return cfg, nil
}

func expandConfigEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Server.BaseURL = expandEnv(cfg.Server.BaseURL)
	cfg.Server.Token = expandEnv(cfg.Server.Token)
	cfg.Logging.File = expandEnv(cfg.Logging.File)
}

// expandEnv substitutes $VAR references, leaving unknown variables in
// place so a typo is visible instead of silently blanked.
func expandEnv(value string) string {
	if value == "" {
		return value
	}
	return os.Expand(value, func(key string) string {
		if key == "" {
			return ""
		}
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		return "$" + key
	})
}

// WriteDefault writes the default config to the target path.
func WriteDefault(path string, overwrite bool) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config already exists at %s", path)
		}
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
