package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"papershift/credential"
	"papershift/papershift"
	"papershift/session"
)

const FileName = "config.toml"

type Config struct {
	BaseURL      string `toml:"base_url" env:"PAPERSHIFT_URL"`
	QuotaMinutes int    `toml:"quota_minutes" env:"PAPERSHIFT_QUOTA_MINUTES"`
	Color        bool   `toml:"color" env:"PAPERSHIFT_COLOR"`
	LogLevel     string `toml:"log_level" env:"PAPERSHIFT_LOG_LEVEL"`

	// Credentials only come from the environment; the file may be shared.
	UserID   string `toml:"-" env:"PAPERSHIFT_USER"`
	APIToken string `toml:"-" env:"PAPERSHIFT_TOKEN"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:      papershift.DefaultBaseURL,
		QuotaMinutes: session.DefaultQuotaMinutes,
		Color:        true,
		LogLevel:     "info",
	}
}

// Load layers the defaults, the TOML file at path (if it exists) and the
// environment, in that order.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("environment variables are invalid: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url is invalid: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute url, got %q", c.BaseURL)
	}
	if c.QuotaMinutes < 0 {
		return fmt.Errorf("quota_minutes must not be negative, got %d", c.QuotaMinutes)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level is invalid: %w", err)
	}
	return level, nil
}

func (c *Config) EnvCredentials() credential.Credentials {
	return credential.Credentials{UserID: c.UserID, APIToken: c.APIToken}
}
