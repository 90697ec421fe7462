package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PAPERSHIFT_URL", "PAPERSHIFT_QUOTA_MINUTES", "PAPERSHIFT_COLOR",
		"PAPERSHIFT_LOG_LEVEL", "PAPERSHIFT_USER", "PAPERSHIFT_TOKEN",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), FileName))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, 480, cfg.QuotaMinutes)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
base_url = "https://example.test/api/"
quota_minutes = 420
color = false
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.test/api/", cfg.BaseURL)
	assert.Equal(t, 420, cfg.QuotaMinutes)
	assert.False(t, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `quota_minutes = 420`)
	t.Setenv("PAPERSHIFT_QUOTA_MINUTES", "300")
	t.Setenv("PAPERSHIFT_USER", "42")
	t.Setenv("PAPERSHIFT_TOKEN", "secret")
	t.Setenv("PAPERSHIFT_LOG_LEVEL", "debug")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 300, cfg.QuotaMinutes)
	assert.Equal(t, "42", cfg.EnvCredentials().UserID)
	assert.Equal(t, "secret", cfg.EnvCredentials().APIToken)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `quota_minutes = "eight hours"`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAPERSHIFT_QUOTA_MINUTES", "lots")

	_, err := Load(filepath.Join(t.TempDir(), FileName))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero quota", func(c *Config) { c.QuotaMinutes = 0 }, false},
		{"negative quota", func(c *Config) { c.QuotaMinutes = -1 }, true},
		{"relative url", func(c *Config) { c.BaseURL = "/public_api/v1/" }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
