package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"defaults are valid", func(_ *Config) {}, false},
		{"unknown client mode", func(c *Config) { c.ClientMode = "hybrid" }, true},
		{"remote without base URL", func(c *Config) { c.ClientMode = ModeRemote; c.APIBaseURL = "" }, true},
		{"remote with base URL", func(c *Config) { c.ClientMode = ModeRemote; c.APIBaseURL = "http://localhost:8375" }, false},
		{"zero timeout", func(c *Config) { c.HTTPTimeoutSeconds = 0 }, true},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"production with default secret", func(c *Config) { c.Env = "production" }, true},
		{"production with short secret", func(c *Config) { c.Env = "prod"; c.JWTSecret = "short" }, true},
		{"production with strong secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "secure-secret-at-least-32-chars-long"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				ClientMode:         ModeMock,
				HTTPTimeoutSeconds: 30,
				TokenFile:          "auth.yml",
				Port:               "8375",
				JWTSecret:          "dev-secret-change-in-production",
				Env:                "development",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ModeMock, c.ClientMode)
	assert.Equal(t, 30, c.HTTPTimeoutSeconds)
	assert.True(t, c.MockLatency)
	assert.NotEmpty(t, c.TokenFile)
	assert.NotEmpty(t, c.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("CLIENT_MODE")
	defer os.Unsetenv("API_BASE_URL")
	defer viper.Reset()

	os.Setenv("CLIENT_MODE", "remote")
	os.Setenv("API_BASE_URL", "http://localhost:9000")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ModeRemote, c.ClientMode)
	assert.Equal(t, "http://localhost:9000", c.APIBaseURL)
}
