// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Client modes selecting the active API client implementation.
const (
	ModeMock   = "mock"
	ModeRemote = "remote"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	ClientMode         string `mapstructure:"CLIENT_MODE"`
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	TokenFile          string `mapstructure:"TOKEN_FILE"`
	MockLatency        bool   `mapstructure:"MOCK_LATENCY"`
	Port               string `mapstructure:"PORT"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	Env                string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults are
	// enough to run.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			log.Printf("No profile-specific configuration config.%s.yml, using base values", env)
		}
	}

	viper.SetDefault("CLIENT_MODE", ModeMock)
	viper.SetDefault("API_BASE_URL", "")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("TOKEN_FILE", defaultTokenFile())
	viper.SetDefault("MOCK_LATENCY", true)
	viper.SetDefault("PORT", "8375")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-in-production")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and consistent.
func (c *Config) Validate() error {
	if c.ClientMode != ModeMock && c.ClientMode != ModeRemote {
		return fmt.Errorf("CLIENT_MODE must be %q or %q, got %q", ModeMock, ModeRemote, c.ClientMode)
	}
	if c.ClientMode == ModeRemote && c.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required when CLIENT_MODE is remote")
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.JWTSecret == "dev-secret-change-in-production" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
	}

	return nil
}

// defaultTokenFile places the persistent token under the user config
// directory, falling back to the working directory when it is unavailable.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".vitalog-auth.yml"
	}
	return filepath.Join(dir, "vitalog", "auth.yml")
}
