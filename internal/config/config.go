// Package config reads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/napolitain/bulkbuild/internal/logger"
)

// Environment variable names
const (
	EnvLogLevel  = "BULKBUILD_LOG_LEVEL"
	EnvLogFormat = "BULKBUILD_LOG_FORMAT"
	EnvGame      = "BULKBUILD_GAME"
	EnvSettings  = "BULKBUILD_SETTINGS"
)

// Defaults
const (
	DefaultGamePath     = "data/game.json"
	DefaultSettingsPath = "data/settings.yaml"
)

// Config holds the application configuration
type Config struct {
	LogLevel     string
	LogFormat    string
	GamePath     string
	SettingsPath string
}

// Load loads the configuration from environment variables, after reading
// a .env file in the working directory if there is one
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, "info"),
		LogFormat:    strings.ToLower(getEnv(EnvLogFormat, logger.FormatText)),
		GamePath:     getEnv(EnvGame, DefaultGamePath),
		SettingsPath: getEnv(EnvSettings, DefaultSettingsPath),
	}

	if cfg.LogFormat != logger.FormatText && cfg.LogFormat != logger.FormatJSON {
		return nil, fmt.Errorf("invalid %s value %q: want text or json", EnvLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Format = c.LogFormat
	return lc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
