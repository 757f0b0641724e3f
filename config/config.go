package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Logging LoggingConfig
	Storage StorageConfig
}

type AppConfig struct {
	Env string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

// StorageConfig selects the key-value store that backs the two form slots
type StorageConfig struct {
	Driver string
	Path   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("STORAGE_DRIVER", StorageDriverSQLite)
	v.SetDefault("STORAGE_PATH", "coursemind.db")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("APP_ENV"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
			Path:   v.GetString("STORAGE_PATH"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("STORAGE_PATH is required for the sqlite driver")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Logging.Level == "" {
		return fmt.Errorf("LOG_LEVEL is required")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
