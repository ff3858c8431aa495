package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverFile     = "file"
)

// Config holds the process configuration, read from environment variables.
type Config struct {
	Port string `envconfig:"PORT" default:"3000"`

	// StorageDriver selects the backend: "postgres" or "file".
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	DataDir       string `envconfig:"DATA_DIR" default:"data"`

	UploadDir     string `envconfig:"UPLOAD_DIR" default:"uploads"`
	UploadBaseURL string `envconfig:"UPLOAD_BASE_URL" default:"/uploads"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	switch cfg.StorageDriver {
	case DriverPostgres, DriverFile:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required with the postgres driver")
	}
	return &cfg, nil
}
