package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	LogLevel string
}

type StorageConfig struct {
	Path string
}

// AdminConfig carries the shared admin secret. A single static credential
// is a stand-in, not an auth system; PasswordHash takes precedence over
// Password when both are set.
type AdminConfig struct {
	Password     string
	PasswordHash string
}

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Admin   AdminConfig
}

func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	cfg.App.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}

	cfg.Storage.Path = os.Getenv("DATA_PATH")
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "storefront.db"
	}

	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.Admin.PasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		cfg.Admin.Password = "admin123"
	}

	return cfg, nil
}
