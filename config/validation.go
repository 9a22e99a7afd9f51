package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig rejects configurations the server cannot start with.
// Optional integrations (S3, Redis URL) are not validated here; their
// constructors fail on first use instead.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
		return fmt.Errorf("database host, name and user are required")
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT %q", cfg.DBPort)
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q", cfg.ServerPort)
	}
	return nil
}
