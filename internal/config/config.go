// Package config provides environment-based configuration for the matcher.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// SMTP holds mail-submission settings. Delivery uses implicit TLS on the
// configured port with plain authentication.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config holds all runtime settings, loaded from the environment. A .env file
// is honored when present (loaded by the CLI entry point).
type Config struct {
	DatabaseURL string
	Port        int
	APIKey      string
	ReportDir   string
	SMTP        SMTP
}

// Load reads configuration from environment variables, applying defaults for
// optional values.
func Load() *Config {
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        envInt("PORT", 8080),
		APIKey:      os.Getenv("API_KEY"),
		ReportDir:   envDefault("REPORT_DIR", "."),
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 465),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}
}

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	return nil
}

// Validate checks the settings mail delivery needs.
func (s SMTP) Validate() error {
	if s.Host == "" {
		return fmt.Errorf("SMTP_HOST environment variable is required")
	}
	if s.From == "" {
		return fmt.Errorf("SMTP_FROM environment variable is required")
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
