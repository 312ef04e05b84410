// Package config handles exporter configuration loading from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the goecharger exporter.
type Config struct {
	// Charger device
	ChargerHost string

	// Server configuration
	ListenAddr     string
	RequestTimeout time.Duration

	// Logging configuration
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Set defaults
		ListenAddr:     ":9840",
		RequestTimeout: 10 * time.Second,
		LogLevel:       "info",
		LogFormat:      "text",
	}

	cfg.ChargerHost = os.Getenv("GOE_CHARGER_HOST")

	// Override defaults from environment variables
	if addr := os.Getenv("GOE_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if level := os.Getenv("GOE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if format := os.Getenv("GOE_LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	if timeout := os.Getenv("GOE_REQUEST_TIMEOUT"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.ChargerHost == "" {
		return errors.New("charger host is required (set GOE_CHARGER_HOST)")
	}
	if c.RequestTimeout < time.Second {
		return errors.New("request timeout must be at least 1 second")
	}
	return nil
}
