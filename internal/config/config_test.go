package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_EnvVars(t *testing.T) {
	// Set test environment variables
	os.Setenv("GOE_CHARGER_HOST", "192.168.1.42")
	os.Setenv("GOE_ADDR", ":9999")
	os.Setenv("GOE_LOG_LEVEL", "debug")
	os.Setenv("GOE_LOG_FORMAT", "json")
	os.Setenv("GOE_REQUEST_TIMEOUT", "30")
	defer func() {
		os.Unsetenv("GOE_CHARGER_HOST")
		os.Unsetenv("GOE_ADDR")
		os.Unsetenv("GOE_LOG_LEVEL")
		os.Unsetenv("GOE_LOG_FORMAT")
		os.Unsetenv("GOE_REQUEST_TIMEOUT")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ChargerHost != "192.168.1.42" {
		t.Errorf("ChargerHost = %v, want 192.168.1.42", cfg.ChargerHost)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %v, want :9999", cfg.ListenAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %v, want json", cfg.LogFormat)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear any existing env vars
	os.Unsetenv("GOE_ADDR")
	os.Unsetenv("GOE_LOG_LEVEL")
	os.Unsetenv("GOE_LOG_FORMAT")
	os.Unsetenv("GOE_REQUEST_TIMEOUT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ListenAddr != ":9840" {
		t.Errorf("ListenAddr = %v, want :9840", cfg.ListenAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
}

func TestValidate_MissingHost(t *testing.T) {
	cfg := &Config{
		RequestTimeout: 10 * time.Second,
	}

	err := cfg.Validate()
	if err == nil {
		t.Error("Validate() expected error for missing charger host, got nil")
	}
}

func TestValidate_InvalidTimeout(t *testing.T) {
	cfg := &Config{
		ChargerHost:    "192.168.1.42",
		RequestTimeout: 500 * time.Millisecond,
	}

	err := cfg.Validate()
	if err == nil {
		t.Error("Validate() expected error for timeout < 1s, got nil")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{
		ChargerHost:    "192.168.1.42",
		RequestTimeout: 10 * time.Second,
	}

	err := cfg.Validate()
	if err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}
