// Package bridge publishes charger state to Home Assistant over MQTT and
// dispatches set commands back to the device.
package bridge

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Config holds the MQTT bridge configuration.
type Config struct {
	MQTT struct {
		Host     string `ini:"host"`
		Port     int    `ini:"port"`
		Username string `ini:"username"`
		Password string `ini:"password"`
	} `ini:"mqtt"`

	Charger struct {
		Host           string `ini:"host"`
		TimeoutSeconds int    `ini:"timeout_seconds"`
	} `ini:"charger"`

	Settings struct {
		DeviceName             string `ini:"device_name"`
		PollingIntervalSeconds int    `ini:"polling_interval_seconds"`
	} `ini:"settings"`
}

// LoadConfig reads the bridge configuration from an ini file.
func LoadConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	cfg := &Config{}

	// Defaults, overridden by the file
	cfg.MQTT.Port = 1883
	cfg.Charger.TimeoutSeconds = 3
	cfg.Settings.DeviceName = "go-eCharger"
	cfg.Settings.PollingIntervalSeconds = 5

	if err := file.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.MQTT.Host == "" {
		return nil, fmt.Errorf("config %q: mqtt host is required", path)
	}
	if cfg.Charger.Host == "" {
		return nil, fmt.Errorf("config %q: charger host is required", path)
	}

	return cfg, nil
}

// PollingInterval returns the poll interval as a duration.
func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.Settings.PollingIntervalSeconds) * time.Second
}

// ChargerTimeout returns the device request timeout as a duration.
func (c *Config) ChargerTimeout() time.Duration {
	return time.Duration(c.Charger.TimeoutSeconds) * time.Second
}
