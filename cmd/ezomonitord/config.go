package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/moffa90/go-ezo/ezo"
)

type Config struct {
	Sensor  SensorConfig  `yaml:"sensor"`
	Log     LogConfig     `yaml:"log"`
	Monitor MonitorConfig `yaml:"monitor"`
}

type SensorConfig struct {
	// Bus is the periph bus name, e.g. "/dev/i2c-1"; empty selects the
	// first available bus.
	Bus             string `yaml:"bus"`
	Address         uint16 `yaml:"address"`
	IntervalSeconds int    `yaml:"interval_seconds"`
}

// Interval returns the poll interval as a duration.
func (c SensorConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MonitorConfig struct {
	Enabled     bool `yaml:"enabled"`
	MetricsPort int  `yaml:"metrics_port"`
}

// LoadConfig reads the yaml configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Sensor: SensorConfig{
			Bus:             "",
			Address:         ezo.DefaultAddress,
			IntervalSeconds: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Monitor: MonitorConfig{
			Enabled:     true,
			MetricsPort: 9090,
		},
	}
}
