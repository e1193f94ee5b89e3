/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package config loads the optional ipamup.yaml settings file. Every value
// has a default; the file only ever narrows or overrides them, and command
// line flags override the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked for when --config is not given
const DefaultFilename = "ipamup.yaml"

// Duration wraps time.Duration with YAML unmarshalling from strings
// such as "5s" or "1m30s"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Images holds the container image references for the three services
type Images struct {
	Database string `yaml:"database"`
	Web      string `yaml:"web"`
	Cron     string `yaml:"cron"`
}

// Probe holds the readiness gate tuning knobs
type Probe struct {
	Interval Duration `yaml:"interval"`
	Attempts int      `yaml:"attempts"`
}

// Config represents the resolved installer configuration
type Config struct {
	InstallDir   string `yaml:"install_dir"`
	HTTPPort     int    `yaml:"http_port"`
	Timezone     string `yaml:"timezone"`
	Images       Images `yaml:"images"`
	Probe        Probe  `yaml:"probe"`
	SkipFirewall bool   `yaml:"skip_firewall"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		InstallDir: "/opt/phpipam",
		HTTPPort:   80,
		Timezone:   "UTC",
		Images: Images{
			Database: "mariadb:10.11",
			Web:      "phpipam/phpipam-www:latest",
			Cron:     "phpipam/phpipam-cron:latest",
		},
		Probe: Probe{
			Interval: Duration(5 * time.Second),
			Attempts: 30,
		},
	}
}

// Load reads configuration from filename, layered over the defaults.
// A missing file is only an error when the operator named it explicitly;
// absence of the default ipamup.yaml means "use the defaults".
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) && filename == DefaultFilename {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.InstallDir == "" {
		return fmt.Errorf("install_dir must not be empty")
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port %d is out of range", c.HTTPPort)
	}
	if c.Images.Database == "" || c.Images.Web == "" || c.Images.Cron == "" {
		return fmt.Errorf("image references must not be empty")
	}
	if time.Duration(c.Probe.Interval) <= 0 {
		return fmt.Errorf("probe interval must be positive")
	}
	if c.Probe.Attempts < 1 {
		return fmt.Errorf("probe attempts must be at least 1")
	}
	return nil
}
