/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openband/bandwire/pkg/band"
)

// Config represents the bandwire tool configuration
type Config struct {
	CapturesDir string  `yaml:"captures_dir"`
	Records     Records `yaml:"records"`
	Logging     Logging `yaml:"logging"`
}

// Records contains the tunable record-layout settings
type Records struct {
	// ProfileSize overrides the declared Profile wire size for capture
	// verification runs.
	ProfileSize int `yaml:"profile_size"`

	// Weekday selects the DayOfWeek numbering: "sunday" or "monday".
	Weekday string `yaml:"weekday"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CapturesDir: "./captures",
		Records: Records{
			ProfileSize: band.DefaultProfileSize,
			Weekday:     "sunday",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the tool cannot run with
func (c *Config) Validate() error {
	if c.Records.ProfileSize < profileFixedMinimum {
		return fmt.Errorf("records.profile_size %d is below the fixed field total %d",
			c.Records.ProfileSize, profileFixedMinimum)
	}
	switch c.Records.Weekday {
	case "sunday", "monday":
	default:
		return fmt.Errorf("records.weekday must be \"sunday\" or \"monday\", got %q", c.Records.Weekday)
	}
	return nil
}

// profileFixedMinimum is the byte total of the Profile's fixed fields
// at the highest known version; any declared size below it cannot hold
// a record.
const profileFixedMinimum = 142

// WeekdayConvention maps the configured weekday setting to the codec
// convention
func (c *Config) WeekdayConvention() band.WeekdayConvention {
	if c.Records.Weekday == "monday" {
		return band.WeekdayMondayZero
	}
	return band.WeekdaySundayZero
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./bandwire.yaml"
	}

	configDir := filepath.Join(homeDir, ".config", "bandwire")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
