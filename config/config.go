package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zentry/appicon/icon"
	"gopkg.in/yaml.v3"
)

// Config represents the complete icon build configuration
type Config struct {
	Design  icon.Design   `json:"design" yaml:"design"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// OutputConfig says where artifacts are written
type OutputConfig struct {
	Path     string `json:"path" yaml:"path"`
	ICO      string `json:"ico,omitempty" yaml:"ico,omitempty"`
	ICOSizes []int  `json:"ico_sizes,omitempty" yaml:"ico_sizes,omitempty"`
}

// JournalConfig contains render journaling parameters
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LogConfig contains logger parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// DefaultOutput is where the icon lands when nothing else is configured.
const DefaultOutput = "assets/icon.png"

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Keys missing from the file keep their Default() values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Design.Validate(); err != nil {
		return err
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	for _, s := range c.Output.ICOSizes {
		if s < 1 || s > 256 {
			return fmt.Errorf("output.ico_sizes must be between 1 and 256 (got %d)", s)
		}
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s type", c.Journal.Type)
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// ICOSizes returns the configured ICO sizes or the defaults.
func (c *Config) ICOSizes() []int {
	if len(c.Output.ICOSizes) == 0 {
		return icon.DefaultICOSizes
	}
	return c.Output.ICOSizes
}

// Default returns the configuration that reproduces the shipped icon
func Default() *Config {
	return &Config{
		Design: icon.DefaultDesign(),
		Output: OutputConfig{
			Path: DefaultOutput,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
