package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/addnl/internal/prepend"
)

// Config represents addnl configuration options
type Config struct {
	// Newline selects the line terminator inserted by a run (lf, crlf, system)
	Newline string `yaml:"newline"`

	// Extensions is the filename-suffix allow-list for candidate selection.
	// Matching is case-insensitive.
	Extensions []string `yaml:"extensions"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ReportPath, when non-empty, is where the YAML run report is written.
	// Empty disables the report entirely.
	ReportPath string `yaml:"report_path"`
}

// DefaultConfig returns a Config with sensible default values.
// The defaults reproduce the tool's stock behavior: system newline,
// .txt/.md allow-list, info-level logging, no run report.
func DefaultConfig() *Config {
	return &Config{
		Newline:    string(prepend.PolicySystem),
		Extensions: append([]string(nil), prepend.DefaultExtensions...),
		LogLevel:   "info",
		ReportPath: "",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Newline != "" {
		cfg.Newline = fileCfg.Newline
	}
	if len(fileCfg.Extensions) > 0 {
		cfg.Extensions = fileCfg.Extensions
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.ReportPath != "" {
		cfg.ReportPath = fileCfg.ReportPath
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .addnl/config.yaml in the
// specified directory. If the directory or file doesn't exist, returns
// default configuration without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".addnl", "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values, allowing CLI flags to
// take precedence over config file settings.
func (c *Config) MergeWithFlags(newline *string, extensions *[]string, logLevel *string, reportPath *string) {
	if newline != nil {
		c.Newline = *newline
	}
	if extensions != nil {
		c.Extensions = *extensions
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if reportPath != nil {
		c.ReportPath = *reportPath
	}
}

// Validate validates the configuration values.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	if _, err := prepend.ParsePolicy(c.Newline); err != nil {
		return err
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("invalid extension %q in allow-list", ext)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// Policy returns the parsed newline policy. Call Validate first; an
// unparseable value falls back to the system default.
func (c *Config) Policy() prepend.Policy {
	policy, err := prepend.ParsePolicy(c.Newline)
	if err != nil {
		return prepend.PolicySystem
	}
	return policy
}
