// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Document string `json:"document,omitempty"` // Path to the CV document JSON file
	Secrets  string `json:"secrets,omitempty"`  // Directory holding the encrypted secret store
	Output   string `json:"output,omitempty"`   // Output path for export commands

	// Rendering
	Template string `json:"template,omitempty"` // Template id (simple, modern, selenite)
	Paper    string `json:"paper,omitempty"`    // Paper size: a4 or letter

	// Server
	Addr string `json:"addr,omitempty"` // Listen address for serve mode

	// Behavior
	AutosaveDelayMS int  `json:"autosave_delay_ms,omitempty"` // Debounce window for autosave, milliseconds
	PreviewDelayMS  int  `json:"preview_delay_ms,omitempty"`  // Debounce window for preview renders, milliseconds
	Verbose         bool `json:"verbose,omitempty"`           // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Paper != "" && c.Paper != "a4" && c.Paper != "letter" {
		return fmt.Errorf("config error: 'paper' must be a4 or letter, got %q", c.Paper)
	}
	if c.AutosaveDelayMS < 0 {
		return fmt.Errorf("config error: 'autosave_delay_ms' must be non-negative")
	}
	if c.PreviewDelayMS < 0 {
		return fmt.Errorf("config error: 'preview_delay_ms' must be non-negative")
	}
	if c.Document != "" {
		dir := filepath.Dir(c.Document)
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: document directory is not a directory: %s", dir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Secrets == "" {
		result.Secrets = defaults.Secrets
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Paper == "" {
		result.Paper = defaults.Paper
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	// Int fields: use default if zero
	if result.AutosaveDelayMS == 0 {
		result.AutosaveDelayMS = defaults.AutosaveDelayMS
	}
	if result.PreviewDelayMS == 0 {
		result.PreviewDelayMS = defaults.PreviewDelayMS
	}

	// Bool fields: true wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// AutosaveDelay converts the configured window to a duration; zero
// means "use the package default".
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

// PreviewDelay converts the configured window to a duration; zero
// means "use the package default".
func (c *Config) PreviewDelay() time.Duration {
	return time.Duration(c.PreviewDelayMS) * time.Millisecond
}
