// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/types"
)

// DefaultMaxFileSizeMB bounds uploaded templates when the config does not
const DefaultMaxFileSizeMB = 50

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`

	// Agent preferences applied when not given on the command line
	Preferences types.UserPreferences `json:"preferences"`

	MaxFileSizeMB int `json:"max_file_size_mb,omitempty"`

	// Models overrides the model per tier, keyed by "lite", "standard" or "advanced"
	Models map[string]string `json:"models,omitempty"`
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
// Required fields are checked by the CLI after merging.
func (c *Config) Validate() error {
	if c.MaxFileSizeMB < 0 {
		return fmt.Errorf("config error: 'max_file_size_mb' must be non-negative")
	}
	if c.MaxFileSizeMB > DefaultMaxFileSizeMB {
		return fmt.Errorf("config error: 'max_file_size_mb' cannot exceed %d", DefaultMaxFileSizeMB)
	}

	if err := c.Preferences.Validate(); err != nil {
		return fmt.Errorf("config error: invalid preferences: %w", err)
	}

	for tier := range c.Models {
		switch llm.ModelTier(tier) {
		case llm.TierLite, llm.TierStandard, llm.TierAdvanced:
		default:
			return fmt.Errorf("config error: unknown model tier %q", tier)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Preferences.Complexity == "" {
		result.Preferences.Complexity = defaults.Preferences.Complexity
	}
	if result.Preferences.Focus == "" {
		result.Preferences.Focus = defaults.Preferences.Focus
	}
	if result.Preferences.Style == "" {
		result.Preferences.Style = defaults.Preferences.Style
	}

	if result.MaxFileSizeMB == 0 {
		if defaults.MaxFileSizeMB > 0 {
			result.MaxFileSizeMB = defaults.MaxFileSizeMB
		} else {
			result.MaxFileSizeMB = DefaultMaxFileSizeMB
		}
	}

	if len(defaults.Models) > 0 {
		models := make(map[string]string, len(defaults.Models)+len(result.Models))
		for tier, model := range defaults.Models {
			models[tier] = model
		}
		for tier, model := range result.Models {
			models[tier] = model
		}
		result.Models = models
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig builds the LLM configuration with this config's model overrides applied
func (c *Config) LLMConfig() *llm.Config {
	return llm.DefaultConfig().WithOverrides(c.Models)
}

// MaxFileSizeBytes returns the effective upload limit in bytes
func (c *Config) MaxFileSizeBytes() int {
	mb := c.MaxFileSizeMB
	if mb <= 0 {
		mb = DefaultMaxFileSizeMB
	}
	return mb * 1024 * 1024
}
