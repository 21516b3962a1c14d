package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_key": "test-key",
		"database_url": "postgres://localhost/agents",
		"verbose": true,
		"preferences": {"complexity": "advanced", "style": "technical"},
		"max_file_size_mb": 10,
		"models": {"lite": "gemini-custom-lite"}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/agents", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, types.ComplexityAdvanced, cfg.Preferences.Complexity)
	assert.Equal(t, types.StyleTechnical, cfg.Preferences.Style)
	assert.Empty(t, cfg.Preferences.Focus)
	assert.Equal(t, 10, cfg.MaxFileSizeMB)
	assert.Equal(t, "gemini-custom-lite", cfg.Models["lite"])
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"negative size", Config{MaxFileSizeMB: -1}, "must be non-negative"},
		{"size above limit", Config{MaxFileSizeMB: 51}, "cannot exceed"},
		{"bad complexity", Config{Preferences: types.UserPreferences{Complexity: "extreme"}}, "invalid preferences"},
		{"bad style", Config{Preferences: types.UserPreferences{Style: "casual"}}, "invalid preferences"},
		{"unknown tier", Config{Models: map[string]string{"ultra": "m"}}, "unknown model tier"},
		{"known tiers", Config{Models: map[string]string{"lite": "a", "advanced": "b"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		APIKey:      "flag-key",
		Preferences: types.UserPreferences{Focus: types.FocusSpeed},
		Models:      map[string]string{"lite": "flag-model"},
	}
	defaults := Config{
		APIKey:      "file-key",
		DatabaseURL: "postgres://file",
		Preferences: types.UserPreferences{Complexity: types.ComplexityBasic, Focus: types.FocusDetail},
		Models:      map[string]string{"lite": "file-lite", "advanced": "file-advanced"},
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "flag-key", merged.APIKey)
	assert.Equal(t, "postgres://file", merged.DatabaseURL)
	assert.Equal(t, types.ComplexityBasic, merged.Preferences.Complexity)
	assert.Equal(t, types.FocusSpeed, merged.Preferences.Focus)
	assert.Empty(t, merged.Preferences.Style)
	assert.Equal(t, DefaultMaxFileSizeMB, merged.MaxFileSizeMB)
	assert.Equal(t, map[string]string{"lite": "flag-model", "advanced": "file-advanced"}, merged.Models)
	assert.Equal(t, map[string]string{"lite": "flag-model"}, cfg.Models, "receiver is not modified")
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{Models: map[string]string{"advanced": "custom-advanced"}}

	llmCfg := cfg.LLMConfig()

	assert.Equal(t, "custom-advanced", llmCfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), llmCfg.GetModel(llm.TierLite))
}

func TestMaxFileSizeBytes(t *testing.T) {
	assert.Equal(t, 50*1024*1024, (&Config{}).MaxFileSizeBytes())
	assert.Equal(t, 2*1024*1024, (&Config{MaxFileSizeMB: 2}).MaxFileSizeBytes())
}
