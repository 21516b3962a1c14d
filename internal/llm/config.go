// Package llm provides the generative-text client used for agent naming and prompt optimization.
// Models and generation parameters are configured per tier so callers only pick a tier.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short structured answers such as naming an agent
	TierLite ModelTier = "lite"
	// TierStandard is for moderate rewriting
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form prompt optimization
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// GenerationParams are the sampling parameters sent with every request of a tier
type GenerationParams struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int32   `json:"max_output_tokens"`
}

// defaultParams is used for tiers without explicit parameters
var defaultParams = GenerationParams{Temperature: 0.1, MaxOutputTokens: 2048}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	Params   map[ModelTier]GenerationParams
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Params: map[ModelTier]GenerationParams{
			TierLite:     {Temperature: 0.7, MaxOutputTokens: 500},
			TierStandard: {Temperature: 0.3, MaxOutputTokens: 2048},
			TierAdvanced: {Temperature: 0.3, MaxOutputTokens: 4000},
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// GetParams returns the generation parameters for a tier, or the package defaults
func (c *Config) GetParams(tier ModelTier) GenerationParams {
	if params, ok := c.Params[tier]; ok {
		return params
	}
	return defaultParams
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := c.clone()
	newConfig.Models[tier] = model
	return newConfig
}

// WithParams returns a new Config with specific generation parameters for a tier
func (c *Config) WithParams(tier ModelTier, params GenerationParams) *Config {
	newConfig := c.clone()
	newConfig.Params[tier] = params
	return newConfig
}

// WithOverrides applies tier→model overrides keyed by tier name, ignoring empty values
func (c *Config) WithOverrides(models map[string]string) *Config {
	newConfig := c.clone()
	for tier, model := range models {
		if model != "" {
			newConfig.Models[ModelTier(tier)] = model
		}
	}
	return newConfig
}

func (c *Config) clone() *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)),
		Params:   make(map[ModelTier]GenerationParams, len(c.Params)),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	for k, v := range c.Params {
		newConfig.Params[k] = v
	}
	return newConfig
}
