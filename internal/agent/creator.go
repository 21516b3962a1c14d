// Package agent turns a processed template into a specialized agent definition,
// using an LLM for naming and prompt optimization with deterministic fallbacks.
package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/types"
)

// Creator builds agent definitions. Client may be nil, in which case every
// LLM-backed step uses its fallback.
type Creator struct {
	Client llm.Client
	Logger *zap.Logger
}

// NewCreator creates a Creator; a nil logger is replaced by a no-op logger
func NewCreator(client llm.Client, logger *zap.Logger) *Creator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Creator{Client: client, Logger: logger}
}

// CreateAgent derives the agent definition for req. It never fails: LLM errors
// are absorbed into fallbacks and logged at warn level.
func (c *Creator) CreateAgent(ctx context.Context, req *types.AgentCreationRequest) types.AgentCreationResult {
	logger := c.logger()

	if err := req.Validate(); err != nil {
		logger.Warn("agent creation request failed validation", zap.Error(err))
	}
	prefs := req.Preferences.WithDefaults()
	if err := prefs.Validate(); err != nil {
		prefs = types.DefaultPreferences()
	}

	identity := GenerateIdentity(ctx, c.Client, req)
	if identity.Fallback {
		logger.Warn("using fallback agent identity",
			zap.String("area", string(req.Classification.Area)),
			zap.Error(identity.Err))
	}

	basePrompt := BuildBasePrompt(req)
	optimized := OptimizePrompt(ctx, c.Client, identity.Value, basePrompt, prefs)
	if optimized.Fallback {
		logger.Warn("using base prompt without optimization", zap.Error(optimized.Err))
	}

	result := types.AgentCreationResult{
		SuggestedName:        identity.Value.Name,
		SuggestedDescription: identity.Value.Description,
		OptimizedPrompt:      optimized.Value,
		Specializations:      Specializations(req),
		ConfidenceScore:      ConfidenceScore(req),
		Recommendations:      Recommendations(req),
	}

	logger.Debug("agent created",
		zap.String("name", result.SuggestedName),
		zap.Int("confidence", result.ConfidenceScore),
		zap.Bool("identity_fallback", identity.Fallback),
		zap.Bool("prompt_fallback", optimized.Fallback))

	return result
}

func (c *Creator) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
