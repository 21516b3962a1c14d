package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/prompts"
	"github.com/jonathan/legal-template-agent/internal/synthesis"
	"github.com/jonathan/legal-template-agent/internal/types"
)

// MaxBasePromptExcerpt is the number of source characters embedded in the base prompt
const MaxBasePromptExcerpt = 1500

// BuildBasePrompt renders the unoptimized prompt used as input to optimization and as its fallback
func BuildBasePrompt(req *types.AgentCreationRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Você é um assistente jurídico especializado em %s (%s).\n\n",
		req.Classification.Area.DisplayName(), req.Classification.Subtype)

	if len(req.Sections) > 0 {
		sb.WriteString("ESTRUTURA DO DOCUMENTO:\n")
		for i, s := range req.Sections {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, s.Name)
		}
		sb.WriteString("\n")
	}

	if vars := synthesis.FilterVariables(req.Variables); len(vars) > 0 {
		sb.WriteString("VARIÁVEIS:\n")
		for _, v := range vars {
			fmt.Fprintf(&sb, "- %s (%s)\n", v.Name, v.Type)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("MODELO DE REFERÊNCIA:\n")
	sb.WriteString(truncateRunes(req.ExtractedText, MaxBasePromptExcerpt))
	sb.WriteString("\n")

	return sb.String()
}

// OptimizePrompt asks the LLM to rewrite basePrompt for the given identity and preferences.
// On failure or an empty answer the base prompt is returned unchanged.
func OptimizePrompt(ctx context.Context, client llm.Client, identity Identity, basePrompt string, prefs types.UserPreferences) Outcome[string] {
	if client == nil {
		return FallbackTo(basePrompt, ErrNoClient)
	}

	prompt := prompts.Render("agent.json", "optimize-prompt", map[string]string{
		"Name":        identity.Name,
		"Description": identity.Description,
		"Complexity":  string(prefs.Complexity),
		"Focus":       string(prefs.Focus),
		"Style":       string(prefs.Style),
		"BasePrompt":  basePrompt,
	})

	resp, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return FallbackTo(basePrompt, &OptimizationError{Message: "LLM call failed", Cause: err})
	}

	optimized := strings.TrimSpace(resp)
	if optimized == "" {
		return FallbackTo(basePrompt, &OptimizationError{Message: "empty response"})
	}
	return Ok(optimized)
}
