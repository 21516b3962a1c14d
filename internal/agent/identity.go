package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/prompts"
	"github.com/jonathan/legal-template-agent/internal/schemas"
	"github.com/jonathan/legal-template-agent/internal/types"
)

// Identity is the suggested name and description of an agent
type Identity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

const identitySchema = `{
  "type": "object",
  "required": ["name", "description"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string", "minLength": 1}
  }
}`

// fallbackNames is the fixed agent name per legal area
var fallbackNames = map[types.LegalArea]string{
	types.AreaCivil:       "Especialista Cível",
	types.AreaTrabalhista: "Especialista Trabalhista",
	types.AreaCriminal:    "Especialista Criminal",
	types.AreaTributario:  "Especialista Tributário",
	types.AreaFamilia:     "Especialista em Família",
	types.AreaEmpresarial: "Especialista Empresarial",
}

const defaultFallbackName = "Assistente Jurídico"

// GenerateIdentity asks the LLM for an agent name and description.
// Any failure yields the deterministic identity for the classified area.
func GenerateIdentity(ctx context.Context, client llm.Client, req *types.AgentCreationRequest) Outcome[Identity] {
	if client == nil {
		return FallbackTo(FallbackIdentity(req.Classification), ErrNoClient)
	}

	resp, err := client.GenerateJSON(ctx, buildIdentityPrompt(req), llm.TierLite)
	if err != nil {
		return FallbackTo(FallbackIdentity(req.Classification), &IdentityError{Message: "LLM call failed", Cause: err})
	}

	identity, err := parseIdentity(resp)
	if err != nil {
		return FallbackTo(FallbackIdentity(req.Classification), err)
	}
	return Ok(identity)
}

// parseIdentity validates and decodes an identity response, enforcing length limits
func parseIdentity(resp string) (Identity, error) {
	cleaned := llm.CleanJSONBlock(resp)
	if err := schemas.ValidateJSONString(identitySchema, cleaned); err != nil {
		return Identity{}, &IdentityError{Message: "response does not match identity schema", Cause: err}
	}

	var identity Identity
	if err := json.Unmarshal([]byte(cleaned), &identity); err != nil {
		return Identity{}, &IdentityError{Message: "failed to parse response", Cause: err}
	}

	identity.Name = truncateRunes(strings.TrimSpace(identity.Name), types.MaxAgentNameLength)
	identity.Description = truncateRunes(strings.TrimSpace(identity.Description), types.MaxAgentDescriptionLength)
	if identity.Name == "" || identity.Description == "" {
		return Identity{}, &IdentityError{Message: "name or description is blank"}
	}
	return identity, nil
}

// FallbackIdentity returns the fixed identity for a classification
func FallbackIdentity(classification types.DocumentClassification) Identity {
	name, ok := fallbackNames[classification.Area]
	if !ok {
		name = defaultFallbackName
	}

	subtype := classification.Subtype
	if subtype == "" {
		subtype = types.GenericSubtype
	}
	area := classification.Area.DisplayName()
	if area == "" {
		area = "Direito"
	}

	return Identity{
		Name:        truncateRunes(name, types.MaxAgentNameLength),
		Description: truncateRunes(fmt.Sprintf("Especialista em %s focado em %s", area, subtype), types.MaxAgentDescriptionLength),
	}
}

func buildIdentityPrompt(req *types.AgentCreationRequest) string {
	keywords := "nenhuma"
	if len(req.Classification.Keywords) > 0 {
		keywords = strings.Join(req.Classification.Keywords, ", ")
	}

	varNames := make([]string, 0, len(req.Variables))
	for i, v := range req.Variables {
		if i == 10 {
			break
		}
		varNames = append(varNames, v.Name)
	}
	variables := "nenhuma"
	if len(varNames) > 0 {
		variables = strings.Join(varNames, ", ")
	}

	sectionNames := make([]string, 0, len(req.Sections))
	for _, s := range req.Sections {
		sectionNames = append(sectionNames, s.Name)
	}
	sections := "nenhuma"
	if len(sectionNames) > 0 {
		sections = strings.Join(sectionNames, ", ")
	}

	return prompts.Render("agent.json", "generate-identity", map[string]string{
		"Area":       req.Classification.Area.DisplayName(),
		"Subtype":    req.Classification.Subtype,
		"Confidence": fmt.Sprintf("%.0f", req.Classification.Confidence),
		"Quality":    fmt.Sprintf("%d", req.Quality.Overall),
		"Keywords":   keywords,
		"Variables":  variables,
		"Sections":   sections,
	})
}

// truncateRunes cuts s to at most limit characters
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
