package db

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// AgentDefinition is a persisted, versioned agent.
// Saving an agent under an existing name creates the next version.
type AgentDefinition struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Prompt          string    `json:"prompt"`
	Area            string    `json:"area"`
	Subtype         string    `json:"subtype"`
	Specializations []string  `json:"specializations"`
	Recommendations []string  `json:"recommendations"`
	ConfidenceScore int       `json:"confidence_score"`
	Version         int       `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
}

// Result converts a stored agent back into an agent creation result
func (a *AgentDefinition) Result() types.AgentCreationResult {
	return types.AgentCreationResult{
		SuggestedName:        a.Name,
		SuggestedDescription: a.Description,
		OptimizedPrompt:      a.Prompt,
		Specializations:      nonNil(a.Specializations),
		ConfidenceScore:      a.ConfidenceScore,
		Recommendations:      nonNil(a.Recommendations),
	}
}

// AgentDefinitionInput holds the fields needed to save an agent
type AgentDefinitionInput struct {
	Name            string          `validate:"notblank,max=50"`
	Description     string          `validate:"max=200"`
	Prompt          string          `validate:"required"`
	Area            types.LegalArea `validate:"omitempty,oneof=civil trabalhista criminal tributario familia empresarial"`
	Subtype         string
	Specializations []string `validate:"max=5"`
	Recommendations []string `validate:"max=4"`
	ConfidenceScore int      `validate:"min=0,max=100"`
}

// NewAgentDefinitionInput maps an agent creation result and its classification to a save input
func NewAgentDefinitionInput(result *types.AgentCreationResult, classification types.DocumentClassification) *AgentDefinitionInput {
	return &AgentDefinitionInput{
		Name:            strings.TrimSpace(result.SuggestedName),
		Description:     result.SuggestedDescription,
		Prompt:          result.OptimizedPrompt,
		Area:            classification.Area,
		Subtype:         classification.Subtype,
		Specializations: nonNil(result.Specializations),
		Recommendations: nonNil(result.Recommendations),
		ConfidenceScore: result.ConfidenceScore,
	}
}

// Validate checks the input before it reaches the database
func (in *AgentDefinitionInput) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	return validate.Struct(in)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
