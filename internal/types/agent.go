package types

import (
	"github.com/go-playground/validator/v10"
)

// Complexity is the requested sophistication of the generated agent
type Complexity string

// Focus is the requested optimization target of the generated agent
type Focus string

// Style is the requested writing register of the generated agent
type Style string

// Preference constants
const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"

	FocusSpeed   Focus = "speed"
	FocusQuality Focus = "quality"
	FocusDetail  Focus = "detail"

	StyleFormal     Style = "formal"
	StyleTechnical  Style = "technical"
	StyleAccessible Style = "accessible"
)

// UserPreferences tunes prompt optimization. Empty fields take the defaults.
type UserPreferences struct {
	Complexity Complexity `json:"complexity,omitempty" validate:"omitempty,oneof=basic intermediate advanced"`
	Focus      Focus      `json:"focus,omitempty" validate:"omitempty,oneof=speed quality detail"`
	Style      Style      `json:"style,omitempty" validate:"omitempty,oneof=formal technical accessible"`
}

// DefaultPreferences returns intermediate/quality/formal
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Complexity: ComplexityIntermediate,
		Focus:      FocusQuality,
		Style:      StyleFormal,
	}
}

// WithDefaults returns a copy with every empty field filled from DefaultPreferences.
// A nil receiver yields the defaults.
func (p *UserPreferences) WithDefaults() UserPreferences {
	defaults := DefaultPreferences()
	if p == nil {
		return defaults
	}
	result := *p
	if result.Complexity == "" {
		result.Complexity = defaults.Complexity
	}
	if result.Focus == "" {
		result.Focus = defaults.Focus
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}
	return result
}

// Validate validates the UserPreferences using the validator.
func (p *UserPreferences) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// AgentCreationRequest bundles the pipeline outputs consumed by agent creation
type AgentCreationRequest struct {
	Classification DocumentClassification `json:"classification"`
	Quality        QualityMetrics         `json:"quality"`
	Variables      []Variable             `json:"variables"`
	Sections       []Section              `json:"sections"`
	ExtractedText  string                 `json:"extracted_text"`
	Preferences    *UserPreferences       `json:"preferences,omitempty"`
}

// Validate validates the AgentCreationRequest using the validator.
func (r *AgentCreationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// NewAgentCreationRequest builds a request from a processed document
func NewAgentCreationRequest(doc *ProcessedDocument, prefs *UserPreferences) AgentCreationRequest {
	return AgentCreationRequest{
		Classification: doc.Classification,
		Quality:        doc.Quality,
		Variables:      doc.Variables,
		Sections:       doc.Sections,
		ExtractedText:  doc.ExtractedText,
		Preferences:    prefs,
	}
}

// Agent result limits
const (
	MaxAgentNameLength        = 50
	MaxAgentDescriptionLength = 200
	MaxSpecializations        = 5
	MaxRecommendations        = 4
)

// AgentCreationResult is the agent definition derived from a processed template
type AgentCreationResult struct {
	SuggestedName        string   `json:"suggested_name"`
	SuggestedDescription string   `json:"suggested_description"`
	OptimizedPrompt      string   `json:"optimized_prompt"`
	Specializations      []string `json:"specializations"`
	ConfidenceScore      int      `json:"confidence_score"` // 0-100
	Recommendations      []string `json:"recommendations"`
}
