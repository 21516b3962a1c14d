// Package types provides type definitions for structured data used throughout the legal-template-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionType is the structural role of a section inside a legal document
type SectionType string

// Section type constants
const (
	SectionHeader     SectionType = "header"
	SectionBody       SectionType = "body"
	SectionConclusion SectionType = "conclusion"
)

// Section represents a structural unit detected in a document template
type Section struct {
	Name      string      `json:"name"`
	Type      SectionType `json:"section_type"`
	Required  bool        `json:"required"`
	Order     int         `json:"order"`
	StartLine *int        `json:"start_line,omitempty"` // Zero-based index of the source line
	Content   *string     `json:"content,omitempty"`
}

// VariableType is the value kind of a fill-in variable
type VariableType string

// Variable type constants
const (
	VariableText     VariableType = "text"
	VariableDate     VariableType = "date"
	VariableNumber   VariableType = "number"
	VariableCurrency VariableType = "currency"
	VariableEmail    VariableType = "email"
	VariableCPF      VariableType = "cpf"
	VariableCNPJ     VariableType = "cnpj"
)

// Variable represents a fill-in field detected in a document template
type Variable struct {
	Name       string       `json:"name"`       // Canonical upper-case name
	Type       VariableType `json:"type"`       // Winning classification
	Pattern    string       `json:"pattern"`    // Literal token of the winning match
	Confidence float64      `json:"confidence"` // 0.0-1.0
	Examples   []string     `json:"examples"`   // Distinct literal matches, first-seen order
	Required   bool         `json:"required"`
}

// LegalArea identifies one of the supported areas of law
type LegalArea string

// Legal areas in enumeration order. Classification ties resolve to the earlier entry.
const (
	AreaCivil       LegalArea = "civil"
	AreaTrabalhista LegalArea = "trabalhista"
	AreaCriminal    LegalArea = "criminal"
	AreaTributario  LegalArea = "tributario"
	AreaFamilia     LegalArea = "familia"
	AreaEmpresarial LegalArea = "empresarial"
)

// LegalAreas lists every area in enumeration order
var LegalAreas = []LegalArea{
	AreaCivil,
	AreaTrabalhista,
	AreaCriminal,
	AreaTributario,
	AreaFamilia,
	AreaEmpresarial,
}

// areaDisplayNames maps each area to its capitalized Portuguese name
var areaDisplayNames = map[LegalArea]string{
	AreaCivil:       "Civil",
	AreaTrabalhista: "Trabalhista",
	AreaCriminal:    "Criminal",
	AreaTributario:  "Tributário",
	AreaFamilia:     "Família",
	AreaEmpresarial: "Empresarial",
}

// DisplayName returns the capitalized human-readable name of the area
func (a LegalArea) DisplayName() string {
	if name, ok := areaDisplayNames[a]; ok {
		return name
	}
	return string(a)
}

// GenericSubtype is the subtype reported when no specific subtype is recognized
const GenericSubtype = "genérico"

// DocumentClassification is the single legal-area classification of a document
type DocumentClassification struct {
	Area       LegalArea `json:"area" validate:"omitempty,oneof=civil trabalhista criminal tributario familia empresarial"`
	Subtype    string    `json:"subtype"`
	Confidence float64   `json:"confidence" validate:"min=0,max=95"` // never full certainty
	Keywords   []string  `json:"keywords"`
}

// QualityMetrics holds the derived 0-100 quality scores of a document
type QualityMetrics struct {
	Completeness    int `json:"completeness" validate:"min=0,max=100"`
	Clarity         int `json:"clarity" validate:"min=0,max=100"`
	Structure       int `json:"structure" validate:"min=0,max=100"`
	LegalCompliance int `json:"legal_compliance" validate:"min=0,max=100"`
	Overall         int `json:"overall" validate:"min=0,max=100"`
}

// ProcessedDocument is the result of the intelligent processing pipeline
type ProcessedDocument struct {
	ExtractedText  string                 `json:"extracted_text"`
	Variables      []Variable             `json:"variables"`
	Sections       []Section              `json:"sections"`
	Classification DocumentClassification `json:"classification"`
	Quality        QualityMetrics         `json:"quality"`
}
