package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/legal-template-agent/internal/docx"
	"github.com/jonathan/legal-template-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleDocument() *types.ProcessedDocument {
	return &types.ProcessedDocument{
		ExtractedText: "texto",
		Sections: []types.Section{
			{Name: "Dos Fatos", Type: types.SectionBody, Required: true, Order: 0},
			{Name: "RESUMO DA DEMANDA", Type: types.SectionBody, Order: 1},
		},
		Variables: []types.Variable{
			{Name: "NOME_CLIENTE", Type: types.VariableText, Confidence: 0.9, Required: true},
			{Name: "DATA", Type: types.VariableDate, Confidence: 0.95},
		},
		Classification: types.DocumentClassification{
			Area:       types.AreaFamilia,
			Subtype:    "divórcio",
			Confidence: 40,
			Keywords:   []string{"divórcio", "guarda"},
		},
		Quality: types.QualityMetrics{Completeness: 25, Clarity: 88, Structure: 40, LegalCompliance: 0, Overall: 38},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleDocument())
	output := buf.String()

	assert.Contains(t, output, "CLASSIFICATION")
	assert.Contains(t, output, "Família")
	assert.Contains(t, output, "divórcio, guarda")
	assert.Contains(t, output, "* 1. Dos Fatos [body]")
	assert.Contains(t, output, "  2. RESUMO DA DEMANDA [body]")
	assert.Contains(t, output, "NOME_CLIENTE (text) 0.90 required")
	assert.Contains(t, output, "38/100")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)
	p.PrintAgent(nil)
	p.PrintLegacy(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSections_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSections(nil)

	assert.Contains(t, buf.String(), "No sections detected")
}

func TestPrintVariables_Truncates(t *testing.T) {
	var buf bytes.Buffer
	vars := make([]types.Variable, 8)
	for i := range vars {
		vars[i] = types.Variable{Name: "CAMPO", Type: types.VariableText, Confidence: 0.8}
	}

	NewPrinter(&buf).PrintVariables(vars)

	assert.Contains(t, buf.String(), "Detected 8 variables")
	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintAgent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAgent(&types.AgentCreationResult{
		SuggestedName:        "Especialista em Família",
		SuggestedDescription: "Especialista em Família focado em divórcio",
		OptimizedPrompt:      "prompt",
		Specializations:      []string{"Família", "divórcio"},
		ConfidenceScore:      61,
		Recommendations:      []string{"Inclua fundamentação legal"},
	})
	output := buf.String()

	assert.Contains(t, output, "AGENT")
	assert.Contains(t, output, "Especialista em Família")
	assert.Contains(t, output, "61/100")
	assert.Contains(t, output, "6 characters")
	assert.Contains(t, output, "1. Inclua fundamentação legal")
}

func TestPrintLegacy(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintLegacy(&docx.LegacyResult{Text: "abc", Attempts: 2})

	assert.Contains(t, buf.String(), "LEGACY PROCESSING")
	assert.Contains(t, buf.String(), "Attempts:   2")
}

func TestPrintBox_TruncatesByCharacter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("ç", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}
