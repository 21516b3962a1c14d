// Package synthesis renders document analysis results into the master prompt
// used to condition downstream document generation.
package synthesis

import (
	"fmt"
	"strings"

	"github.com/jonathan/legal-template-agent/internal/types"
)

const (
	// MaxExcerptLength is the number of characters of source text embedded in the prompt
	MaxExcerptLength = 2000
	// MinVariableConfidence filters out low-confidence variables from rendered prompts
	MinVariableConfidence = 0.7
)

// SynthesizePrompt renders the master prompt for a processed template.
// The output depends only on its arguments.
func SynthesizePrompt(
	sections []types.Section,
	variables []types.Variable,
	classification types.DocumentClassification,
	quality types.QualityMetrics,
	extractedText string,
) string {
	var sb strings.Builder

	sb.WriteString("Você é um assistente jurídico especializado na elaboração de documentos a partir de modelos.\n\n")

	sb.WriteString("## CLASSIFICAÇÃO DO DOCUMENTO\n")
	fmt.Fprintf(&sb, "- Área: %s\n", classification.Area.DisplayName())
	fmt.Fprintf(&sb, "- Subtipo: %s\n", classification.Subtype)
	fmt.Fprintf(&sb, "- Confiança: %.0f%%\n\n", classification.Confidence)

	sb.WriteString("## QUALIDADE DO MODELO\n")
	fmt.Fprintf(&sb, "- Completude: %d/100\n", quality.Completeness)
	fmt.Fprintf(&sb, "- Clareza: %d/100\n", quality.Clarity)
	fmt.Fprintf(&sb, "- Estrutura: %d/100\n", quality.Structure)
	fmt.Fprintf(&sb, "- Conformidade jurídica: %d/100\n", quality.LegalCompliance)
	fmt.Fprintf(&sb, "- Geral: %d/100\n\n", quality.Overall)

	sb.WriteString("## ESTRUTURA\n")
	if len(sections) == 0 {
		sb.WriteString("Nenhuma seção identificada; organize o documento em introdução, desenvolvimento e conclusão.\n")
	}
	for i, s := range sections {
		marker := ""
		if s.Required {
			marker = " (OBRIGATÓRIO)"
		}
		fmt.Fprintf(&sb, "%d. %s [%s]%s\n", i+1, s.Name, s.Type, marker)
	}
	sb.WriteString("\n")

	sb.WriteString("## VARIÁVEIS\n")
	relevant := FilterVariables(variables)
	if len(relevant) == 0 {
		sb.WriteString("Nenhuma variável identificada com confiança suficiente.\n")
	}
	for _, v := range relevant {
		status := "opcional"
		if v.Required {
			status = "obrigatório"
		}
		fmt.Fprintf(&sb, "- %s (%s, %s)\n", v.Name, v.Type, status)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## ORIENTAÇÕES PARA %s\n", strings.ToUpper(classification.Area.DisplayName()))
	for _, g := range guidanceFor(classification.Area) {
		fmt.Fprintf(&sb, "- %s\n", g)
	}
	sb.WriteString("\n")

	sb.WriteString("## PALAVRAS-CHAVE\n")
	if len(classification.Keywords) == 0 {
		sb.WriteString("Nenhuma\n\n")
	} else {
		sb.WriteString(strings.Join(classification.Keywords, ", "))
		sb.WriteString("\n\n")
	}

	sb.WriteString("## INSTRUÇÕES\n")
	for i, item := range checklist {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	sb.WriteString("\n")

	sb.WriteString("## MODELO ORIGINAL\n")
	sb.WriteString(Excerpt(extractedText, MaxExcerptLength))
	sb.WriteString("\n")

	return sb.String()
}

// FilterVariables returns the variables whose confidence exceeds MinVariableConfidence, preserving order
func FilterVariables(variables []types.Variable) []types.Variable {
	filtered := make([]types.Variable, 0, len(variables))
	for _, v := range variables {
		if v.Confidence > MinVariableConfidence {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Excerpt returns the first limit characters of text, followed by "..." when truncated
func Excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
