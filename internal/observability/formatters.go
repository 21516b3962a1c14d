// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/legal-template-agent/internal/docx"
	"github.com/jonathan/legal-template-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs every part of a processed document
func (p *Printer) PrintAnalysis(doc *types.ProcessedDocument) {
	if doc == nil {
		return
	}
	p.PrintClassification(&doc.Classification)
	p.PrintSections(doc.Sections)
	p.PrintVariables(doc.Variables)
	p.PrintQuality(&doc.Quality)
}

// PrintClassification outputs the legal area, subtype and matched keywords
func (p *Printer) PrintClassification(c *types.DocumentClassification) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Area:       %s\n", c.Area.DisplayName()))
	sb.WriteString(fmt.Sprintf("Subtype:    %s\n", c.Subtype))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", c.Confidence))
	if len(c.Keywords) > 0 {
		keywords := strings.Join(c.Keywords, ", ")
		if utf8.RuneCountInString(keywords) > 40 {
			keywords = string([]rune(keywords)[:37]) + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords:   %s\n", keywords))
	}

	p.printBox("CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the detected sections in order
func (p *Printer) PrintSections(sections []types.Section) {
	if len(sections) == 0 {
		p.printBox("SECTIONS", "No sections detected")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d sections:\n\n", len(sections)))
	for i, s := range sections {
		marker := " "
		if s.Required {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s [%s]\n", marker, i+1, s.Name, s.Type))
	}
	sb.WriteString("\n* required")

	p.printBox("SECTIONS", sb.String())
}

// PrintVariables outputs the top detected variables with confidence
func (p *Printer) PrintVariables(variables []types.Variable) {
	if len(variables) == 0 {
		p.printBox("VARIABLES", "No variables detected")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d variables:\n\n", len(variables)))

	count := min(len(variables), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := variables[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s) %.2f", v.Name, v.Type, v.Confidence))
		if v.Required {
			sb.WriteString(" required")
		}
		sb.WriteString("\n")
	}
	if len(variables) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(variables)-maxItemsToShow))
	}

	p.printBox("VARIABLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuality outputs the quality sub-scores
func (p *Printer) PrintQuality(q *types.QualityMetrics) {
	if q == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness:     %3d/100\n", q.Completeness))
	sb.WriteString(fmt.Sprintf("Clarity:          %3d/100\n", q.Clarity))
	sb.WriteString(fmt.Sprintf("Structure:        %3d/100\n", q.Structure))
	sb.WriteString(fmt.Sprintf("Legal compliance: %3d/100\n", q.LegalCompliance))
	sb.WriteString(fmt.Sprintf("Overall:          %3d/100", q.Overall))

	p.printBox("QUALITY", sb.String())
}

// PrintAgent outputs the identity and advisory data of a created agent
func (p *Printer) PrintAgent(result *types.AgentCreationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", result.SuggestedName))
	sb.WriteString(fmt.Sprintf("Description: %s\n", result.SuggestedDescription))
	sb.WriteString(fmt.Sprintf("Confidence:  %d/100\n", result.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("Prompt:      %d characters\n", utf8.RuneCountInString(result.OptimizedPrompt)))

	if len(result.Specializations) > 0 {
		sb.WriteString("\nSpecializations:\n")
		for _, s := range result.Specializations {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for i, r := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, r))
		}
	}

	p.printBox("AGENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLegacy outputs the result of the legacy processor
func (p *Printer) PrintLegacy(result *docx.LegacyResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Attempts:   %d\n", result.Attempts))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", utf8.RuneCountInString(result.Text)))
	sb.WriteString(fmt.Sprintf("Sections:   %d\n", len(result.Sections)))
	sb.WriteString(fmt.Sprintf("Variables:  %d", len(result.Variables)))

	p.printBox("LEGACY PROCESSING", sb.String())
}
