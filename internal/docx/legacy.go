package docx

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// Legacy retry defaults
const (
	DefaultLegacyAttempts = 3
	DefaultLegacyBackoff  = time.Second
)

// legacyVariableRe matches {{NAME}} and [NAME] placeholders
var legacyVariableRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}|\[([A-Z][A-Z0-9_]+)\]`)

// LegacyResult is the output of the simple template processor
type LegacyResult struct {
	Text      string           `json:"text"`
	Sections  []types.Section  `json:"sections"`
	Variables []types.Variable `json:"variables"`
	Attempts  int              `json:"attempts"`
}

// LegacyProcessor is the predecessor of the intelligent pipeline: heading styles
// drive the sections and only explicit placeholders become variables. Unlike the
// intelligent pipeline it retries extraction failures with a linear backoff.
type LegacyProcessor struct {
	Extractor   Extractor
	MaxAttempts int
	Backoff     time.Duration // attempt n waits n*Backoff before retrying
	Logger      *zap.Logger
}

// NewLegacyProcessor creates a processor with the default extractor and retry policy
func NewLegacyProcessor(logger *zap.Logger) *LegacyProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LegacyProcessor{
		Extractor:   NewExtractor(),
		MaxAttempts: DefaultLegacyAttempts,
		Backoff:     DefaultLegacyBackoff,
		Logger:      logger,
	}
}

// Process runs extract+detect, retrying anything except validation failures
func (p *LegacyProcessor) Process(ctx context.Context, data []byte) (*LegacyResult, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := p.processOnce(ctx, data)
		if err == nil {
			result.Attempts = attempt
			return result, nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		logger.Warn("legacy processing failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, &ExtractionError{Message: "processing cancelled", Cause: ctx.Err()}
		case <-time.After(time.Duration(attempt) * p.Backoff):
		}
	}

	return nil, fmt.Errorf("legacy processing failed after %d attempts: %w", attempts, lastErr)
}

func (p *LegacyProcessor) processOnce(ctx context.Context, data []byte) (*LegacyResult, error) {
	extractor := p.Extractor
	if extractor == nil {
		extractor = NewExtractor()
	}
	doc, err := extractor.Extract(ctx, data)
	if err != nil {
		return nil, err
	}
	return &LegacyResult{
		Text:      doc.Text,
		Sections:  legacySections(doc.Paragraphs),
		Variables: legacyVariables(doc.Text),
	}, nil
}

// legacySections turns heading paragraphs into sections and falls back to the
// Introdução/Desenvolvimento/Conclusão skeleton when the document has none.
func legacySections(paragraphs []Paragraph) []types.Section {
	var sections []types.Section
	for i, p := range paragraphs {
		if p.HeadingLevel == 0 {
			continue
		}
		line := i
		sectionType := types.SectionBody
		switch {
		case len(sections) == 0:
			sectionType = types.SectionHeader
		case strings.Contains(strings.ToLower(p.Text), "conclus"), strings.Contains(strings.ToLower(p.Text), "pedido"):
			sectionType = types.SectionConclusion
		}
		sections = append(sections, types.Section{
			Name:      p.Text,
			Type:      sectionType,
			Required:  p.HeadingLevel == 1,
			Order:     len(sections),
			StartLine: &line,
		})
	}

	if len(sections) > 0 {
		return sections
	}

	return []types.Section{
		{Name: "Introdução", Type: types.SectionHeader, Required: true, Order: 0},
		{Name: "Desenvolvimento", Type: types.SectionBody, Required: true, Order: 1},
		{Name: "Conclusão", Type: types.SectionConclusion, Required: true, Order: 2},
	}
}

// legacyVariables collects explicit placeholders as text variables
func legacyVariables(text string) []types.Variable {
	var variables []types.Variable
	index := make(map[string]int)

	for _, m := range legacyVariableRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		if len(name) <= 1 {
			continue
		}
		if i, ok := index[name]; ok {
			if !slices.Contains(variables[i].Examples, m[0]) {
				variables[i].Examples = append(variables[i].Examples, m[0])
			}
			continue
		}
		index[name] = len(variables)
		variables = append(variables, types.Variable{
			Name:       name,
			Type:       types.VariableText,
			Pattern:    m[0],
			Confidence: 0.8,
			Examples:   []string{m[0]},
		})
	}

	return variables
}
