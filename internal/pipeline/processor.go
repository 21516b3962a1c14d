// Package pipeline orchestrates template analysis: extraction, the independent
// detectors, quality scoring, and optionally agent creation and persistence.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/legal-template-agent/internal/docx"
	"github.com/jonathan/legal-template-agent/internal/quality"
	"github.com/jonathan/legal-template-agent/internal/types"
)

// MinTextLength is the minimum number of characters of extracted text
const MinTextLength = 50

// Processor runs the intelligent analysis pipeline on a single document
type Processor struct {
	Extractor  docx.Extractor
	Analyzers  Analyzers
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// NewProcessor creates a Processor with the DOCX extractor and default analyzers
func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		Extractor: docx.NewExtractor(),
		Analyzers: DefaultAnalyzers(),
		Logger:    logger,
	}
}

// ProcessDocument extracts text from a DOCX file and analyzes it.
// Extraction failures and too-short documents abort processing.
func (p *Processor) ProcessDocument(ctx context.Context, data []byte) (*types.ProcessedDocument, error) {
	if err := docx.Validate(data); err != nil {
		return nil, err
	}

	extractor := p.Extractor
	if extractor == nil {
		extractor = docx.NewExtractor()
	}
	doc, err := extractor.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document text: %w", err)
	}
	emit(p.OnProgress, StepExtract, fmt.Sprintf("Extracted %d paragraphs", len(doc.Paragraphs)), nil)

	return p.ProcessText(ctx, doc.Text)
}

// ProcessText analyzes already-extracted text. The structure, variable and
// classification analyses run concurrently; quality is scored from their results.
func (p *Processor) ProcessText(ctx context.Context, text string) (*types.ProcessedDocument, error) {
	logger := p.logger()

	length := utf8.RuneCountInString(strings.TrimSpace(text))
	if length < MinTextLength {
		return nil, &DocumentTooShortError{Length: length, Minimum: MinTextLength}
	}

	analyzers := p.Analyzers
	defaults := DefaultAnalyzers()
	if analyzers.Structure == nil {
		analyzers.Structure = defaults.Structure
	}
	if analyzers.Variables == nil {
		analyzers.Variables = defaults.Variables
	}
	if analyzers.Classification == nil {
		analyzers.Classification = defaults.Classification
	}

	var (
		sections       []types.Section
		variables      []types.Variable
		classification types.DocumentClassification
	)

	// each goroutine writes a distinct variable; Wait orders the writes before the reads below
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		sections = analyzers.Structure(text)
		emit(p.OnProgress, StepStructure, fmt.Sprintf("Detected %d sections", len(sections)), sections)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		variables = analyzers.Variables(text)
		emit(p.OnProgress, StepVariables, fmt.Sprintf("Detected %d variables", len(variables)), variables)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		classification = analyzers.Classification(text)
		emit(p.OnProgress, StepClassify, fmt.Sprintf("Classified as %s", classification.Area), classification)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	if sections == nil {
		sections = []types.Section{}
	}
	if variables == nil {
		variables = []types.Variable{}
	}
	if classification.Keywords == nil {
		classification.Keywords = []string{}
	}

	metrics := quality.Score(text, sections, variables)
	emit(p.OnProgress, StepQuality, fmt.Sprintf("Overall quality %d/100", metrics.Overall), metrics)

	logger.Debug("document analyzed",
		zap.Int("characters", length),
		zap.Int("sections", len(sections)),
		zap.Int("variables", len(variables)),
		zap.String("area", string(classification.Area)),
		zap.Float64("confidence", classification.Confidence),
		zap.Int("quality", metrics.Overall))

	return &types.ProcessedDocument{
		ExtractedText:  text,
		Variables:      variables,
		Sections:       sections,
		Classification: classification,
		Quality:        metrics,
	}, nil
}

func (p *Processor) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
