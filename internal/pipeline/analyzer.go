package pipeline

import (
	"github.com/jonathan/legal-template-agent/internal/classification"
	"github.com/jonathan/legal-template-agent/internal/structure"
	"github.com/jonathan/legal-template-agent/internal/types"
	"github.com/jonathan/legal-template-agent/internal/variables"
)

// Analyzer is a total function from document text to one kind of finding
type Analyzer[T any] func(text string) T

// Analyzers are the independent text analyses run on every document
type Analyzers struct {
	Structure      Analyzer[[]types.Section]
	Variables      Analyzer[[]types.Variable]
	Classification Analyzer[types.DocumentClassification]
}

// DefaultAnalyzers returns the pattern-based detectors
func DefaultAnalyzers() Analyzers {
	return Analyzers{
		Structure:      structure.Detect,
		Variables:      variables.Detect,
		Classification: classification.Classify,
	}
}
