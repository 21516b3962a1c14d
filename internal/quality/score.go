// Package quality derives 0-100 quality metrics for an analyzed document template.
package quality

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// idealRequiredSections is the number of required sections a complete template has
const idealRequiredSections = 4

// legalTerms signal doctrinal grounding; each one present adds 25 points
var legalTerms = []string{"considerando", "fundamentação", "jurisprudência", "doutrina"}

// Score computes completeness, clarity, structure and legal compliance, plus their rounded mean.
func Score(text string, sections []types.Section, variables []types.Variable) types.QualityMetrics {
	metrics := types.QualityMetrics{
		Completeness:    completeness(sections),
		Clarity:         clarity(text, variables),
		Structure:       structure(sections),
		LegalCompliance: legalCompliance(text),
	}
	sum := metrics.Completeness + metrics.Clarity + metrics.Structure + metrics.LegalCompliance
	metrics.Overall = toScore(float64(sum) / 4)
	return metrics
}

func completeness(sections []types.Section) int {
	required := 0
	for _, s := range sections {
		if s.Required {
			required++
		}
	}
	return toScore(math.Min(float64(required)/idealRequiredSections, 1) * 100)
}

// clarity penalizes templates whose placeholder text dominates the document
func clarity(text string, variables []types.Variable) int {
	textLength := utf8.RuneCountInString(text)
	if textLength == 0 {
		return 0
	}
	placeholderLength := 0
	for _, v := range variables {
		for _, ex := range v.Examples {
			placeholderLength += utf8.RuneCountInString(ex)
		}
	}
	ratio := float64(textLength-placeholderLength) / float64(textLength)
	return toScore(math.Min(ratio, 1) * 100)
}

func structure(sections []types.Section) int {
	if len(sections) == 0 {
		return 50
	}
	return toScore(math.Min(float64(len(sections)*20), 100))
}

func legalCompliance(text string) int {
	lower := strings.ToLower(text)
	matched := 0
	for _, term := range legalTerms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return toScore(math.Min(float64(matched*25), 100))
}

// toScore rounds to the nearest integer and clamps to [0,100]
func toScore(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
