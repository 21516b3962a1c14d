package classification

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// Classify scores text against each area's keywords and returns the best match.
// Ties resolve to the earlier area in types.LegalAreas. When no keyword matches
// the document is reported as generic civil with confidence 30.
func Classify(text string) types.DocumentClassification {
	lower := strings.ToLower(text)

	bestArea := types.LegalArea("")
	bestScore := 0.0
	var bestKeywords []string

	for _, area := range types.LegalAreas {
		profile := areaProfiles[area]
		if len(profile.keywords) == 0 {
			continue
		}
		found := matchedKeywords(lower, profile.keywords)
		score := float64(len(found)) / float64(len(profile.keywords))
		if score > bestScore {
			bestArea = area
			bestScore = score
			bestKeywords = found
		}
	}

	if bestScore == 0 {
		return Fallback()
	}

	return types.DocumentClassification{
		Area:       bestArea,
		Subtype:    inferSubtype(lower, areaProfiles[bestArea].subtypes),
		Confidence: math.Min(bestScore*100, maxConfidence),
		Keywords:   bestKeywords,
	}
}

// Fallback returns the classification used when nothing matches
func Fallback() types.DocumentClassification {
	return types.DocumentClassification{
		Area:       types.AreaCivil,
		Subtype:    types.GenericSubtype,
		Confidence: fallbackConfidence,
		Keywords:   []string{},
	}
}

// matchedKeywords returns the keywords present in lowerText as whole words, in dictionary order
func matchedKeywords(lowerText string, keywords []string) []string {
	found := []string{}
	for _, kw := range keywords {
		if containsWord(lowerText, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// containsWord reports whether word occurs in text not flanked by letters or digits,
// so "pena" does not match inside "apenas".
func containsWord(text, word string) bool {
	offset := 0
	for {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (start == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			return true
		}
		offset = start + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func inferSubtype(lowerText string, subtypes []string) string {
	for _, subtype := range subtypes {
		if strings.Contains(lowerText, subtype) {
			return subtype
		}
	}
	return types.GenericSubtype
}
