package variables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// Sequence hands out the numbers used to name unnamed matches.
// A fresh Sequence per document keeps detection deterministic.
type Sequence struct {
	n int
}

// Next returns the next number, starting at 1
func (s *Sequence) Next() int {
	s.n++
	return s.n
}

// Detect returns the variables found in text, highest confidence first, at most MaxVariables.
func Detect(text string) []types.Variable {
	return DetectWithSequence(text, &Sequence{})
}

// DetectWithSequence is Detect with an explicit name counter
func DetectWithSequence(text string, seq *Sequence) []types.Variable {
	c := newCollector()

	// Named matches first so generated names never shadow a real placeholder
	var unnamed []variablePattern
	for _, p := range variablePatterns {
		if p.re.NumSubexp() == 0 {
			unnamed = append(unnamed, p)
			continue
		}
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			c.observe(canonicalName(m[1]), p.varType, p.confidence, m[0])
		}
	}
	for _, p := range unnamed {
		for _, literal := range p.re.FindAllString(text, -1) {
			c.observe(c.generatedName(p.varType, seq), p.varType, p.confidence, literal)
		}
	}

	lowerText := strings.ToLower(text)
	for _, v := range c.ordered {
		v.Required = nearObligationWord(lowerText, strings.ToLower(v.Name))
	}

	for _, cp := range contextualPatterns {
		if _, exists := c.byName[cp.name]; exists {
			continue
		}
		match := cp.re.FindString(text)
		if match == "" {
			continue
		}
		c.observe(cp.name, cp.varType, contextualConfidence, match)
		c.byName[cp.name].Required = true
	}

	result := make([]types.Variable, 0, len(c.ordered))
	for _, v := range c.ordered {
		result = append(result, *v)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Confidence != result[j].Confidence {
			return result[i].Confidence > result[j].Confidence
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > MaxVariables {
		result = result[:MaxVariables]
	}
	return result
}

// collector keeps one record per canonical name in first-seen order
type collector struct {
	byName  map[string]*types.Variable
	ordered []*types.Variable
}

func newCollector() *collector {
	return &collector{byName: make(map[string]*types.Variable)}
}

// observe records a match. The highest-confidence classification wins;
// every distinct literal is kept as an example.
func (c *collector) observe(name string, varType types.VariableType, confidence float64, literal string) {
	if len([]rune(name)) <= 1 {
		return
	}
	confidence = clamp(confidence)

	v, ok := c.byName[name]
	if !ok {
		v = &types.Variable{
			Name:       name,
			Type:       varType,
			Pattern:    literal,
			Confidence: confidence,
			Examples:   []string{literal},
		}
		c.byName[name] = v
		c.ordered = append(c.ordered, v)
		return
	}

	if confidence > v.Confidence {
		v.Type = varType
		v.Confidence = confidence
		v.Pattern = literal
	}
	for _, ex := range v.Examples {
		if ex == literal {
			return
		}
	}
	v.Examples = append(v.Examples, literal)
}

// generatedName draws counter values until the name is not already taken
func (c *collector) generatedName(varType types.VariableType, seq *Sequence) string {
	for {
		name := fmt.Sprintf("%s_%d", generatedPrefixes[varType], seq.Next())
		if _, taken := c.byName[name]; !taken {
			return name
		}
	}
}

// canonicalName upper-cases and trims a captured name
func canonicalName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// nearObligationWord reports whether an obligation word appears within
// requiredWindow bytes around the first occurrence of name
func nearObligationWord(lowerText, lowerName string) bool {
	idx := strings.Index(lowerText, lowerName)
	if idx < 0 {
		return false
	}
	start := max(idx-requiredWindow, 0)
	end := min(idx+len(lowerName)+requiredWindow, len(lowerText))
	window := lowerText[start:end]
	for _, word := range obligationWords {
		if strings.Contains(window, word) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
