package structure

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// minHeadingLength and minHeadingWords bound the upper-case heading heuristic
const (
	minHeadingLength = 10
	minHeadingWords  = 3
)

type sectionKey struct {
	name        string
	sectionType types.SectionType
}

// detector accumulates sections for one pass over a document
type detector struct {
	sections []types.Section
	seen     map[sectionKey]bool
	literal  map[string]bool
}

// Detect scans text line by line and returns the detected sections ordered by Order.
// It never fails; a document without recognizable structure yields an empty slice.
func Detect(text string) []types.Section {
	d := &detector{
		sections: []types.Section{},
		seen:     make(map[sectionKey]bool),
		literal:  make(map[string]bool),
	}

	for index, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, p := range sectionPatterns {
			if p.re.MatchString(line) {
				d.add(p.name, p.sectionType, true, index, line)
				break
			}
		}

		if isUpperHeading(line) && !d.literal[line] {
			d.add(line, headingType(line), false, index, line)
		}
	}

	sort.SliceStable(d.sections, func(i, j int) bool {
		return d.sections[i].Order < d.sections[j].Order
	})
	return d.sections
}

// add appends a section unless one with the same (lower(name), type) exists
func (d *detector) add(name string, sectionType types.SectionType, required bool, lineIndex int, line string) {
	key := sectionKey{name: strings.ToLower(name), sectionType: sectionType}
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.literal[name] = true

	startLine := lineIndex
	content := line
	d.sections = append(d.sections, types.Section{
		Name:      name,
		Type:      sectionType,
		Required:  required,
		Order:     len(d.sections),
		StartLine: &startLine,
		Content:   &content,
	})
}

// isUpperHeading reports whether line looks like an all-caps section title
func isUpperHeading(line string) bool {
	if utf8.RuneCountInString(line) <= minHeadingLength {
		return false
	}
	if strings.ToUpper(line) != line {
		return false
	}
	if !upperHeadingRe.MatchString(line) {
		return false
	}
	return len(strings.Fields(line)) >= minHeadingWords
}

// headingType infers the section type of a free-form heading
func headingType(line string) types.SectionType {
	for _, kw := range headerHeadingKeywords {
		if strings.Contains(line, kw) {
			return types.SectionHeader
		}
	}
	for _, kw := range conclusionHeadingKeywords {
		if strings.Contains(line, kw) {
			return types.SectionConclusion
		}
	}
	return types.SectionBody
}
