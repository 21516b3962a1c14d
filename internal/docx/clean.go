package docx

import (
	"regexp"
	"strings"
)

var (
	inlineSpaceRe  = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLineRunRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving line structure:
// CRLF/CR become LF, runs of spaces and tabs collapse to one space,
// lines are trimmed, and blank-line runs are capped at one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpaceRe.ReplaceAllString(line, " "))
	}

	result := strings.Join(lines, "\n")
	result = blankLineRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
