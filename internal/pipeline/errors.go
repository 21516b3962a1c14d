package pipeline

import "fmt"

// DocumentTooShortError is returned when the extracted text is too short to analyze
type DocumentTooShortError struct {
	Length  int
	Minimum int
}

func (e *DocumentTooShortError) Error() string {
	return fmt.Sprintf("document too short: extracted text has %d characters, minimum is %d", e.Length, e.Minimum)
}
