package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// MaxFileSize is the largest document accepted, in bytes
const MaxFileSize = 50 * 1024 * 1024

// zipSignature is the local file header magic every .docx container starts with
var zipSignature = []byte{'P', 'K', 0x03, 0x04}

// Paragraph is one non-empty paragraph of the document body
type Paragraph struct {
	Text         string `json:"text"`
	Style        string `json:"style,omitempty"`
	HeadingLevel int    `json:"heading_level"` // 1-6 for heading styles, 0 for body text
}

// Document is the result of extracting a .docx file
type Document struct {
	Title      string      `json:"title,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
	Text       string      `json:"text"` // Paragraph texts joined by newlines
}

// Extractor converts raw document bytes into plain text
type Extractor interface {
	Extract(ctx context.Context, data []byte) (*Document, error)
}

// WordExtractor reads word/document.xml out of the OOXML container
type WordExtractor struct{}

// NewExtractor returns the default .docx extractor
func NewExtractor() *WordExtractor {
	return &WordExtractor{}
}

// Validate rejects empty, oversized, or non-ZIP inputs
func Validate(data []byte) error {
	if len(data) == 0 {
		return &ValidationError{Field: "file", Message: "document is empty"}
	}
	if len(data) > MaxFileSize {
		return &ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("document exceeds maximum size of %d bytes (got %d)", MaxFileSize, len(data)),
		}
	}
	if !bytes.HasPrefix(data, zipSignature) {
		return &ValidationError{Field: "file", Message: "invalid .docx container signature"}
	}
	return nil
}

// Extract validates data and parses the main document part
func (e *WordExtractor) Extract(ctx context.Context, data []byte) (*Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &ExtractionError{Message: "extraction cancelled", Cause: err}
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to open zip container", Cause: err}
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, &ExtractionError{Message: "word/document.xml not found in archive"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, &ExtractionError{Message: "failed to open document.xml", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := parseDocumentXML(rc)
	if err != nil {
		return nil, &ExtractionError{Message: "failed to parse document.xml", Cause: err}
	}

	doc := &Document{Paragraphs: paragraphs}
	texts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if doc.Title == "" && p.HeadingLevel == 1 {
			doc.Title = p.Text
		}
		texts = append(texts, p.Text)
	}
	doc.Text = CleanText(strings.Join(texts, "\n"))

	return doc, nil
}

// parseDocumentXML walks the WordprocessingML token stream collecting paragraph text.
// Only character data inside w:t runs is kept; w:tab and w:br become whitespace.
func parseDocumentXML(r io.Reader) ([]Paragraph, error) {
	decoder := xml.NewDecoder(r)
	var paragraphs []Paragraph
	var current strings.Builder
	var inParagraph, inText bool
	var style string

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
				style = ""
			case "pStyle":
				if inParagraph {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							style = attr.Value
						}
					}
				}
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					current.WriteString("\t")
				}
			case "br", "cr":
				if inParagraph {
					current.WriteString("\n")
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if !inParagraph {
					continue
				}
				inParagraph = false
				text := strings.TrimSpace(current.String())
				if text == "" {
					continue
				}
				paragraphs = append(paragraphs, Paragraph{
					Text:         text,
					Style:        style,
					HeadingLevel: headingLevel(style),
				})
			}
		}
	}

	return paragraphs, nil
}

// headingLevel extracts the heading level from a paragraph style name.
// e.g. "Heading1" → 1, "Titulo2" → 2, "Title" → 1.
func headingLevel(style string) int {
	lower := strings.ToLower(style)

	if lower == "title" || lower == "titulo" || lower == "título" {
		return 1
	}
	if lower == "subtitle" || lower == "subtitulo" || lower == "subtítulo" {
		return 2
	}

	for _, prefix := range []string{"heading", "título", "titulo", "titre"} {
		if strings.HasPrefix(lower, prefix) {
			rest := strings.TrimSpace(lower[len(prefix):])
			if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
				return int(rest[0] - '0')
			}
		}
	}
	return 0
}
