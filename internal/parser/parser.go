// Package parser extracts plain text from career documents. The converters
// are deliberately thin byte-to-string routines; all intelligence lives in
// the extraction service downstream.
package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	multiSpace    = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// ParseResult holds the extracted text of one document.
type ParseResult struct {
	Text      string
	CharCount int
}

// Parse extracts and cleans text from a document, dispatching on extension.
func Parse(path string) (*ParseResult, error) {
	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".txt":
		text, err = extractTXT(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(text)
	return &ParseResult{Text: cleaned, CharCount: len(cleaned)}, nil
}

// CleanText normalizes whitespace in extracted text: CRLF to LF, runs of
// spaces collapsed, at most two consecutive newlines, trimmed ends.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	text = multiNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
