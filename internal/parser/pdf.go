package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the plain text layer out of a PDF document.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	r, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	return sb.String(), nil
}
