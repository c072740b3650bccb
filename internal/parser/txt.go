package parser

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// extractTXT reads a plain text file. Non-UTF-8 content falls back to a
// byte-wise Latin-1 interpretation rather than failing the document.
func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
