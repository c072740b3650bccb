package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls paragraph text out of a .docx archive. A .docx file is a
// zip containing word/document.xml; text lives in <w:t> elements, grouped
// into <w:p> paragraphs.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer func() { _ = archive.Close() }()

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("DOCX archive has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX document part: %w", err)
	}
	defer func() { _ = rc.Close() }()

	return decodeDocumentXML(rc)
}

// decodeDocumentXML walks the WordprocessingML token stream collecting text
// runs, emitting a newline at each paragraph end.
func decodeDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			case "tc": // table cell boundary
				sb.WriteString(" ")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
