package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DocxExtractor reads the main document part of a DOCX archive and joins
// its paragraph text.
type DocxExtractor struct{}

// NewDocxExtractor creates a DOCX extractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// CanExtract reports whether the format is DOCX.
func (e *DocxExtractor) CanExtract(format string) bool {
	return format == "docx"
}

// Extract opens the archive, locates word/document.xml, and concatenates
// all text runs, one paragraph per line.
func (e *DocxExtractor) Extract(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document part: %w", err)
		}
		text, err := readDocumentXML(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("parse document part: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("docx archive has no word/document.xml")
}

// readDocumentXML walks the WordprocessingML token stream, collecting the
// character data of <w:t> runs and breaking lines at paragraph ends.
func readDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var b strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
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
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}
