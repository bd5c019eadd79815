package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFExtractor pulls text-showing strings out of PDF page content streams.
// pdfcpu decodes the streams; the Tj/TJ operator payloads are then lifted
// with pattern matching. Layout is not reconstructed: the output is a flat
// text approximation good enough for clause scanning.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// CanExtract reports whether the format is PDF.
func (e *PDFExtractor) CanExtract(format string) bool {
	return format == "pdf"
}

var (
	tjPattern = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`)
	tjArray   = regexp.MustCompile(`\[((?:\((?:\\.|[^\\()])*\)|[^\]])*)\]\s*TJ`)
	tjElement = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

// Extract decodes the document's page content streams and collects the text
// payloads of Tj and TJ operators, one page per line group.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	if _, err := api.PageCount(bytes.NewReader(data), nil); err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "clauselens-pdf-")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	inFile := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(inFile, data, 0600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	if err := api.ExtractContentFile(inFile, tmpDir, nil, nil); err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("read content dir: %w", err)
	}

	var b strings.Builder
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), "Content") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(tmpDir, entry.Name()))
		if err != nil {
			continue
		}
		page := collectTextOperators(string(content))
		if page != "" {
			b.WriteString(page)
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// collectTextOperators lifts the string payloads of Tj and TJ operators
// from one decoded content stream.
func collectTextOperators(content string) string {
	var parts []string

	for _, m := range tjPattern.FindAllStringSubmatch(content, -1) {
		parts = append(parts, decodePDFString(m[1]))
	}

	for _, m := range tjArray.FindAllStringSubmatch(content, -1) {
		for _, el := range tjElement.FindAllStringSubmatch(m[1], -1) {
			parts = append(parts, decodePDFString(el[1]))
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// decodePDFString resolves the escape sequences of a PDF literal string.
func decodePDFString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b', 'f':
			// Ignored control escapes.
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
