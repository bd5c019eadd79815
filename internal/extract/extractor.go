// Package extract converts uploaded document bytes into plain text for the
// annotation pipeline. One extractor per format, selected by a registry
// keyed on the lower-cased format tag (file extension without the dot).
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for formats with no registered extractor.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extractor converts raw file bytes of a supported format into plain text.
// Extraction failures are explicit errors; error text is never embedded in
// the returned text value.
type Extractor interface {
	CanExtract(format string) bool
	Extract(data []byte) (string, error)
}

// Registry selects an extractor by format tag.
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates a registry with the default extractor set.
func NewRegistry() *Registry {
	return &Registry{
		extractors: []Extractor{
			NewTextExtractor(),
			NewPDFExtractor(),
			NewDocxExtractor(),
			NewHTMLExtractor(),
		},
	}
}

// Register adds an extractor. Later registrations are tried after the
// defaults.
func (r *Registry) Register(e Extractor) {
	r.extractors = append(r.extractors, e)
}

// Supports reports whether any extractor handles the format.
func (r *Registry) Supports(format string) bool {
	format = normalizeFormat(format)
	for _, e := range r.extractors {
		if e.CanExtract(format) {
			return true
		}
	}
	return false
}

// ExtractFile converts file bytes to text using the extractor registered
// for the file's extension.
func (r *Registry) ExtractFile(filename string, data []byte) (string, error) {
	format := normalizeFormat(strings.TrimPrefix(filepath.Ext(filename), "."))

	for _, e := range r.extractors {
		if e.CanExtract(format) {
			text, err := e.Extract(data)
			if err != nil {
				return "", fmt.Errorf("extract %s: %w", format, err)
			}
			return text, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
