package extract

// TextExtractor handles plain-text documents.
type TextExtractor struct{}

// NewTextExtractor creates a plain-text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// CanExtract reports whether the format is plain text.
func (e *TextExtractor) CanExtract(format string) bool {
	return format == "txt" || format == "text"
}

// Extract passes the bytes through as UTF-8 text.
func (e *TextExtractor) Extract(data []byte) (string, error) {
	return string(data), nil
}
