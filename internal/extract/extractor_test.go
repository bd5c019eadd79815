package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRegistry_ExtractFile_Text(t *testing.T) {
	registry := NewRegistry()

	text, err := registry.ExtractFile("contract.txt", []byte("The Client shall pay all fees."))
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if text != "The Client shall pay all fees." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestRegistry_ExtractFile_UppercaseExtension(t *testing.T) {
	registry := NewRegistry()

	text, err := registry.ExtractFile("CONTRACT.TXT", []byte("payload"))
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if text != "payload" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestRegistry_ExtractFile_Unsupported(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.ExtractFile("contract.xlsx", []byte("data"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRegistry_Supports(t *testing.T) {
	registry := NewRegistry()

	for _, format := range []string{"txt", "text", "pdf", "docx", "html", "htm", "TXT"} {
		if !registry.Supports(format) {
			t.Errorf("expected %q to be supported", format)
		}
	}
	if registry.Supports("xlsx") {
		t.Error("xlsx must not be supported")
	}
}

type rotExtractor struct{}

func (e *rotExtractor) CanExtract(format string) bool { return format == "rot" }
func (e *rotExtractor) Extract(data []byte) (string, error) {
	return string(data), nil
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&rotExtractor{})

	if !registry.Supports("rot") {
		t.Error("registered extractor not found")
	}
	text, err := registry.ExtractFile("file.rot", []byte("ok"))
	if err != nil || text != "ok" {
		t.Errorf("ExtractFile via registered extractor = %q, %v", text, err)
	}
}

func TestDocxExtractor_Extract(t *testing.T) {
	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(document)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	text, err := NewDocxExtractor().Extract(buf.Bytes())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !strings.Contains(text, "First paragraph.") {
		t.Errorf("missing first paragraph in %q", text)
	}
	if !strings.Contains(text, "Second paragraph.") {
		t.Errorf("split runs must concatenate: %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Errorf("paragraphs must be newline separated: %q", text)
	}
}

func TestDocxExtractor_Extract_NotAnArchive(t *testing.T) {
	_, err := NewDocxExtractor().Extract([]byte("plain bytes"))
	if err == nil {
		t.Error("expected error for non-zip input")
	}
}

func TestDocxExtractor_Extract_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("word/other.xml")
	_, _ = f.Write([]byte("<x/>"))
	_ = zw.Close()

	_, err := NewDocxExtractor().Extract(buf.Bytes())
	if err == nil {
		t.Error("expected error for archive without word/document.xml")
	}
}

func TestHTMLExtractor_Extract(t *testing.T) {
	page := `<html><head><style>p{color:red}</style><script>var x=1;</script></head>
<body><h1>Terms</h1><p>The Client shall pay all fees.</p></body></html>`

	text, err := NewHTMLExtractor().Extract([]byte(page))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !strings.Contains(text, "Terms") || !strings.Contains(text, "The Client shall pay all fees.") {
		t.Errorf("missing visible text: %q", text)
	}
	if strings.Contains(text, "var x=1") || strings.Contains(text, "color:red") {
		t.Errorf("script/style content leaked: %q", text)
	}
}

func TestTextExtractor_Formats(t *testing.T) {
	e := NewTextExtractor()

	if !e.CanExtract("txt") || !e.CanExtract("text") {
		t.Error("text extractor must handle txt and text")
	}
	if e.CanExtract("pdf") {
		t.Error("text extractor must not claim pdf")
	}
}
