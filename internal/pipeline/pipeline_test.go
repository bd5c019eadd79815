package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestAnalyzer_Analyze_EmptyInput(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := analyzer.Analyze(context.Background(), text)
		if !errors.Is(err, model.ErrEmptyInput) {
			t.Errorf("Analyze(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestAnalyzer_Analyze_ContractReport(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	text := "This Agreement shall terminate after 30 days. The Client shall pay a penalty fee for any breach."
	report, err := analyzer.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Statistics.TotalClauses != 2 {
		t.Errorf("TotalClauses = %d, want 2", report.Statistics.TotalClauses)
	}
	if report.Statistics.RiskDistribution["low"] != 1 || report.Statistics.RiskDistribution["high"] != 1 {
		t.Errorf("unexpected risk distribution: %v", report.Statistics.RiskDistribution)
	}
	if report.Statistics.TypeDistribution["termination"] != 1 || report.Statistics.TypeDistribution["payment"] != 1 {
		t.Errorf("unexpected type distribution: %v", report.Statistics.TypeDistribution)
	}
	// Importances 8 and 9
	if report.Statistics.AvgImportanceScore != 8.5 {
		t.Errorf("AvgImportanceScore = %v, want 8.5", report.Statistics.AvgImportanceScore)
	}

	// "after 30 days" appears in segment 0
	if len(report.TimelineInfo) != 1 || report.TimelineInfo[0].SentenceID != 0 {
		t.Errorf("unexpected timeline: %+v", report.TimelineInfo)
	}

	// Both clauses qualify for review: importance 8 and high risk
	if len(report.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(report.Suggestions))
	}
	if report.Suggestions[0].ClauseID != 1 {
		t.Errorf("suggestion for clause %d, want 1", report.Suggestions[0].ClauseID)
	}

	// No sentiment backend: fixed fallback tone
	if report.ToneAnalysis.OverallSentiment != "neutral" {
		t.Errorf("OverallSentiment = %q, want neutral", report.ToneAnalysis.OverallSentiment)
	}

	if report.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt must be set")
	}
}

func TestAnalyzer_Analyze_NoClauses(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	report, err := analyzer.Analyze(context.Background(), "A short walk in the park was had by everyone present")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Statistics.TotalClauses != 0 {
		t.Errorf("TotalClauses = %d, want 0", report.Statistics.TotalClauses)
	}
	if report.Statistics.AvgImportanceScore != 0 {
		t.Errorf("AvgImportanceScore = %v, want 0 for no clauses", report.Statistics.AvgImportanceScore)
	}
}

func TestAnalyzer_Analyze_CachedResultReused(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "cache")

	analyzer := NewAnalyzer(cfg, nil)
	text := "The Client shall pay all fees on schedule."

	first, err := analyzer.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}

	second, err := analyzer.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}

	if !first.AnalyzedAt.Equal(second.AnalyzedAt) {
		t.Error("cached report should preserve the original analysis time")
	}
	if second.Statistics.TotalClauses != first.Statistics.TotalClauses {
		t.Error("cached report differs from original")
	}
}

func TestAnalyzer_Compare_RequiresBothDocuments(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	if _, err := analyzer.Compare("", "some text"); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for empty doc1, got %v", err)
	}
	if _, err := analyzer.Compare("some text", "  "); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for empty doc2, got %v", err)
	}
}

func TestAnalyzer_AnalyzeFile_TextDocument(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	path := filepath.Join(t.TempDir(), "contract.txt")
	content := "The Client shall pay a penalty fee for any breach."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	report, err := analyzer.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if report.Statistics.TotalClauses != 1 {
		t.Errorf("TotalClauses = %d, want 1", report.Statistics.TotalClauses)
	}
}

func TestAnalyzer_AnalyzeFile_MissingFile(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	_, err := analyzer.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRenderer_RenderJSONAndMarkdown(t *testing.T) {
	analyzer := NewAnalyzer(testConfig(), nil)

	report, err := analyzer.Analyze(context.Background(), "The Client shall pay a penalty fee for any breach.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	dir := t.TempDir()
	renderer := NewRenderer(true)

	jsonPath := filepath.Join(dir, "report.json")
	if err := renderer.RenderJSON(report, jsonPath); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if info, err := os.Stat(jsonPath); err != nil || info.Size() == 0 {
		t.Errorf("JSON report missing or empty: %v", err)
	}

	mdPath := filepath.Join(dir, "report.md")
	if err := renderer.RenderMarkdown(report, mdPath); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	md := string(data)
	for _, section := range []string{"# Document Analysis", "## Statistics", "## Clauses", "## Tone"} {
		if !strings.Contains(md, section) {
			t.Errorf("markdown missing section %q", section)
		}
	}
}
