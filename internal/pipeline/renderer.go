package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Renderer writes analysis reports as JSON and Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to path.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to path.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# Document Analysis\n\n")
	fmt.Fprintf(&b, "Analyzed at: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- Total clauses: %d\n", report.Statistics.TotalClauses)
	fmt.Fprintf(&b, "- Average importance: %.2f\n", report.Statistics.AvgImportanceScore)
	for _, tier := range []string{"low", "medium", "high"} {
		if n, ok := report.Statistics.RiskDistribution[tier]; ok {
			fmt.Fprintf(&b, "- Risk %s: %d\n", tier, n)
		}
	}
	b.WriteString("\n")

	if len(report.Clauses) > 0 {
		b.WriteString("## Clauses\n\n")
		for _, clause := range report.Clauses {
			fmt.Fprintf(&b, "### Clause %d (%s risk, importance %d)\n\n",
				clause.ID, clause.RiskLevel, clause.ImportanceScore)
			fmt.Fprintf(&b, "Types: %s\n\n", strings.Join(clause.Types, ", "))
			fmt.Fprintf(&b, "> %s\n\n", clause.Text)
		}
	}

	if len(report.TimelineInfo) > 0 {
		b.WriteString("## Timeline\n\n")
		for _, entry := range report.TimelineInfo {
			fmt.Fprintf(&b, "- Sentence %d:", entry.SentenceID)
			if len(entry.Dates) > 0 {
				fmt.Fprintf(&b, " dates: %s;", strings.Join(entry.Dates, ", "))
			}
			if len(entry.Durations) > 0 {
				fmt.Fprintf(&b, " durations: %s;", strings.Join(entry.Durations, ", "))
			}
			if len(entry.Deadlines) > 0 {
				fmt.Fprintf(&b, " deadlines: %s;", strings.Join(entry.Deadlines, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(report.Boilerplate) > 0 {
		b.WriteString("## Boilerplate\n\n")
		for _, m := range report.Boilerplate {
			fmt.Fprintf(&b, "- Sentence %d matched `%s` (confidence %.1f)\n", m.ID, m.PatternMatched, m.Confidence)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Tone\n\n")
	fmt.Fprintf(&b, "- Overall sentiment: %s\n", report.ToneAnalysis.OverallSentiment)
	fmt.Fprintf(&b, "- Formality: %.1f/10\n", report.ToneAnalysis.FormalityScore)
	fmt.Fprintf(&b, "- Assertiveness: %.1f/10\n", report.ToneAnalysis.AssertivenessScore)
	fmt.Fprintf(&b, "- Risk tone: %s\n\n", report.ToneAnalysis.RiskTone)

	if len(report.Suggestions) > 0 {
		b.WriteString("## Rewriting Suggestions\n\n")
		for _, s := range report.Suggestions {
			fmt.Fprintf(&b, "### Clause %d\n\n", s.ClauseID)
			for i, issue := range s.Issues {
				fmt.Fprintf(&b, "- %s → %s\n", issue, s.Suggestions[i])
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by clauselens. Rule-based annotation, not legal advice.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short report summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("Clauses: %d (avg importance %.2f)\n",
		report.Statistics.TotalClauses, report.Statistics.AvgImportanceScore)
	fmt.Printf("Risk distribution: low=%d medium=%d high=%d\n",
		report.Statistics.RiskDistribution["low"],
		report.Statistics.RiskDistribution["medium"],
		report.Statistics.RiskDistribution["high"])
	fmt.Printf("Timeline entries: %d, boilerplate matches: %d, suggestions: %d\n",
		len(report.TimelineInfo), len(report.Boilerplate), len(report.Suggestions))
	fmt.Printf("Tone: %s (formality %.1f, assertiveness %.1f, risk tone %s)\n",
		report.ToneAnalysis.OverallSentiment,
		report.ToneAnalysis.FormalityScore,
		report.ToneAnalysis.AssertivenessScore,
		report.ToneAnalysis.RiskTone)
}
