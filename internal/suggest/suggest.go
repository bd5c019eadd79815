// Package suggest derives rewrite suggestions for risky or important clauses.
package suggest

import (
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// importanceThreshold selects clauses for review alongside high risk.
const importanceThreshold = 8

// Generator proposes rewrites for flagged clauses.
type Generator struct{}

// NewGenerator creates a suggestion generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate emits one suggestion per clause that is high risk or at least
// importance 8 AND triggers at least one check. The four checks run
// independently; each appends an (issue, suggestion) pair in order.
func (g *Generator) Generate(clauses []model.Clause) []model.RewriteSuggestion {
	var suggestions []model.RewriteSuggestion

	for _, clause := range clauses {
		if clause.RiskLevel != model.RiskHigh && clause.ImportanceScore < importanceThreshold {
			continue
		}

		s := model.RewriteSuggestion{
			ClauseID:     clause.ID,
			OriginalText: clause.Text,
		}

		lower := strings.ToLower(clause.Text)

		if strings.Contains(lower, "may") {
			s.Issues = append(s.Issues, `Ambiguous language - "may" creates uncertainty`)
			s.Suggestions = append(s.Suggestions, `Replace "may" with "shall" or "will" for clarity`)
		}

		if strings.Contains(lower, "reasonable") && !strings.Contains(lower, "commercially reasonable") {
			s.Issues = append(s.Issues, `Vague standard - "reasonable" is subjective`)
			s.Suggestions = append(s.Suggestions, `Define specific criteria for what constitutes "reasonable"`)
		}

		if len(clause.Text) > 300 {
			s.Issues = append(s.Issues, "Overly complex sentence structure")
			s.Suggestions = append(s.Suggestions, "Break into shorter, clearer sentences")
		}

		for _, term := range []string{"penalty", "forfeit", "liquidated damages"} {
			if strings.Contains(lower, term) {
				s.Issues = append(s.Issues, "High financial risk language")
				s.Suggestions = append(s.Suggestions, "Consider adding caps or limitations on penalties")
				break
			}
		}

		// A clause that triggers no checks produces no suggestion at all.
		if len(s.Issues) > 0 {
			suggestions = append(suggestions, s)
		}
	}

	return suggestions
}
