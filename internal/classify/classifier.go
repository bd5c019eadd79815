// Package classify tags segments with clause categories and scores their
// risk tier and importance.
package classify

import (
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Classifier assigns category tags, risk levels, and importance scores to
// segments. Safe for concurrent use: the rule tables are never mutated.
type Classifier struct {
	rules     *Rules
	minLength int
}

// NewClassifier creates a classifier over the given rule tables. minLength
// is the trimmed-length cutoff below which segments are skipped; values
// below 1 fall back to MinSegmentLength.
func NewClassifier(rules *Rules, minLength int) *Classifier {
	if minLength < 1 {
		minLength = MinSegmentLength
	}
	return &Classifier{rules: rules, minLength: minLength}
}

// Classify produces one Clause per segment that is long enough and matches
// at least one category. Output preserves segment order; a segment with no
// matched category is never materialized.
func (c *Classifier) Classify(segments []model.Segment) []model.Clause {
	var clauses []model.Clause

	for _, seg := range segments {
		if len(seg.Trimmed) < c.minLength {
			continue
		}

		lower := strings.ToLower(seg.Trimmed)

		var types []string
		for _, cat := range c.rules.Categories {
			for _, pattern := range cat.Patterns {
				if pattern.MatchString(lower) {
					types = append(types, cat.Name)
					break // First match tags the category; scan the next one.
				}
			}
		}

		if len(types) == 0 {
			continue
		}

		clauses = append(clauses, model.Clause{
			ID:              seg.Index,
			Text:            seg.Trimmed,
			Types:           types,
			RiskLevel:       c.AssessRisk(seg.Trimmed),
			ImportanceScore: c.ScoreImportance(seg.Raw, types),
			Position:        seg.Index,
		})
	}

	return clauses
}

// AssessRisk assigns a risk tier from weighted keyword presence. Each tier
// counts how many of its keywords appear as substrings (containment, not
// word-boundary matching, so "default" inside a longer word counts too).
// Any high-tier hit wins; a medium/low tie resolves to low.
func (c *Classifier) AssessRisk(text string) model.RiskLevel {
	lower := strings.ToLower(text)

	high := countPresent(lower, c.rules.HighRisk)
	medium := countPresent(lower, c.rules.MediumRisk)
	low := countPresent(lower, c.rules.LowRisk)

	switch {
	case high > 0:
		return model.RiskHigh
	case medium > low:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// ScoreImportance computes the bounded importance score for a clause.
// Base 5, +2 per important category tag, +1 for raw length over 200, plus
// the number of legal keywords present capped at 3. Clamped to 10; the
// floor of 1 holds because every adjustment is non-negative.
func (c *Classifier) ScoreImportance(rawText string, types []string) int {
	score := 5

	for _, t := range types {
		for _, important := range c.rules.ImportantTypes {
			if t == important {
				score += 2
				break
			}
		}
	}

	if len(rawText) > 200 {
		score++
	}

	keywords := countPresent(strings.ToLower(rawText), c.rules.LegalKeywords)
	if keywords > 3 {
		keywords = 3
	}
	score += keywords

	if score > 10 {
		score = 10
	}
	return score
}

// countPresent counts how many keywords appear in the lower-cased text.
// Presence per keyword, not occurrence count.
func countPresent(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}
