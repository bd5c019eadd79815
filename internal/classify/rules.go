package classify

import "regexp"

// MinSegmentLength is the trimmed length below which a segment is excluded
// from clause classification. Timeline and boilerplate passes do not apply
// this filter.
const MinSegmentLength = 20

// CategoryRule binds one clause category to its ordered pattern list.
// Patterns are applied to lower-cased text; the first match tags the
// category and ends the per-category scan.
type CategoryRule struct {
	Name     string
	Patterns []*regexp.Regexp
}

// Rules is the immutable pattern and keyword table set for classification
// and scoring. Built once at startup and shared read-only across all
// concurrent invocations.
type Rules struct {
	Categories []CategoryRule

	HighRisk   []string
	MediumRisk []string
	LowRisk    []string

	ImportantTypes []string
	LegalKeywords  []string
}

// DefaultRules builds the canonical rule tables. A malformed pattern is a
// programming error and aborts initialization.
func DefaultRules() *Rules {
	compile := func(patterns ...string) []*regexp.Regexp {
		res := make([]*regexp.Regexp, len(patterns))
		for i, p := range patterns {
			res[i] = regexp.MustCompile(p)
		}
		return res
	}

	return &Rules{
		Categories: []CategoryRule{
			{Name: "payment", Patterns: compile(`payment`, `fee`, `cost`, `price`, `remuneration`, `compensation`)},
			{Name: "termination", Patterns: compile(`terminate`, `end`, `expire`, `cancel`, `dissolution`)},
			{Name: "liability", Patterns: compile(`liable`, `liability`, `responsible`, `damages`, `loss`)},
			{Name: "confidentiality", Patterns: compile(`confidential`, `non-disclosure`, `proprietary`, `trade secret`)},
			// "IP" is matched against lower-cased text and therefore never
			// fires; kept for compatibility with the published rule set.
			{Name: "intellectual_property", Patterns: compile(`copyright`, `patent`, `trademark`, `intellectual property`, `IP`)},
			{Name: "warranty", Patterns: compile(`warrant`, `guarantee`, `representation`, `condition`)},
			{Name: "dispute_resolution", Patterns: compile(`dispute`, `arbitration`, `mediation`, `court`, `jurisdiction`)},
			{Name: "force_majeure", Patterns: compile(`force majeure`, `act of god`, `unforeseeable`, `beyond control`)},
			{Name: "governing_law", Patterns: compile(`governing law`, `applicable law`, `jurisdiction`, `venue`)},
			{Name: "amendment", Patterns: compile(`amend`, `modify`, `change`, `alter`, `update`)},
		},

		HighRisk:   []string{"penalty", "breach", "default", "liquidated damages", "forfeit", "void", "null"},
		MediumRisk: []string{"may", "discretion", "reasonable", "commercially reasonable", "best efforts"},
		LowRisk:    []string{"shall", "will", "must", "required", "mandatory"},

		ImportantTypes: []string{"liability", "payment", "termination", "intellectual_property"},
		LegalKeywords:  []string{"shall", "liable", "damages", "breach", "default"},
	}
}
