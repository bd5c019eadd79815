package model

// Segment is one delimiter-bounded span of document text treated as a
// clause candidate. Segments preserve original document order.
type Segment struct {
	Index   int    `json:"index"`   // 0-based position in split order
	Raw     string `json:"-"`       // Untrimmed span as split from the source
	Trimmed string `json:"trimmed"` // Whitespace-trimmed text
}

// Clause is the classification record for one segment. A segment with no
// matched category never produces a Clause.
type Clause struct {
	ID              int       `json:"id"` // = segment index
	Text            string    `json:"text"`
	Types           []string  `json:"types"` // Matched category tags, table order
	RiskLevel       RiskLevel `json:"risk_level"`
	ImportanceScore int       `json:"importance_score"` // Always in [1,10]
	Position        int       `json:"position"`         // = segment index
}

// RiskLevel classifies a clause's contractual risk exposure.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TimelineEntry holds the temporal references found in one segment.
// An entry exists only if at least one of the three lists is non-empty.
type TimelineEntry struct {
	SentenceID int      `json:"sentence_id"`
	Text       string   `json:"text"`
	Dates      []string `json:"dates"`     // Raw matched date strings
	Durations  []string `json:"durations"` // Raw matched duration strings
	Deadlines  []string `json:"deadlines"` // Matched deadline cue words
}

// BoilerplateMatch flags a segment matching a known standard-clause pattern.
// First pattern wins: at most one match per segment.
type BoilerplateMatch struct {
	ID             int     `json:"id"`
	Text           string  `json:"text"`
	PatternMatched string  `json:"pattern_matched"`
	Confidence     float64 `json:"confidence"` // Fixed 0.8
}

// ToneProfile is the document-level tone aggregate.
type ToneProfile struct {
	OverallSentiment   string   `json:"overall_sentiment"`
	FormalityScore     float64  `json:"formality_score"`     // 0-10, 1 decimal
	AssertivenessScore float64  `json:"assertiveness_score"` // 0-10, 1 decimal
	RiskTone           RiskTone `json:"risk_tone"`
}

// RiskTone grades the density of risk language across the sampled prefix.
type RiskTone string

const (
	RiskToneLow      RiskTone = "low"
	RiskToneModerate RiskTone = "moderate"
	RiskToneHigh     RiskTone = "high"
)

// RewriteSuggestion proposes fixes for a risky or important clause.
// Issues and Suggestions correspond pairwise, in trigger order.
type RewriteSuggestion struct {
	ClauseID     int      `json:"clause_id"`
	OriginalText string   `json:"original_text"`
	Issues       []string `json:"issues"`
	Suggestions  []string `json:"suggestions"`
}

// ComparisonResult is the coarse structural diff of two documents based on
// which clause categories appear in each.
type ComparisonResult struct {
	Doc1UniqueTypes []string `json:"doc1_unique_types"`
	Doc2UniqueTypes []string `json:"doc2_unique_types"`
	CommonTypes     []string `json:"common_types"`
}
