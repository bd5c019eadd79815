package model

import (
	"errors"
	"time"
)

// ErrEmptyInput is returned when an analysis or comparison is requested
// with no text. Caller-visible, never retried.
var ErrEmptyInput = errors.New("no text provided")

// Report is the complete analysis result for one document.
type Report struct {
	AnalyzedAt time.Time `json:"analyzed_at"`

	Clauses      []Clause            `json:"clauses"`
	TimelineInfo []TimelineEntry     `json:"timeline_info"`
	Boilerplate  []BoilerplateMatch  `json:"boilerplate_clauses"`
	ToneAnalysis ToneProfile         `json:"tone_analysis"`
	Suggestions  []RewriteSuggestion `json:"rewriting_suggestions"`

	Statistics Statistics `json:"statistics"`
}

// Statistics summarizes the clause set of one report.
type Statistics struct {
	TotalClauses       int            `json:"total_clauses"`
	RiskDistribution   map[string]int `json:"risk_distribution"`
	TypeDistribution   map[string]int `json:"clause_type_distribution"`
	AvgImportanceScore float64        `json:"avg_importance_score"` // 2 decimals, 0 when no clauses
}
