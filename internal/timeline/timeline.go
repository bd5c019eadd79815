// Package timeline finds dates, durations, and deadline cues per segment.
package timeline

import (
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

// Extractor scans segments for temporal references. Patterns are compiled
// once and shared read-only.
type Extractor struct {
	datePatterns     []*regexp.Regexp
	durationPatterns []*regexp.Regexp
	deadlineCues     []string
}

// NewExtractor creates a timeline extractor with the canonical pattern set.
func NewExtractor() *Extractor {
	return &Extractor{
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d{1,2}/\d{1,2}/\d{4}\b`),
			regexp.MustCompile(`(?i)\b\d{1,2}-\d{1,2}-\d{4}\b`),
			regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+\d{1,2},?\s+\d{4}\b`),
			regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:` + monthNames + `)\s+\d{4}\b`),
		},
		durationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b\d+\s+(?:days?|weeks?|months?|years?)\b`),
			regexp.MustCompile(`(?i)\b(?:within|after|before)\s+\d+\s+(?:days?|weeks?|months?|years?)\b`),
			regexp.MustCompile(`(?i)\b\d+\s+(?:day|week|month|year)\s+(?:period|term)\b`),
		},
		deadlineCues: []string{"deadline", "due date", "expiry", "termination date", "completion date"},
	}
}

// Extract emits one entry per segment with at least one temporal match.
// Matching runs over the untrimmed segment text; no length filter applies,
// so segments too short for classification still appear here. All deadline
// cues present are recorded independently.
func (e *Extractor) Extract(segments []model.Segment) []model.TimelineEntry {
	var entries []model.TimelineEntry

	for _, seg := range segments {
		entry := model.TimelineEntry{
			SentenceID: seg.Index,
			Text:       seg.Trimmed,
		}

		for _, pattern := range e.datePatterns {
			entry.Dates = append(entry.Dates, pattern.FindAllString(seg.Raw, -1)...)
		}

		for _, pattern := range e.durationPatterns {
			entry.Durations = append(entry.Durations, pattern.FindAllString(seg.Raw, -1)...)
		}

		lower := strings.ToLower(seg.Raw)
		for _, cue := range e.deadlineCues {
			if strings.Contains(lower, cue) {
				entry.Deadlines = append(entry.Deadlines, cue)
			}
		}

		if len(entry.Dates) > 0 || len(entry.Durations) > 0 || len(entry.Deadlines) > 0 {
			entries = append(entries, entry)
		}
	}

	return entries
}
