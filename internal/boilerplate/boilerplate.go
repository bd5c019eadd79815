// Package boilerplate flags segments matching known standard-clause patterns.
package boilerplate

import (
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Confidence is the fixed confidence assigned to every boilerplate match.
const Confidence = 0.8

// Detector matches segments against the fixed boilerplate pattern list.
type Detector struct {
	patterns []*regexp.Regexp
}

// NewDetector compiles the six canonical boilerplate patterns, in the order
// they are tried per segment.
func NewDetector() *Detector {
	return &Detector{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`this agreement shall be governed by`),
			regexp.MustCompile(`entire agreement`),
			regexp.MustCompile(`severability`),
			regexp.MustCompile(`no waiver`),
			regexp.MustCompile(`counterparts`),
			regexp.MustCompile(`headings are for convenience only`),
		},
	}
}

// Detect scans every segment (no length filter) against the pattern list in
// order; the first matching pattern wins and the remaining patterns are
// skipped for that segment.
func (d *Detector) Detect(segments []model.Segment) []model.BoilerplateMatch {
	var matches []model.BoilerplateMatch

	for _, seg := range segments {
		lower := strings.ToLower(seg.Raw)

		for _, pattern := range d.patterns {
			if pattern.MatchString(lower) {
				matches = append(matches, model.BoilerplateMatch{
					ID:             seg.Index,
					Text:           seg.Trimmed,
					PatternMatched: pattern.String(),
					Confidence:     Confidence,
				})
				break
			}
		}
	}

	return matches
}
