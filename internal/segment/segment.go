// Package segment splits raw document text into ordered clause candidates.
package segment

import (
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Split segments text on the literal period character. This is a
// deliberately naive, deterministic, locale-independent rule: no sentence
// boundary detection, no abbreviation handling. No filtering happens here;
// minimum-length filtering is applied by the classifier alone, so short
// segments still reach the timeline and boilerplate passes.
func Split(text string) []model.Segment {
	parts := strings.Split(text, ".")

	segments := make([]model.Segment, len(parts))
	for i, part := range parts {
		segments[i] = model.Segment{
			Index:   i,
			Raw:     part,
			Trimmed: strings.TrimSpace(part),
		}
	}

	return segments
}
