// Package compare diffs the clause-category sets of two documents.
package compare

import (
	"sort"

	"github.com/clauselens/clauselens/internal/classify"
	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/segment"
)

// Comparator runs the segment+classify pipeline over two documents and
// diffs the resulting category-tag sets. Per-clause content is discarded:
// this is a deliberately coarse structural diff, not a textual diff.
type Comparator struct {
	classifier *classify.Classifier
}

// NewComparator creates a comparator over the given classifier.
func NewComparator(classifier *classify.Classifier) *Comparator {
	return &Comparator{classifier: classifier}
}

// Compare classifies both texts independently and returns the unique and
// common category sets. Output slices are sorted for deterministic JSON.
// Symmetric under swap: common types are identical, and the unique sets
// exchange places.
func (c *Comparator) Compare(doc1Text, doc2Text string) model.ComparisonResult {
	types1 := c.categorySet(doc1Text)
	types2 := c.categorySet(doc2Text)

	return model.ComparisonResult{
		Doc1UniqueTypes: difference(types1, types2),
		Doc2UniqueTypes: difference(types2, types1),
		CommonTypes:     intersection(types1, types2),
	}
}

// categorySet collects the union of category tags across all clauses.
func (c *Comparator) categorySet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, clause := range c.classifier.Classify(segment.Split(text)) {
		for _, t := range clause.Types {
			set[t] = true
		}
	}
	return set
}

func difference(a, b map[string]bool) []string {
	out := []string{}
	for t := range a {
		if !b[t] {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func intersection(a, b map[string]bool) []string {
	out := []string{}
	for t := range a {
		if b[t] {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
