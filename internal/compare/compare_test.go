package compare

import (
	"reflect"
	"testing"

	"github.com/clauselens/clauselens/internal/classify"
)

func newComparator() *Comparator {
	return NewComparator(classify.NewClassifier(classify.DefaultRules(), 0))
}

func TestComparator_Compare_DisjointAndCommonTypes(t *testing.T) {
	c := newComparator()

	doc1 := "The Client shall pay all fees on time. This Agreement shall terminate after 30 days."
	doc2 := "The Client shall pay all fees on time. All proprietary information stays confidential."

	result := c.Compare(doc1, doc2)

	if !reflect.DeepEqual(result.Doc1UniqueTypes, []string{"termination"}) {
		t.Errorf("Doc1UniqueTypes = %v, want [termination]", result.Doc1UniqueTypes)
	}
	if !reflect.DeepEqual(result.Doc2UniqueTypes, []string{"confidentiality"}) {
		t.Errorf("Doc2UniqueTypes = %v, want [confidentiality]", result.Doc2UniqueTypes)
	}
	if !reflect.DeepEqual(result.CommonTypes, []string{"payment"}) {
		t.Errorf("CommonTypes = %v, want [payment]", result.CommonTypes)
	}
}

func TestComparator_Compare_SymmetricUnderSwap(t *testing.T) {
	c := newComparator()

	doc1 := "The Client shall pay all fees on time. This Agreement shall terminate after 30 days."
	doc2 := "All proprietary information stays confidential between the parties."

	forward := c.Compare(doc1, doc2)
	backward := c.Compare(doc2, doc1)

	if !reflect.DeepEqual(forward.Doc1UniqueTypes, backward.Doc2UniqueTypes) {
		t.Errorf("unique sets must swap: %v vs %v", forward.Doc1UniqueTypes, backward.Doc2UniqueTypes)
	}
	if !reflect.DeepEqual(forward.Doc2UniqueTypes, backward.Doc1UniqueTypes) {
		t.Errorf("unique sets must swap: %v vs %v", forward.Doc2UniqueTypes, backward.Doc1UniqueTypes)
	}
	if !reflect.DeepEqual(forward.CommonTypes, backward.CommonTypes) {
		t.Errorf("common types must be identical: %v vs %v", forward.CommonTypes, backward.CommonTypes)
	}
}

func TestComparator_Compare_IdenticalDocuments(t *testing.T) {
	c := newComparator()

	doc := "The Client shall pay all fees on time."
	result := c.Compare(doc, doc)

	if len(result.Doc1UniqueTypes) != 0 || len(result.Doc2UniqueTypes) != 0 {
		t.Errorf("identical documents must have no unique types: %v / %v",
			result.Doc1UniqueTypes, result.Doc2UniqueTypes)
	}
	if !reflect.DeepEqual(result.CommonTypes, []string{"payment"}) {
		t.Errorf("CommonTypes = %v, want [payment]", result.CommonTypes)
	}
}

func TestComparator_Compare_EmptySlicesNotNil(t *testing.T) {
	c := newComparator()

	// Neither text classifies to anything; all result sets must be empty,
	// non-nil slices so JSON renders [] instead of null
	result := c.Compare("short", "words")

	if result.Doc1UniqueTypes == nil || result.Doc2UniqueTypes == nil || result.CommonTypes == nil {
		t.Error("result slices must be non-nil")
	}
	if len(result.CommonTypes) != 0 {
		t.Errorf("expected no common types, got %v", result.CommonTypes)
	}
}

func TestComparator_Compare_SortedOutput(t *testing.T) {
	c := newComparator()

	doc1 := "The warranty covers defects and the fee covers termination costs under applicable law here."
	result := c.Compare(doc1, "nothing relevant in this text at all")

	for i := 1; i < len(result.Doc1UniqueTypes); i++ {
		if result.Doc1UniqueTypes[i-1] > result.Doc1UniqueTypes[i] {
			t.Errorf("Doc1UniqueTypes not sorted: %v", result.Doc1UniqueTypes)
		}
	}
}
