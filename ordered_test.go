package ordered_test

import (
	"testing"

	"github.com/npillmayer/ordered"
)

func TestNaturalComparator(t *testing.T) {
	cmp := ordered.Natural[int]()
	if cmp(1, 2) >= 0 || cmp(2, 1) <= 0 || cmp(1, 1) != 0 {
		t.Error("natural comparator does not order ints ascending")
	}
}

func TestNaturalComparatorOverStrings(t *testing.T) {
	cmp := ordered.Natural[string]()
	if cmp("abc", "abd") >= 0 {
		t.Error(`expected "abc" to order before "abd"`)
	}
}

func TestReverseComparator(t *testing.T) {
	cmp := ordered.Reverse(ordered.Natural[int]())
	if cmp(1, 2) <= 0 || cmp(2, 1) >= 0 || cmp(1, 1) != 0 {
		t.Error("reverse comparator does not order ints descending")
	}
}
