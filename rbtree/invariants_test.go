package rbtree

import (
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// The classic torture sequence: a mix of inserts (with one duplicate) and
// deletions which together exercise every insertion and deletion
// rebalancing case. All three invariants are re-validated after every
// single step.
func TestInvariantsUnderMixedWorkload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	inserts := []int{50, 40, 30, 10, 20, 30, 100, 0, 45, 55, 25, 15}
	deletes := []int{55, 50, 45, 40, 30, 25, 20, 15}
	m := Immutable[int, int](ordered.Natural[int]())
	for _, k := range inserts {
		m = m.With(k, k)
		require.NoError(t, m.Validate(), "invariants broken after inserting %d:%s", k, printTree(m))
	}
	require.Equal(t, 11, m.Len(), "one duplicate in 12 inserts should leave 11 entries")

	minKey, _ := m.Min()
	maxKey, _ := m.Max()
	require.Equal(t, 0, minKey)
	require.Equal(t, 100, maxKey)

	for _, k := range deletes {
		m = m.WithDeleted(k)
		require.NoError(t, m.Validate(), "invariants broken after deleting %d:%s", k, printTree(m))
		require.False(t, m.Has(k), "key %d still present after deletion", k)
	}
	require.Equal(t, 3, m.Len())
	require.ElementsMatch(t, []int{0, 10, 100}, m.Keys())
}

func TestInvariantsUnderAscendingInserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := Immutable[int, int](ordered.Natural[int]())
	for i := 0; i < 256; i++ {
		m = m.With(i, i)
		require.NoError(t, m.Validate(), "invariants broken after inserting %d", i)
	}
	for i := 0; i < 256; i += 2 {
		m = m.WithDeleted(i)
		require.NoError(t, m.Validate(), "invariants broken after deleting %d", i)
	}
	require.Equal(t, 128, m.Len())
}

func TestValidateRejectsRedRedViolation(t *testing.T) {
	bad := Map[int, int]{cmp: ordered.Natural[int]()}
	bad.root = branch(Black,
		branch(Red,
			branch[int, int](Red, nil, ordered.Entry[int, int]{Key: 1, Value: 1}, nil),
			ordered.Entry[int, int]{Key: 2, Value: 2},
			nil),
		ordered.Entry[int, int]{Key: 3, Value: 3},
		nil)
	if err := bad.Validate(); err == nil {
		t.Error("expected red-red violation to be detected, wasn't")
	}
}

func TestValidateRejectsBlackImbalance(t *testing.T) {
	bad := Map[int, int]{cmp: ordered.Natural[int]()}
	bad.root = branch(Black,
		branch[int, int](Black, nil, ordered.Entry[int, int]{Key: 1, Value: 1}, nil),
		ordered.Entry[int, int]{Key: 2, Value: 2},
		nil)
	if err := bad.Validate(); err == nil {
		t.Error("expected black-height imbalance to be detected, wasn't")
	}
}

func TestValidateRejectsOrderViolation(t *testing.T) {
	bad := Map[int, int]{cmp: ordered.Natural[int]()}
	bad.root = branch(Black,
		branch[int, int](Red, nil, ordered.Entry[int, int]{Key: 9, Value: 9}, nil), // out of order
		ordered.Entry[int, int]{Key: 2, Value: 2},
		branch[int, int](Red, nil, ordered.Entry[int, int]{Key: 3, Value: 3}, nil))
	if err := bad.Validate(); err == nil {
		t.Error("expected search-order violation to be detected, wasn't")
	}
}

func TestValidateRejectsEscapedTransientColor(t *testing.T) {
	bad := Map[int, int]{cmp: ordered.Natural[int]()}
	bad.root = branch[int, int](Black, doubleBlackLeaf[int, int](),
		ordered.Entry[int, int]{Key: 2, Value: 2},
		branch[int, int](Black, nil, ordered.Entry[int, int]{Key: 3, Value: 3}, nil))
	if err := bad.Validate(); err == nil {
		t.Error("expected escaped double-black leaf to be detected, wasn't")
	}
}

func TestColorScaleEndsFailFast(t *testing.T) {
	require.Panics(t, func() { DoubleBlack.blacker() }, "blacker(double-black) must panic")
	require.Panics(t, func() { NegativeBlack.redder() }, "redder(negative-black) must panic")
}

func TestReddenEmptyTreeFailsFast(t *testing.T) {
	require.Panics(t, func() {
		var n *node[int, int]
		n.asRed()
	}, "reddening an empty tree must panic")
}
