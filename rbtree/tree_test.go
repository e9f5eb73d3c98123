package rbtree

import (
	"fmt"
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestCreateEmptyMap(t *testing.T) {
	m := Immutable[int, string](ordered.Natural[int]())
	if m.Len() != 0 || !m.IsEmpty() {
		t.Errorf("expected fresh map to be empty, has %d entries", m.Len())
	}
}

func TestZeroValueMapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected zero-value map to panic on insert, didn't")
		}
	}()
	var m Map[int, int]
	m.With(7, 7)
}

func TestFindInEmptyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	m := Immutable[int, string](ordered.Natural[int]())
	v, found := m.Find(7)
	if found {
		t.Error("did not expect to find '7' in empty map")
	}
	if v != "" {
		t.Errorf("expected value for '7' in empty map to be void, is %v", v)
	}
}

func TestInsertAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := Immutable[int, string](ordered.Natural[int]())
	m = m.With(7, "7")
	if v, found := m.Find(7); !found || v != "7" {
		t.Logf("map =%s", printTree(m))
		t.Errorf("expected to find 7→\"7\", got (%v, %v)", v, found)
	}
	if m.root.col() != Black {
		t.Logf("map =%s", printTree(m))
		t.Error("expected root of 1-entry map to be black, isn't")
	}
}

func TestInsertLeavesReceiverUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m1 := Of(ordered.Natural[int](),
		ordered.Entry[int, string]{Key: 1, Value: "1"},
		ordered.Entry[int, string]{Key: 2, Value: "2"},
	)
	m2 := m1.With(3, "3")
	if m1.Len() != 2 {
		t.Errorf("expected predecessor incarnation to keep 2 entries, has %d", m1.Len())
	}
	if m2.Len() != 3 {
		t.Errorf("expected new incarnation to have 3 entries, has %d", m2.Len())
	}
	if m1.Has(3) {
		t.Error("insertion leaked into predecessor incarnation")
	}
}

func TestInsertDuplicateKeyReplacesValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := Immutable[int, string](ordered.Natural[int]())
	m = m.With(7, "old").With(7, "new")
	if m.Len() != 1 {
		t.Logf("map =%s", printTree(m))
		t.Errorf("expected duplicate insert to keep size at 1, is %d", m.Len())
	}
	if v, _ := m.Find(7); v != "new" {
		t.Errorf("expected duplicate insert to replace value, found %q", v)
	}
}

func TestSizeAfterDistinctInserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := Immutable[int, int](ordered.Natural[int]())
	const n = 100
	for i := 0; i < n; i++ {
		m = m.With(i*3, i)
	}
	if m.Len() != n {
		t.Errorf("expected map of %d distinct keys to have size %d, has %d", n, n, m.Len())
	}
}

func TestDeleteRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := Of(ordered.Natural[int](),
		entryList(10, 20, 30, 40, 50)...,
	)
	m = m.WithDeleted(30)
	if _, found := m.Find(30); found {
		t.Logf("map =%s", printTree(m))
		t.Error("expected 30 to be gone after deletion, isn't")
	}
	if m.Len() != 4 {
		t.Errorf("expected 4 entries after deletion, have %d", m.Len())
	}
}

func TestDeleteAbsentKeyKeepsContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	m := Of(ordered.Natural[int](), entryList(10, 20, 30)...)
	del := m.WithDeleted(99)
	if !del.Equal(m) {
		t.Logf("map =%s", printTree(del))
		t.Error("expected deletion of absent key to preserve content, didn't")
	}
	if err := del.Validate(); err != nil {
		t.Error(err)
	}
}

func TestOfLastWriteWins(t *testing.T) {
	m := Of(ordered.Natural[int](),
		ordered.Entry[int, string]{Key: 1, Value: "first"},
		ordered.Entry[int, string]{Key: 1, Value: "second"},
	)
	if v, _ := m.Find(1); v != "second" {
		t.Errorf("expected last write to win for duplicate key, found %q", v)
	}
}

func TestMapWithReverseComparator(t *testing.T) {
	m := Of(ordered.Reverse(ordered.Natural[int]()), entryList(1, 2, 3)...)
	keys := m.Keys()
	if len(keys) != 3 || keys[0] != 3 || keys[2] != 1 {
		t.Errorf("expected reverse-ordered keys [3 2 1], got %v", keys)
	}
}

func TestMapString(t *testing.T) {
	m := Of(ordered.Natural[int](),
		ordered.Entry[int, string]{Key: 2, Value: "b"},
		ordered.Entry[int, string]{Key: 1, Value: "a"},
	)
	if s := m.String(); s != "{1: a, 2: b}" {
		t.Errorf("unexpected String() = %q", s)
	}
}

// ---------------------------------------------------------------------------

func entryList(keys ...int) []ordered.Entry[int, int] {
	entries := make([]ordered.Entry[int, int], len(keys))
	for i, k := range keys {
		entries[i] = ordered.Entry[int, int]{Key: k, Value: k}
	}
	return entries
}

func intMap(keys ...int) Map[int, int] {
	return Of(ordered.Natural[int](), entryList(keys...)...)
}

// --- Print tree --------------------------------------------------------------

func printTree[K, V any](m Map[K, V]) string {
	header := fmt.Sprintf("\nMap(size=%d)\n", m.Len())
	p := tp.New()
	ppt(p, m.root)
	return header + p.String()
}

func ppt[K, V any](p tp.Tree, n *node[K, V]) {
	if n.isEmpty() {
		return
	}
	if n.left.isEmpty() && n.right.isEmpty() {
		p.AddNode(n.String())
		return
	}
	b := p.AddBranch(n.String())
	ppt(b, n.left)
	ppt(b, n.right)
}
