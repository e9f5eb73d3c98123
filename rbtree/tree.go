package rbtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
)

// Map is a persistent ordered map from keys K to values V. An instance
// created by Immutable or Of is usable as an empty map, i.e. this is legal:
//
//	m := rbtree.Immutable[int, string](ordered.Natural[int]())
//	m = m.With(1, "one")
//	value, found := m.Find(1)   // returns "one", true
//
// Every “modifying” operation returns a new incarnation of the map; the
// receiver is never changed. Incarnations share unchanged subtrees.
//
// The zero value of Map carries no comparator and is not usable; mutating or
// navigating it will panic. Always construct maps through Immutable or Of.
type Map[K, V any] struct {
	cmp  ordered.Compare[K]
	root *node[K, V]
}

// Immutable constructs an empty persistent map ordered by cmp.
func Immutable[K, V any](cmp ordered.Compare[K]) Map[K, V] {
	assertThat(cmp != nil, "map needs a comparator to order its keys")
	return Map[K, V]{cmp: cmp}
}

// Of constructs a persistent map ordered by cmp, holding the given entries.
// For duplicate keys the last entry wins.
func Of[K, V any](cmp ordered.Compare[K], entries ...ordered.Entry[K, V]) Map[K, V] {
	m := Immutable[K, V](cmp)
	for _, e := range entries {
		m = m.With(e.Key, e.Value)
	}
	return m
}

// --- API --------------------------------------------------------------------

// Comparator returns the total order the map was constructed with.
func (m Map[K, V]) Comparator() ordered.Compare[K] {
	return m.cmp
}

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	return m.root.count()
}

// IsEmpty is true for a map without entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root.isEmpty()
}

// Find locates a key in the map, if present, and returns the value
// associated with it. If key is not found, the zero value for type V will be
// returned, together with found=false.
func (m Map[K, V]) Find(key K) (V, bool) {
	m.checkComparator()
	n := m.root
	for !n.isEmpty() {
		switch c := m.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var none V
	return none, false
}

// Has is true if key is present in the map.
func (m Map[K, V]) Has(key K) bool {
	_, found := m.Find(key)
	return found
}

// With returns a copy of the map with a new key inserted, associated with
// `value`. If an entry for key is already present, the associated value will
// be replaced (in a new incarnation of the map, nevertheless).
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	m.checkComparator()
	tracer().Debugf("insert key=%v", key)
	root := m.insert(m.root, key, value)
	// Repainting the root black may grow the overall black height by one,
	// but cannot introduce a red-red violation.
	return Map[K, V]{cmp: m.cmp, root: root.asBlack()}
}

func (m Map[K, V]) insert(n *node[K, V], key K, value V) *node[K, V] {
	if n.isEmpty() {
		e := ordered.Entry[K, V]{Key: key, Value: value}
		return branch(Red, nil, e, nil)
	}
	switch c := m.cmp(key, n.key); {
	case c < 0:
		return balance(n.color, m.insert(n.left, key, value), n.item(), n.right)
	case c > 0:
		return balance(n.color, n.left, n.item(), m.insert(n.right, key, value))
	default: // replace payload, reuse children
		e := ordered.Entry[K, V]{Key: key, Value: value}
		return branch(n.color, n.left, e, n.right)
	}
}

// balance reassembles a node from color, children and payload, restoring the
// red invariant locally.
//
// During insertion (color Red or Black) these are Okasaki's four rotation
// cases: a black node with a doubled red child—red child with red grandchild,
// in any of the four arrangements—is rebuilt as a red node with two black
// children. At most one case can match, because the red invariant holds
// everywhere except along the one freshly modified path.
//
// During deletion the same four shapes may hang below a double-black node;
// the rebuilt cluster then absorbs one shade of debt by coming out black
// instead of red. Two further cases handle a negative-black child, which
// bubble may have produced one level down.
func balance[K, V any](color Color, l *node[K, V], e ordered.Entry[K, V], r *node[K, V]) *node[K, V] {
	if color == Black || color == DoubleBlack {
		top := color.redder() // Red below a black root, Black below a double-black one
		switch {
		case l.col() == Red && l.left.col() == Red: // doubled left-left
			return branch(top,
				l.left.asBlack(),
				l.item(),
				branch(Black, l.right, e, r))
		case l.col() == Red && l.right.col() == Red: // doubled left-right
			lr := l.right
			return branch(top,
				branch(Black, l.left, l.item(), lr.left),
				lr.item(),
				branch(Black, lr.right, e, r))
		case r.col() == Red && r.left.col() == Red: // doubled right-left
			rl := r.left
			return branch(top,
				branch(Black, l, e, rl.left),
				rl.item(),
				branch(Black, rl.right, r.item(), r.right))
		case r.col() == Red && r.right.col() == Red: // doubled right-right
			return branch(top,
				branch(Black, l, e, r.left),
				r.item(),
				r.right.asBlack())
		}
	}
	if color == DoubleBlack {
		// A negative-black child appears when bubble lightened a red sibling
		// of the double-black node. Its children are black branches; pulling
		// the inner one up and re-balancing with one reddened grandchild
		// settles the debt.
		switch {
		case r.col() == NegativeBlack && !r.left.isEmpty() && !r.right.isEmpty() &&
			r.left.col() == Black && r.right.col() == Black:
			rl := r.left
			return branch(Black,
				branch(Black, l, e, rl.left),
				rl.item(),
				balance(Black, rl.right, r.item(), r.right.asRed()))
		case l.col() == NegativeBlack && !l.left.isEmpty() && !l.right.isEmpty() &&
			l.left.col() == Black && l.right.col() == Black:
			lr := l.right
			return branch(Black,
				balance(Black, l.left.asRed(), l.item(), lr.left),
				lr.item(),
				branch(Black, lr.right, e, r))
		}
	}
	// no violation to fix here; leave resolution to the parent
	return branch(color, l, e, r)
}

func (m Map[K, V]) checkComparator() {
	assertThat(m.cmp != nil, "map has not been constructed with a comparator")
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	m.Do(func(k K, v V) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
		return true
	})
	sb.WriteRune('}')
	return sb.String()
}
