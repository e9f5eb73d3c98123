package rbtree

import (
	"fmt"
	"sync"

	"github.com/npillmayer/ordered"
)

/*
Remarks:
--------

- A node, once constructed, is never mutated (except for its write-once hash
  memo, see equal.go). Children are shared, not owned: any number of tree
  incarnations may reference the same subtree, and Go's garbage collector
  reclaims a version when the last reference to it goes away.

- The empty tree is represented by a nil *node and counts as black. The one
  non-nil empty node is the double-black leaf sentinel, which stands for the
  black-height debt left behind by deleting a black leaf. It lives only
  inside a single deletion.
*/

// node is either an empty marker (nil, or the double-black leaf) or a
// branch holding a key/value pair, two subtrees and a color.
type node[K, V any] struct {
	color Color
	empty bool // marks the double-black leaf sentinel
	left  *node[K, V]
	key   K
	value V
	right *node[K, V]
	size  int      // number of entries in the subtree
	memo  hashcell // lazily computed structural hash, see equal.go
}

// hashcell is a write-once cache for a subtree's hash sum. Concurrent
// readers race only for who computes first; the result is identical.
type hashcell struct {
	once sync.Once
	sum  uint64
}

// branch constructs a new branch node. This is the only place tree nodes
// come into existence (besides the double-black leaf sentinel).
func branch[K, V any](color Color, left *node[K, V], e ordered.Entry[K, V], right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		color: color,
		left:  left,
		key:   e.Key,
		value: e.Value,
		right: right,
		size:  left.count() + right.count() + 1,
	}
}

// doubleBlackLeaf returns the empty node carrying the double-black debt of a
// just-deleted black leaf.
func doubleBlackLeaf[K, V any]() *node[K, V] {
	return &node[K, V]{color: DoubleBlack, empty: true}
}

// --- Accessors, all safe to call on a nil node ------------------------------

func (n *node[K, V]) isEmpty() bool {
	return n == nil || n.empty
}

// col returns the color of a node; a nil node is a black empty tree.
func (n *node[K, V]) col() Color {
	if n == nil {
		return Black
	}
	return n.color
}

func (n *node[K, V]) count() int {
	if n.isEmpty() {
		return 0
	}
	return n.size
}

func (n *node[K, V]) item() ordered.Entry[K, V] {
	assertThat(!n.isEmpty(), "attempt to read the payload of an empty tree")
	return ordered.Entry[K, V]{Key: n.key, Value: n.value}
}

// paint returns a copy of a branch with a different color, children shared.
func (n *node[K, V]) paint(c Color) *node[K, V] {
	assertThat(!n.isEmpty(), "attempt to recolor an empty tree")
	if n.color == c {
		return n
	}
	return branch(c, n.left, n.item(), n.right)
}

// asBlack repaints a node black. Empty trees are already (double-)black;
// blackening resolves the double-black leaf back to the plain empty tree.
func (n *node[K, V]) asBlack() *node[K, V] {
	if n.isEmpty() {
		return nil
	}
	return n.paint(Black)
}

// asRed repaints a branch red. Reddening an empty tree is a programmer
// error: an empty tree has no color debt to lighten.
func (n *node[K, V]) asRed() *node[K, V] {
	assertThat(!n.isEmpty(), "attempt to redden an empty tree")
	return n.paint(Red)
}

// asRedder lightens a node by one shade while the double-black debt of a
// sibling bubbles up to the parent.
func (n *node[K, V]) asRedder() *node[K, V] {
	if n.isEmpty() {
		assertThat(n.col() == DoubleBlack, "attempt to redden an empty tree")
		return nil // the double-black leaf pays its debt
	}
	return n.paint(n.color.redder())
}

func (n *node[K, V]) String() string {
	if n == nil {
		return "<empty>"
	}
	if n.empty {
		return "<empty " + n.color.String() + ">"
	}
	return fmt.Sprintf("%s⟨%v⟩", n.color, n.key)
}

// --- Helpers ----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
