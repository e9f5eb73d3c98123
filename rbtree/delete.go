package rbtree

import (
	"github.com/npillmayer/ordered"
)

// WithDeleted returns a copy of the map with key deleted, if present. If key
// is not found, a map equal to the receiver is returned (the result is not
// guaranteed to share the receiver's root).
//
// Deletion uses Matt Might's double-black scheme: removing a black leaf
// leaves a black-height debt behind, recorded as a double-black node. The
// debt bubbles towards the root, being paid off along the way by the
// extended balance cases, until the final repaint of the root absorbs
// whatever is left. That root repaint is the only way the tree ever
// shrinks in black height.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	m.checkComparator()
	tracer().Debugf("delete key=%v", key)
	return Map[K, V]{cmp: m.cmp, root: m.del(m.root, key).asBlack()}
}

func (m Map[K, V]) del(n *node[K, V], key K) *node[K, V] {
	if n.isEmpty() {
		return nil // deleting an absent key is a no-op
	}
	switch c := m.cmp(key, n.key); {
	case c < 0:
		return bubble(n.color, m.del(n.left, key), n.item(), n.right)
	case c > 0:
		return bubble(n.color, n.left, n.item(), m.del(n.right, key))
	}
	return remove(n)
}

// remove eliminates the branch n itself. The case order matters:
//
//  1. a red leaf vanishes without consequence;
//  2. a black leaf leaves the double-black sentinel behind—its blackness
//     debt must be paid somewhere up the tree;
//  3. a black node with a single red child is replaced by that child,
//     repainted black;
//  4. a node with two non-trivial children swaps in its in-order
//     predecessor and deletes that predecessor from the left subtree.
//
// Other one-child shapes cannot occur in a tree satisfying the black-height
// invariant.
func remove[K, V any](n *node[K, V]) *node[K, V] {
	if n.isEmpty() {
		return nil
	}
	switch {
	case n.color == Red && n.left.isEmpty() && n.right.isEmpty():
		return nil
	case n.color == Black && n.left.isEmpty() && n.right.isEmpty():
		return doubleBlackLeaf[K, V]()
	case n.color == Black && n.left.isEmpty() && n.right.col() == Red:
		return n.right.asBlack()
	case n.color == Black && n.right.isEmpty() && n.left.col() == Red:
		return n.left.asBlack()
	}
	assertThat(!n.left.isEmpty() && !n.right.isEmpty(),
		"tree out of balance: %s node with a single non-red child", n.color)
	pred := maxNode(n.left)
	return bubble(n.color, removeMax(n.left), pred.item(), n.right)
}

// removeMax deletes the rightmost entry of a subtree.
func removeMax[K, V any](n *node[K, V]) *node[K, V] {
	if n.right.isEmpty() {
		return remove(n)
	}
	return bubble(n.color, n.left, n.item(), removeMax(n.right))
}

// bubble moves a double-black debt from a child up to its parent: the parent
// darkens by one shade, both children lighten by one. A formerly red sibling
// turns negative-black in the process, which the balance cases resolve.
func bubble[K, V any](color Color, l *node[K, V], e ordered.Entry[K, V], r *node[K, V]) *node[K, V] {
	if l.col() == DoubleBlack || r.col() == DoubleBlack {
		tracer().Debugf("bubbling double-black up through %v", e.Key)
		return balance(color.blacker(), l.asRedder(), e, r.asRedder())
	}
	return balance(color, l, e, r)
}
