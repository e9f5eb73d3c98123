package rbtree

import (
	"github.com/pkg/errors"
)

// Validate checks the three structural invariants every map incarnation has
// to satisfy:
//
//  1. search-tree order: keys in a left subtree order strictly before the
//     node's key, keys in a right subtree strictly after, under the map's
//     comparator;
//  2. red invariant: a red node has no red child;
//  3. black balance: every root-to-empty path passes the same number of
//     black nodes.
//
// It also verifies that no transient deletion color (double-black,
// negative-black) escaped an operation. Validate returns nil for a healthy
// map and a diagnostic error otherwise. It is meant for tests and debugging;
// a violation always indicates a defect in this package, not client error.
func (m Map[K, V]) Validate() error {
	m.checkComparator()
	if err := m.validateOrder(); err != nil {
		return err
	}
	if err := validateColors(m.root); err != nil {
		return err
	}
	_, err := blackHeight(m.root)
	return err
}

func (m Map[K, V]) validateOrder() error {
	var prev *K
	var err error
	m.Do(func(k K, _ V) bool {
		if prev != nil && m.cmp(*prev, k) >= 0 {
			err = errors.Errorf("search-tree order violated: %v does not order before %v", *prev, k)
			return false
		}
		p := k
		prev = &p
		return true
	})
	return err
}

func validateColors[K, V any](n *node[K, V]) error {
	if n == nil {
		return nil
	}
	if n.empty {
		return errors.Errorf("transient %s leaf escaped a deletion", n.color)
	}
	if n.color != Red && n.color != Black {
		return errors.Errorf("transient color %s escaped a deletion at key %v", n.color, n.key)
	}
	if n.color == Red && (n.left.col() == Red || n.right.col() == Red) {
		return errors.Errorf("red invariant violated at key %v", n.key)
	}
	if err := validateColors(n.left); err != nil {
		return err
	}
	return validateColors(n.right)
}

// blackHeight computes the black height of a subtree, failing if the left
// and right black heights ever disagree. The empty tree is the base case
// and counts one.
func blackHeight[K, V any](n *node[K, V]) (int, error) {
	if n.isEmpty() {
		return 1, nil
	}
	lh, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Errorf("black height unbalanced at key %v: %d vs %d", n.key, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}
