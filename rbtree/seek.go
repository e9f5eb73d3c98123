package rbtree

// Ordered navigation: minimum, maximum, predecessor and successor queries.
// All of them are plain descents; none touch the rebalancing machinery.

// Min returns the entry with the smallest key. Calling Min on an empty map
// is a programmer error and panics.
func (m Map[K, V]) Min() (K, V) {
	assertThat(!m.root.isEmpty(), "attempt to take the minimum of an empty map")
	n := minNode(m.root)
	return n.key, n.value
}

// Max returns the entry with the largest key. Calling Max on an empty map
// is a programmer error and panics.
func (m Map[K, V]) Max() (K, V) {
	assertThat(!m.root.isEmpty(), "attempt to take the maximum of an empty map")
	n := maxNode(m.root)
	return n.key, n.value
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	assertThat(!n.isEmpty(), "attempt to descend into an empty tree")
	for !n.left.isEmpty() {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	assertThat(!n.isEmpty(), "attempt to descend into an empty tree")
	for !n.right.isEmpty() {
		n = n.right
	}
	return n
}

// Predecessor returns the entry preceding key in comparator order. It is the
// strict variant: if key itself is absent from the map, there is nothing to
// precede and found will be false.
func (m Map[K, V]) Predecessor(key K) (K, V, bool) {
	m.checkComparator()
	if !m.Has(key) {
		var k K
		var v V
		return k, v, false
	}
	return m.before(key)
}

// Successor returns the entry following key in comparator order. It is the
// strict variant: if key itself is absent from the map, there is nothing to
// follow and found will be false.
func (m Map[K, V]) Successor(key K) (K, V, bool) {
	m.checkComparator()
	if !m.Has(key) {
		var k K
		var v V
		return k, v, false
	}
	return m.after(key)
}

// WeakPredecessor returns the entry for key itself, if present, and the
// strictly preceding entry otherwise.
func (m Map[K, V]) WeakPredecessor(key K) (K, V, bool) {
	m.checkComparator()
	if v, found := m.Find(key); found {
		return key, v, true
	}
	return m.before(key)
}

// WeakSuccessor returns the entry for key itself, if present, and the
// strictly following entry otherwise.
func (m Map[K, V]) WeakSuccessor(key K) (K, V, bool) {
	m.checkComparator()
	if v, found := m.Find(key); found {
		return key, v, true
	}
	return m.after(key)
}

// before finds the entry with the largest key ordering strictly before key,
// present or not.
func (m Map[K, V]) before(key K) (K, V, bool) {
	var best *node[K, V]
	for n := m.root; !n.isEmpty(); {
		if m.cmp(key, n.key) > 0 {
			best = n // n.key < key; look for something closer on the right
			n = n.right
		} else {
			n = n.left
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}

// after finds the entry with the smallest key ordering strictly after key,
// present or not.
func (m Map[K, V]) after(key K) (K, V, bool) {
	var best *node[K, V]
	for n := m.root; !n.isEmpty(); {
		if m.cmp(key, n.key) < 0 {
			best = n // n.key > key; look for something closer on the left
			n = n.left
		} else {
			n = n.right
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}
