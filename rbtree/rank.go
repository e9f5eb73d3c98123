package rbtree

// Order statistics. Every branch caches the size of its subtree, so rank
// and selection queries are single descents, O(log n).

// Rank returns the number of entries with keys ordering strictly before
// key, i.e. the position key has (or would have) in an in-order traversal.
func (m Map[K, V]) Rank(key K) int {
	m.checkComparator()
	rank := 0
	for n := m.root; !n.isEmpty(); {
		switch c := m.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			rank += n.left.count() + 1
			n = n.right
		default:
			return rank + n.left.count()
		}
	}
	return rank
}

// Select returns the i-th entry in comparator order, counting from zero.
// An index outside [0, Len) is a programmer error and panics.
func (m Map[K, V]) Select(i int) (K, V) {
	assertThat(i >= 0 && i < m.Len(), "selection index out of bounds: %d with size %d", i, m.Len())
	n := m.root
	for {
		switch l := n.left.count(); {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return n.key, n.value
		}
	}
}
