package rbtree

import (
	"fmt"
	"hash/maphash"
	"reflect"
)

// Equality of persistent maps is defined over content, not over shape: two
// maps are equal iff they have the same size and hold an equal value under
// every key. Two different rotation histories arriving at the same logical
// mapping compare equal.

// Equal reports whether both maps hold the same entries, comparing values
// with reflect.DeepEqual. Keys are matched under the receiver's comparator;
// comparing maps built with different comparators is not meaningful.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	return m.EqualFunc(other, func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	})
}

// EqualFunc reports whether both maps hold the same entries, comparing
// values with eq.
func (m Map[K, V]) EqualFunc(other Map[K, V], eq func(a, b V) bool) bool {
	m.checkComparator()
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Do(func(k K, v V) bool {
		w, found := other.Find(k)
		if !found || !eq(v, w) {
			equal = false
		}
		return equal
	})
	return equal
}

// hashSeed keys all entry hashes of this process. Hashes are an in-process
// concept; they do not survive serialization.
var hashSeed = maphash.MakeSeed()

// Hash returns a content hash of the map: equal maps hash equal, regardless
// of internal shape or insertion history. Per entry, key and value hashes
// are mixed as 31*hash(key) + hash(value); entry mixes are combined
// commutatively, so the combination is independent of traversal order.
//
// The hash of every subtree is memoized on its root node after the first
// computation. The memo cell is write-once: concurrent first readers may
// compute it redundantly, but all arrive at the same value.
func (m Map[K, V]) Hash() uint64 {
	return m.root.hashSum()
}

func (n *node[K, V]) hashSum() uint64 {
	if n.isEmpty() {
		return 0
	}
	n.memo.once.Do(func() {
		mix := 31*hashOf(n.key) + hashOf(n.value)
		n.memo.sum = mix + n.left.hashSum() + n.right.hashSum()
	})
	return n.memo.sum
}

func hashOf(v interface{}) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	fmt.Fprintf(&h, "%v", v)
	return h.Sum64()
}
