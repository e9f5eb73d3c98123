package rbtree

import (
	"github.com/npillmayer/ordered"
)

// The range layer is built from the map's public primitives—comparator,
// internal iteration and WithDeleted—only; it is independent of the
// rebalancing internals. All range queries are a single linear in-order
// scan, i.e. O(n) in map size, not O(log n + k) in result size.

// RangeFrom returns all entries with key ≥ from, in ascending order.
func (m Map[K, V]) RangeFrom(from K) []ordered.Entry[K, V] {
	m.checkComparator()
	return m.scan(func(k K) bool {
		return m.cmp(k, from) >= 0
	})
}

// RangeTo returns all entries with key < to, in ascending order.
func (m Map[K, V]) RangeTo(to K) []ordered.Entry[K, V] {
	m.checkComparator()
	return m.scan(func(k K) bool {
		return m.cmp(k, to) < 0
	})
}

// RangeFromTo returns all entries with from ≤ key < to, in ascending order
// (inclusive from, exclusive to).
func (m Map[K, V]) RangeFromTo(from, to K) []ordered.Entry[K, V] {
	m.checkComparator()
	return m.scan(func(k K) bool {
		return m.cmp(k, from) >= 0 && m.cmp(k, to) < 0
	})
}

// Cut returns all entries whose key, projected through cutFn, falls into the
// half-open interval [from, to) under the map's comparator. Cut generalizes
// RangeFromTo for keys with a composite structure, where ranging is to be
// done over one aspect of the key only.
func (m Map[K, V]) Cut(cutFn func(K) K, from, to K) []ordered.Entry[K, V] {
	m.checkComparator()
	assertThat(cutFn != nil, "cut needs a projection function")
	return m.scan(func(k K) bool {
		p := cutFn(k)
		return m.cmp(p, from) >= 0 && m.cmp(p, to) < 0
	})
}

func (m Map[K, V]) scan(include func(K) bool) []ordered.Entry[K, V] {
	var entries []ordered.Entry[K, V]
	m.Do(func(k K, v V) bool {
		if include(k) {
			entries = append(entries, ordered.Entry[K, V]{Key: k, Value: v})
		}
		return true
	})
	return entries
}

// RemoveRangeFrom returns a copy of the map without the entries having
// key ≥ from.
func (m Map[K, V]) RemoveRangeFrom(from K) Map[K, V] {
	return m.without(m.RangeFrom(from))
}

// RemoveRangeTo returns a copy of the map without the entries having
// key < to.
func (m Map[K, V]) RemoveRangeTo(to K) Map[K, V] {
	return m.without(m.RangeTo(to))
}

// RemoveRangeFromTo returns a copy of the map without the entries having
// from ≤ key < to.
func (m Map[K, V]) RemoveRangeFromTo(from, to K) Map[K, V] {
	return m.without(m.RangeFromTo(from, to))
}

func (m Map[K, V]) without(entries []ordered.Entry[K, V]) Map[K, V] {
	for _, e := range entries {
		m = m.WithDeleted(e.Key)
	}
	return m
}
