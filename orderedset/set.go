package orderedset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/rbtree"
	"github.com/samber/lo"
)

// unit is the payload of set members; it carries no information.
type unit = struct{}

// Set is a persistent sorted set of keys K. Like the underlying map, a set
// is a value: every “modifying” operation returns a new incarnation sharing
// unchanged structure with the receiver.
//
// The zero value of Set carries no comparator and is not usable; construct
// sets through Immutable or Of.
type Set[K any] struct {
	m rbtree.Map[K, unit]
}

// Immutable constructs an empty persistent set ordered by cmp.
func Immutable[K any](cmp ordered.Compare[K]) Set[K] {
	return Set[K]{m: rbtree.Immutable[K, unit](cmp)}
}

// Of constructs a persistent set ordered by cmp, holding the given keys.
func Of[K any](cmp ordered.Compare[K], keys ...K) Set[K] {
	s := Immutable[K](cmp)
	for _, key := range keys {
		s = s.With(key)
	}
	return s
}

// --- API --------------------------------------------------------------------

// Len returns the number of members.
func (s Set[K]) Len() int {
	return s.m.Len()
}

// IsEmpty is true for a set without members.
func (s Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Has is true if key is a member of the set.
func (s Set[K]) Has(key K) bool {
	return s.m.Has(key)
}

// HasAll is true if every given key is a member of the set.
func (s Set[K]) HasAll(keys ...K) bool {
	return lo.EveryBy(keys, s.Has)
}

// With returns a copy of the set with key added.
func (s Set[K]) With(key K) Set[K] {
	return Set[K]{m: s.m.With(key, unit{})}
}

// WithDeleted returns a copy of the set with key removed, if present.
func (s Set[K]) WithDeleted(key K) Set[K] {
	return Set[K]{m: s.m.WithDeleted(key)}
}

// Min returns the smallest member. Calling Min on an empty set is a
// programmer error and panics.
func (s Set[K]) Min() K {
	key, _ := s.m.Min()
	return key
}

// Max returns the largest member. Calling Max on an empty set is a
// programmer error and panics.
func (s Set[K]) Max() K {
	key, _ := s.m.Max()
	return key
}

// Predecessor returns the member strictly preceding key; found is false if
// key itself is not a member.
func (s Set[K]) Predecessor(key K) (K, bool) {
	k, _, found := s.m.Predecessor(key)
	return k, found
}

// Successor returns the member strictly following key; found is false if
// key itself is not a member.
func (s Set[K]) Successor(key K) (K, bool) {
	k, _, found := s.m.Successor(key)
	return k, found
}

// WeakPredecessor returns key itself, if a member, and the strictly
// preceding member otherwise.
func (s Set[K]) WeakPredecessor(key K) (K, bool) {
	k, _, found := s.m.WeakPredecessor(key)
	return k, found
}

// WeakSuccessor returns key itself, if a member, and the strictly following
// member otherwise.
func (s Set[K]) WeakSuccessor(key K) (K, bool) {
	k, _, found := s.m.WeakSuccessor(key)
	return k, found
}

// --- Set algebra --------------------------------------------------------------

// Union returns the set of members present in s or in other. The result is
// ordered by the receiver's comparator.
func (s Set[K]) Union(other Set[K]) Set[K] {
	tracer().Debugf("union of sets with %d and %d members", s.Len(), other.Len())
	result := s
	other.Do(func(key K) bool {
		result = result.With(key)
		return true
	})
	return result
}

// Intersect returns the set of members present in s as well as in other.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	result := emptyLike(s)
	s.Do(func(key K) bool {
		if other.Has(key) {
			result = result.With(key)
		}
		return true
	})
	return result
}

// Subtract returns the set of members of s that are not members of other.
func (s Set[K]) Subtract(other Set[K]) Set[K] {
	result := s
	other.Do(func(key K) bool {
		result = result.WithDeleted(key)
		return true
	})
	return result
}

// Map returns the set of f(key) for every member key. f need not be
// order-preserving; the result is rebuilt member by member.
func (s Set[K]) Map(f func(K) K) Set[K] {
	result := emptyLike(s)
	s.Do(func(key K) bool {
		result = result.With(f(key))
		return true
	})
	return result
}

// Filter returns the set of members satisfying pred.
func (s Set[K]) Filter(pred func(K) bool) Set[K] {
	result := emptyLike(s)
	s.Do(func(key K) bool {
		if pred(key) {
			result = result.With(key)
		}
		return true
	})
	return result
}

// --- Iteration and ranging ----------------------------------------------------

// Do calls f for each member, in ascending comparator order, until f
// returns false.
func (s Set[K]) Do(f func(key K) bool) {
	s.m.Do(func(k K, _ unit) bool {
		return f(k)
	})
}

// Values returns all members, in ascending comparator order.
func (s Set[K]) Values() []K {
	return s.m.Keys()
}

// Iterator returns a fresh cursor over the members, in ascending comparator
// order. Every call restarts a traversal.
func (s Set[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{entries: s.m.Iterator()}
}

// Iterator is a cursor over the members of one set incarnation.
type Iterator[K any] struct {
	entries *rbtree.Iterator[K, unit]
}

// Next produces the next member, with ok=false after the last one.
func (it *Iterator[K]) Next() (key K, ok bool) {
	entry, ok := it.entries.Next()
	return entry.Key, ok
}

// RangeFrom returns all members ≥ from, in ascending order.
func (s Set[K]) RangeFrom(from K) []K {
	return keysOf(s.m.RangeFrom(from))
}

// RangeTo returns all members < to, in ascending order.
func (s Set[K]) RangeTo(to K) []K {
	return keysOf(s.m.RangeTo(to))
}

// RangeFromTo returns all members with from ≤ key < to, in ascending order.
func (s Set[K]) RangeFromTo(from, to K) []K {
	return keysOf(s.m.RangeFromTo(from, to))
}

// Equal reports whether both sets hold the same members, matched under the
// receiver's comparator.
func (s Set[K]) Equal(other Set[K]) bool {
	return s.m.EqualFunc(other.m, func(unit, unit) bool {
		return true
	})
}

func (s Set[K]) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	s.Do(func(k K) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", k)
		return true
	})
	sb.WriteRune('}')
	return sb.String()
}

// --- Helpers ------------------------------------------------------------------

// emptyLike returns an empty set ordered like s.
func emptyLike[K any](s Set[K]) Set[K] {
	return Immutable[K](s.m.Comparator())
}

func keysOf[K any](entries []ordered.Entry[K, unit]) []K {
	return lo.Map(entries, func(e ordered.Entry[K, unit], _ int) K {
		return e.Key
	})
}
