package ordered

// Compare is the contract between clients and the containers of this module:
// a total order over keys of type K. It returns a negative number if a
// orders before b, a positive number if a orders after b, and zero if both
// are to be treated as the same key.
//
// Every structural decision a container makes—in which subtree a key lives,
// whether two containers hold the same keys—is defined relative to the
// comparator it was created with, never to an intrinsic ordering of K.
// Two containers created with different comparators are not interchangeable,
// even over the same key type.
type Compare[K any] func(a, b K) int

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Key is a constraint for key types carrying an intrinsic total order,
// i.e. types for which Natural can produce a stock comparator.
type Key interface {
	Integer | Float | ~string
}

// Natural returns the ascending comparator for a key type with an intrinsic
// order. Use it like this:
//
//	m := rbtree.Immutable[int, string](ordered.Natural[int]())
//
func Natural[K Key]() Compare[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		}
		return 0
	}
}

// Reverse flips a comparator, turning an ascending order into a descending
// one (and vice versa).
func Reverse[K any](cmp Compare[K]) Compare[K] {
	return func(a, b K) int {
		return cmp(b, a)
	}
}

// Entry is a key/value pair, as produced by container iteration and consumed
// by bulk constructors.
type Entry[K, V any] struct {
	Key   K
	Value V
}
