/*
Package rbtree implements a persistent (immutable) ordered map, backed by a
red-black tree.

A persistent map has copy-on-write behaviour: each “modification” (insertion,
replacement or deletion) creates a new incarnation of the map, leaving the
original unmodified. Under the hood most of the structure is shared between
original and copy, transparently to clients, which makes updates cheap in
terms of space- and time-complexity. Persistent maps are inherently
concurrency-safe.

Ordering is defined entirely by a client-supplied comparator (see package
ordered). On top of the basic map operations the package offers ordered
navigation—minimum, maximum, predecessor and successor queries—and a range
layer built from those primitives.

Insertion follows Okasaki's classic functional red-black algorithm.
Deletion follows Matt Might's extension of it, which temporarily introduces
two additional node colors (double-black and negative-black) to track a
black-height debt while it is being rebalanced away. Both transient colors
are resolved before any operation returns; trees handed to clients only
ever contain red and black nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.rbtree")
}
