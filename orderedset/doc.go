/*
Package orderedset implements a persistent (immutable) sorted set.

A set is a thin projection of the persistent ordered map of package rbtree,
with every member mapping to a unit value. All structural work—balancing,
navigation, ranging—is delegated to the map engine; this package contributes
the set algebra (union, intersection, subtraction) and the usual
collection-style conveniences on top.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package orderedset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.set'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.set")
}
