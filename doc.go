/*
Package ordered is the root of a small family of persistent (immutable)
ordered containers. Persistent data structures can be “modified” cheaply,
leaving the original unchanged: each update returns a new incarnation of the
container which shares most of its memory with its predecessor. This makes
them inherently safe for concurrent readers, even readers observing
different versions of the same logical container at the same time.

The root package holds what every container in the family consumes: the
comparator contract, a constraint for keys with an intrinsic order, and the
key/value entry type produced by iteration.

The interesting machinery lives in the sub-packages:

▪︎ Package rbtree implements the ordering engine, a persistent red-black
tree with Okasaki-style insertion and Might-style deletion.

▪︎ Package orderedset projects the engine onto a sorted set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ordered
