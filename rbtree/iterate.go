package rbtree

import (
	"github.com/npillmayer/ordered"
)

// Iteration over persistent maps is lazy, finite and restartable: every call
// to Iterator (or PreOrder, PostOrder) starts a fresh traversal over the
// incarnation it was called on. Cursors are cheap throw-away objects; they
// are not shared mutable state of the map, and later incarnations of the map
// do not disturb a running traversal.

// Iterator is a cursor over the entries of one map incarnation. The zero
// value is an exhausted cursor.
type Iterator[K, V any] struct {
	order traversal
	stack []frame[K, V]
}

type traversal int8

const (
	inOrder traversal = iota
	preOrder
	postOrder
)

// frame is one step of the traversal stack. For post-order walks a node is
// visited twice: once to expand its children, once to emit it.
type frame[K, V any] struct {
	node     *node[K, V]
	expanded bool
}

// Iterator returns a fresh cursor producing the map's entries in ascending
// comparator order (in-order traversal).
func (m Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{order: inOrder}
	it.pushLeftSpine(m.root)
	return it
}

// PreOrder returns a fresh cursor producing the map's entries in pre-order,
// i.e. parents before children. Useful for serialization: re-inserting a
// pre-order sequence reconstructs an equal map without rebalancing churn.
func (m Map[K, V]) PreOrder() *Iterator[K, V] {
	it := &Iterator[K, V]{order: preOrder}
	it.push(m.root)
	return it
}

// PostOrder returns a fresh cursor producing the map's entries in
// post-order, i.e. children before parents (destruction order).
func (m Map[K, V]) PostOrder() *Iterator[K, V] {
	it := &Iterator[K, V]{order: postOrder}
	it.push(m.root)
	return it
}

// Next produces the next entry of the traversal, with ok=false after the
// last entry has been handed out.
func (it *Iterator[K, V]) Next() (entry ordered.Entry[K, V], ok bool) {
	switch it.order {
	case preOrder:
		return it.nextPreOrder()
	case postOrder:
		return it.nextPostOrder()
	}
	return it.nextInOrder()
}

func (it *Iterator[K, V]) nextInOrder() (ordered.Entry[K, V], bool) {
	n, ok := it.pop()
	if !ok {
		return ordered.Entry[K, V]{}, false
	}
	it.pushLeftSpine(n.right)
	return n.item(), true
}

func (it *Iterator[K, V]) nextPreOrder() (ordered.Entry[K, V], bool) {
	n, ok := it.pop()
	if !ok {
		return ordered.Entry[K, V]{}, false
	}
	it.push(n.right) // right below left, so left is walked first
	it.push(n.left)
	return n.item(), true
}

func (it *Iterator[K, V]) nextPostOrder() (ordered.Entry[K, V], bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.expanded {
			n := top.node
			it.stack = it.stack[:len(it.stack)-1]
			return n.item(), true
		}
		top.expanded = true
		node := top.node
		it.push(node.right) // children above the pending parent
		it.push(node.left)
	}
	return ordered.Entry[K, V]{}, false
}

func (it *Iterator[K, V]) push(n *node[K, V]) {
	if !n.isEmpty() {
		it.stack = append(it.stack, frame[K, V]{node: n})
	}
}

func (it *Iterator[K, V]) pushLeftSpine(n *node[K, V]) {
	for !n.isEmpty() {
		it.stack = append(it.stack, frame[K, V]{node: n})
		n = n.left
	}
}

func (it *Iterator[K, V]) pop() (*node[K, V], bool) {
	if len(it.stack) == 0 {
		return nil, false
	}
	n := it.stack[len(it.stack)-1].node
	it.stack = it.stack[:len(it.stack)-1]
	return n, true
}

// Do calls f for each entry of the map, in ascending comparator order, until
// f returns false (internal iteration; cheaper than a cursor when the whole
// map is to be visited anyway).
func (m Map[K, V]) Do(f func(key K, value V) bool) {
	walkInOrder(m.root, f)
}

func walkInOrder[K, V any](n *node[K, V], f func(K, V) bool) bool {
	if n.isEmpty() {
		return true
	}
	return walkInOrder(n.left, f) && f(n.key, n.value) && walkInOrder(n.right, f)
}

// Keys returns all keys, in ascending comparator order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Do(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns all values, ordered by their keys.
func (m Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	m.Do(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Entries returns all entries, in ascending comparator order.
func (m Map[K, V]) Entries() []ordered.Entry[K, V] {
	entries := make([]ordered.Entry[K, V], 0, m.Len())
	m.Do(func(k K, v V) bool {
		entries = append(entries, ordered.Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}
