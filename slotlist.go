// Package slotlist provides a doubly-linked list whose elements live
// in a reusable slot arena instead of individually allocated nodes.
//
// Elements are addressed by stable, copyable [Handle] values rather
// than pointers, so callers can retain cheap references to interior
// elements that survive structural edits elsewhere in the list, and
// removal or insertion at a known handle is O(1) with no per-element
// allocation once the arena has grown.
//
// Handles are generation-tagged: a Handle to a removed element stays
// invalid forever, even after its slot is reused by a later
// insertion. Every operation on an invalid handle reports absence and
// leaves the list unchanged.
//
// A List may be read through any number of simultaneous [Cursor]
// values, but mutation, whether through the List directly or through
// a [MutableCursor], must not overlap with any other access. The
// package performs no locking of its own.
package slotlist

import "deedles.dev/slotlist/arena"

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// A Handle is a copyable reference to an element of a [List]. It is
// valid only while the element it was issued for remains in the list.
//
// The zero Handle never names an element.
type Handle struct {
	key arena.Key
}

// A Node is an element removed from a [List]: its payload plus the
// neighbor handles it held just before removal.
type Node[T any] struct {
	value      T
	next, prev Handle
}

// Value returns the payload the element held.
func (n Node[T]) Value() T {
	return n.value
}

// Next returns the handle of the element that followed n in the list,
// or false if n was the tail.
func (n Node[T]) Next() (Handle, bool) {
	return n.next, !n.next.key.IsZero()
}

// Prev returns the handle of the element that preceded n in the list,
// or false if n was the head.
func (n Node[T]) Prev() (Handle, bool) {
	return n.prev, !n.prev.key.IsZero()
}
