// Package arena provides a growable collection of reusable storage
// slots addressed by stable keys.
//
// An Arena hands out a [Key] for every inserted value. Removing a
// value vacates its slot and makes it available for reuse by a later
// insertion, favoring the most recently vacated slot. Each slot
// carries a generation counter that is bumped on every insertion into
// it, and a Key matches only the occupant it was issued for, so a Key
// retained past its value's removal reliably reports absence instead
// of silently naming the slot's next occupant.
package arena

import "slices"

// A Key is a copyable reference to a slot in an [Arena]. It is valid
// only while the slot holds the value it was issued for.
//
// The zero Key never names an occupied slot.
type Key struct {
	index int
	gen   uint64
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

type slot[T any] struct {
	value    T
	gen      uint64
	next     int // next slot in the free list, stored as index+1; 0 terminates
	occupied bool
}

// An Arena maps keys to values with O(1) insertion, removal, and
// lookup. The zero value of an Arena is an empty arena ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  int // head of the free list, stored as index+1; 0 if none
	len   int
}

// New returns a new, empty arena.
func New[T any]() *Arena[T] {
	return new(Arena[T])
}

// WithCapacity returns a new, empty arena with room for n values
// before it needs to grow.
func WithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, n)}
}

// Len returns the number of values currently stored in the arena.
func (a *Arena[T]) Len() int {
	return a.len
}

// Cap returns the number of values that the arena can hold before it
// needs to grow.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

// Insert stores v in a vacant slot, reusing the most recently vacated
// slot if one exists, and returns the key that it can be retrieved
// with.
func (a *Arena[T]) Insert(v T) Key {
	var index int
	if a.free != 0 {
		index = a.free - 1
		a.free = a.slots[index].next
	} else {
		index = len(a.slots)
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[index]
	s.value = v
	s.gen++
	s.next = 0
	s.occupied = true
	a.len++

	return Key{index: index, gen: s.gen}
}

// Get returns a pointer to the value stored under k. It returns false
// if k does not name a currently occupied slot.
func (a *Arena[T]) Get(k Key) (*T, bool) {
	s, ok := a.slot(k)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// Remove vacates the slot named by k and returns the value it held.
// It returns false, leaving the arena unchanged, if k does not name a
// currently occupied slot.
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T

	s, ok := a.slot(k)
	if !ok {
		return zero, false
	}

	v := s.value
	s.value = zero
	s.next = a.free
	s.occupied = false
	a.free = k.index + 1
	a.len--

	return v, true
}

// Contains reports whether k names a currently occupied slot.
func (a *Arena[T]) Contains(k Key) bool {
	_, ok := a.slot(k)
	return ok
}

// Clear removes all values from the arena, keeping its capacity.
// Every outstanding key is invalidated.
func (a *Arena[T]) Clear() {
	var zero T

	a.free = 0
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		s.value = zero
		s.next = a.free
		s.occupied = false
		a.free = i + 1
	}
	a.len = 0
}

// Reserve ensures that the arena has room for at least n more values
// without growing. It may allocate more than requested.
func (a *Arena[T]) Reserve(n int) {
	a.slots = slices.Grow(a.slots, n)
}

// ReserveExact ensures that the arena has room for at least n more
// values without growing, allocating exactly the requested headroom
// if it needs to allocate at all.
func (a *Arena[T]) ReserveExact(n int) {
	if n <= cap(a.slots)-len(a.slots) {
		return
	}

	slots := make([]slot[T], len(a.slots), len(a.slots)+n)
	copy(slots, a.slots)
	a.slots = slots
}

func (a *Arena[T]) slot(k Key) (*slot[T], bool) {
	if k.index < 0 || k.index >= len(a.slots) {
		return nil, false
	}

	s := &a.slots[k.index]
	if !s.occupied || s.gen != k.gen {
		return nil, false
	}
	return s, true
}
