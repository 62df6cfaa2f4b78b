package slotlist

import "deedles.dev/slotlist/arena"

type node[T any] struct {
	value T
	next  arena.Key // zero if the element is the tail
	prev  arena.Key // zero if the element is the head
}

// A List is a doubly-linked list backed by a slot arena. The zero
// value of a List is an empty list ready to use.
//
// A List must not be copied after first use.
type List[T any] struct {
	_ noCopy

	nodes arena.Arena[node[T]]
	head  arena.Key
	tail  arena.Key
}

// New returns a new, empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// WithCapacity returns a new, empty list with room for n elements
// before its arena needs to grow.
func WithCapacity[T any](n int) *List[T] {
	l := New[T]()
	l.ReserveExact(n)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.nodes.Len()
}

// Head returns the handle of the first element of the list, or false
// if the list is empty.
func (l *List[T]) Head() (Handle, bool) {
	return Handle{key: l.head}, !l.head.IsZero()
}

// Tail returns the handle of the last element of the list, or false
// if the list is empty.
func (l *List[T]) Tail() (Handle, bool) {
	return Handle{key: l.tail}, !l.tail.IsZero()
}

// PushFront inserts v at the front of the list and returns its
// handle.
func (l *List[T]) PushFront(v T) Handle {
	key := l.nodes.Insert(node[T]{value: v, next: l.head})
	if l.head.IsZero() {
		l.tail = key
	} else {
		head, _ := l.nodes.Get(l.head)
		head.prev = key
	}
	l.head = key
	return Handle{key: key}
}

// PushBack inserts v at the back of the list and returns its handle.
func (l *List[T]) PushBack(v T) Handle {
	key := l.nodes.Insert(node[T]{value: v, prev: l.tail})
	if l.tail.IsZero() {
		l.head = key
	} else {
		tail, _ := l.nodes.Get(l.tail)
		tail.next = key
	}
	l.tail = key
	return Handle{key: key}
}

// Remove removes the element named by h from the list and returns it.
// It returns false, leaving the list unchanged, if h is not currently
// in the list.
func (l *List[T]) Remove(h Handle) (Node[T], bool) {
	n, ok := l.nodes.Remove(h.key)
	if !ok {
		return Node[T]{}, false
	}

	// The list invariant guarantees that both neighbors, when
	// present, are still occupied.
	if n.prev.IsZero() {
		l.head = n.next
	} else {
		prev, _ := l.nodes.Get(n.prev)
		prev.next = n.next
	}
	if n.next.IsZero() {
		l.tail = n.prev
	} else {
		next, _ := l.nodes.Get(n.next)
		next.prev = n.prev
	}

	return Node[T]{value: n.value, next: Handle{key: n.next}, prev: Handle{key: n.prev}}, true
}

// PopFront removes and returns the first element of the list, or
// false if the list is empty.
func (l *List[T]) PopFront() (Node[T], bool) {
	return l.Remove(Handle{key: l.head})
}

// PopBack removes and returns the last element of the list, or false
// if the list is empty.
func (l *List[T]) PopBack() (Node[T], bool) {
	return l.Remove(Handle{key: l.tail})
}

// Get returns a pointer to the payload of the element named by h,
// through which the payload can be both read and modified. It returns
// false if h is not currently in the list.
func (l *List[T]) Get(h Handle) (*T, bool) {
	n, ok := l.nodes.Get(h.key)
	if !ok {
		return nil, false
	}
	return &n.value, true
}

// Contains reports whether h names an element currently in the list.
func (l *List[T]) Contains(h Handle) bool {
	return l.nodes.Contains(h.key)
}

// Next returns the handle of the element following h, or false if h
// is the tail or is not currently in the list.
func (l *List[T]) Next(h Handle) (Handle, bool) {
	n, ok := l.nodes.Get(h.key)
	if !ok || n.next.IsZero() {
		return Handle{}, false
	}
	return Handle{key: n.next}, true
}

// Prev returns the handle of the element preceding h, or false if h
// is the head or is not currently in the list.
func (l *List[T]) Prev(h Handle) (Handle, bool) {
	n, ok := l.nodes.Get(h.key)
	if !ok || n.prev.IsZero() {
		return Handle{}, false
	}
	return Handle{key: n.prev}, true
}

// MoveToFront moves the element named by h to the front of the list
// and returns its new handle. The element changes slots, so h is
// invalidated and the returned handle replaces it. If h is already
// the head it is returned unchanged. It returns false if h is not
// currently in the list.
func (l *List[T]) MoveToFront(h Handle) (Handle, bool) {
	if h.key == l.head {
		return h, l.nodes.Contains(h.key)
	}

	n, ok := l.Remove(h)
	if !ok {
		return Handle{}, false
	}
	return l.PushFront(n.value), true
}

// MoveToBack moves the element named by h to the back of the list and
// returns its new handle. The element changes slots, so h is
// invalidated and the returned handle replaces it. If h is already
// the tail it is returned unchanged. It returns false if h is not
// currently in the list.
func (l *List[T]) MoveToBack(h Handle) (Handle, bool) {
	if h.key == l.tail {
		return h, l.nodes.Contains(h.key)
	}

	n, ok := l.Remove(h)
	if !ok {
		return Handle{}, false
	}
	return l.PushBack(n.value), true
}

// Clear removes all elements from the list, keeping the arena's
// capacity. Every outstanding handle is invalidated.
func (l *List[T]) Clear() {
	l.nodes.Clear()
	l.head = arena.Key{}
	l.tail = arena.Key{}
}

// Reserve ensures that the list has room for at least n more elements
// without growing its arena. It may allocate more than requested.
func (l *List[T]) Reserve(n int) {
	l.nodes.Reserve(n)
}

// ReserveExact ensures that the list has room for at least n more
// elements without growing its arena, allocating exactly the
// requested headroom if it needs to allocate at all.
func (l *List[T]) ReserveExact(n int) {
	l.nodes.ReserveExact(n)
}
