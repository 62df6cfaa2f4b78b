package slotlist

import "deedles.dev/slotlist/arena"

// A Cursor is a read-only traversal position over a [List]. It is a
// live view, not a snapshot: every step resolves the list's links as
// they are at call time, so edits made through the list between steps
// are visible to the cursor. If the element under the cursor is
// removed, the cursor's queries uniformly report absence.
type Cursor[T any] struct {
	list *List[T]
	pos  arena.Key
}

// CursorAt returns a cursor anchored at the element named by h, or
// false if h is not currently in the list.
func (l *List[T]) CursorAt(h Handle) (Cursor[T], bool) {
	if !l.nodes.Contains(h.key) {
		return Cursor[T]{}, false
	}
	return Cursor[T]{list: l, pos: h.key}, true
}

// CursorFront returns a cursor anchored at the first element of the
// list, or false if the list is empty.
func (l *List[T]) CursorFront() (Cursor[T], bool) {
	return l.CursorAt(Handle{key: l.head})
}

// CursorBack returns a cursor anchored at the last element of the
// list, or false if the list is empty.
func (l *List[T]) CursorBack() (Cursor[T], bool) {
	return l.CursorAt(Handle{key: l.tail})
}

// Current returns the payload at the cursor's position, or false if
// that element is no longer in the list.
func (c *Cursor[T]) Current() (T, bool) {
	n, ok := c.node()
	if !ok {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Handle returns the cursor's position as a handle, or false if the
// element there is no longer in the list. Structural edits at the
// cursor's position go through the list using this handle.
func (c *Cursor[T]) Handle() (Handle, bool) {
	if _, ok := c.node(); !ok {
		return Handle{}, false
	}
	return Handle{key: c.pos}, true
}

// Advance moves the cursor to the next element and returns true. If
// there is no next element the cursor is left unmoved and Advance
// returns false.
func (c *Cursor[T]) Advance() bool {
	n, ok := c.node()
	if !ok || n.next.IsZero() {
		return false
	}
	c.pos = n.next
	return true
}

// Retreat moves the cursor to the previous element and returns true.
// If there is no previous element the cursor is left unmoved and
// Retreat returns false.
func (c *Cursor[T]) Retreat() bool {
	n, ok := c.node()
	if !ok || n.prev.IsZero() {
		return false
	}
	c.pos = n.prev
	return true
}

func (c *Cursor[T]) node() (*node[T], bool) {
	if c.list == nil {
		return nil, false
	}
	return c.list.nodes.Get(c.pos)
}

// A MutableCursor is a traversal position over a [List] whose Current
// method yields a mutable reference to the payload, permitting
// in-place updates without re-locating the element by handle. It
// follows the same live-view contract as [Cursor].
//
// A MutableCursor does not perform structural edits itself; those go
// through the list using the handle at the cursor's position. While a
// MutableCursor is in use, the list must not be accessed through
// anything else.
type MutableCursor[T any] struct {
	list *List[T]
	pos  arena.Key
}

// MutableCursorAt returns a mutable cursor anchored at the element
// named by h, or false if h is not currently in the list.
func (l *List[T]) MutableCursorAt(h Handle) (MutableCursor[T], bool) {
	if !l.nodes.Contains(h.key) {
		return MutableCursor[T]{}, false
	}
	return MutableCursor[T]{list: l, pos: h.key}, true
}

// MutableCursorFront returns a mutable cursor anchored at the first
// element of the list, or false if the list is empty.
func (l *List[T]) MutableCursorFront() (MutableCursor[T], bool) {
	return l.MutableCursorAt(Handle{key: l.head})
}

// MutableCursorBack returns a mutable cursor anchored at the last
// element of the list, or false if the list is empty.
func (l *List[T]) MutableCursorBack() (MutableCursor[T], bool) {
	return l.MutableCursorAt(Handle{key: l.tail})
}

// Current returns a pointer to the payload at the cursor's position,
// or false if that element is no longer in the list.
func (c *MutableCursor[T]) Current() (*T, bool) {
	n, ok := c.node()
	if !ok {
		return nil, false
	}
	return &n.value, true
}

// Handle returns the cursor's position as a handle, or false if the
// element there is no longer in the list.
func (c *MutableCursor[T]) Handle() (Handle, bool) {
	if _, ok := c.node(); !ok {
		return Handle{}, false
	}
	return Handle{key: c.pos}, true
}

// Advance moves the cursor to the next element and returns true. If
// there is no next element the cursor is left unmoved and Advance
// returns false.
func (c *MutableCursor[T]) Advance() bool {
	n, ok := c.node()
	if !ok || n.next.IsZero() {
		return false
	}
	c.pos = n.next
	return true
}

// Retreat moves the cursor to the previous element and returns true.
// If there is no previous element the cursor is left unmoved and
// Retreat returns false.
func (c *MutableCursor[T]) Retreat() bool {
	n, ok := c.node()
	if !ok || n.prev.IsZero() {
		return false
	}
	c.pos = n.prev
	return true
}

func (c *MutableCursor[T]) node() (*node[T], bool) {
	if c.list == nil {
		return nil, false
	}
	return c.list.nodes.Get(c.pos)
}
