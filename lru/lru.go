// Package lru provides a least-recently-used cache built on a
// slotlist.List. It doubles as a worked example of retaining handles
// long-term: the cache keeps one handle per key, and those handles
// stay valid across every edit made elsewhere in the list.
//
// Synchronization in caching strategies tends to be specific to the
// application, so the cache makes no attempt at it and is not safe
// for concurrent use.
package lru

import "deedles.dev/slotlist"

// A Cache maps keys to values, tracking the least recently used
// entries as candidates for eviction. The zero value of a Cache is an
// empty cache ready to use.
type Cache[K comparable, V any] struct {
	index map[K]slotlist.Handle
	queue slotlist.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return c.queue.Len()
}

// Insert adds an entry to the cache as the most recently used,
// returning the previous value associated with the key, if any.
func (c *Cache[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if c.index == nil {
		c.index = make(map[K]slotlist.Handle)
	}
	if h, ok := c.index[key]; ok {
		n, _ := c.queue.Remove(h)
		previous, replaced = n.Value().value, true
	}
	c.index[key] = c.queue.PushFront(entry[K, V]{key: key, value: value})
	return previous, replaced
}

// Lookup returns the value associated with the given key, marking its
// entry as the most recently used.
func (c *Cache[K, V]) Lookup(key K) (value V, found bool) {
	h, ok := c.index[key]
	if !ok {
		return value, false
	}

	// Moving the entry reslots it, so record the fresh handle.
	h, _ = c.queue.MoveToFront(h)
	c.index[key] = h

	e, _ := c.queue.Get(h)
	return e.value, true
}

// Delete removes the entry associated with the given key.
func (c *Cache[K, V]) Delete(key K) (value V, deleted bool) {
	h, ok := c.index[key]
	if !ok {
		return value, false
	}
	delete(c.index, key)
	n, _ := c.queue.Remove(h)
	return n.Value().value, true
}

// Evict removes and returns the least recently used entry.
func (c *Cache[K, V]) Evict() (key K, value V, evicted bool) {
	n, ok := c.queue.PopBack()
	if !ok {
		return key, value, false
	}
	e := n.Value()
	delete(c.index, e.key)
	return e.key, e.value, true
}

// Range calls f for each entry in the cache, from most to least
// recently used. If f returns false, iteration stops.
func (c *Cache[K, V]) Range(f func(K, V) bool) {
	cur, ok := c.queue.CursorFront()
	if !ok {
		return
	}
	for {
		e, _ := cur.Current()
		if !f(e.key, e.value) {
			return
		}
		if !cur.Advance() {
			return
		}
	}
}
