package lru_test

import (
	"testing"

	"deedles.dev/slotlist/lru"
	"github.com/stretchr/testify/require"
)

func TestInsertLookup(t *testing.T) {
	var c lru.Cache[string, int]

	_, replaced := c.Insert("one", 1)
	require.False(t, replaced)
	_, replaced = c.Insert("two", 2)
	require.False(t, replaced)
	require.Equal(t, 2, c.Len())

	v, found := c.Lookup("one")
	require.True(t, found)
	require.Equal(t, 1, v)

	_, found = c.Lookup("three")
	require.False(t, found)

	previous, replaced := c.Insert("one", 10)
	require.True(t, replaced)
	require.Equal(t, 1, previous)
	require.Equal(t, 2, c.Len())

	v, found = c.Lookup("one")
	require.True(t, found)
	require.Equal(t, 10, v)
}

func TestEvictOrder(t *testing.T) {
	var c lru.Cache[string, int]

	c.Insert("one", 1)
	c.Insert("two", 2)
	c.Insert("three", 3)

	// Touching an entry makes it the most recently used.
	c.Lookup("one")

	key, value, evicted := c.Evict()
	require.True(t, evicted)
	require.Equal(t, "two", key)
	require.Equal(t, 2, value)

	key, _, evicted = c.Evict()
	require.True(t, evicted)
	require.Equal(t, "three", key)

	key, _, evicted = c.Evict()
	require.True(t, evicted)
	require.Equal(t, "one", key)

	_, _, evicted = c.Evict()
	require.False(t, evicted)
	require.Equal(t, 0, c.Len())
}

func TestDelete(t *testing.T) {
	var c lru.Cache[string, int]

	c.Insert("one", 1)
	c.Insert("two", 2)

	v, deleted := c.Delete("one")
	require.True(t, deleted)
	require.Equal(t, 1, v)
	require.Equal(t, 1, c.Len())

	_, deleted = c.Delete("one")
	require.False(t, deleted)

	_, found := c.Lookup("one")
	require.False(t, found)
}

func TestRange(t *testing.T) {
	var c lru.Cache[string, int]

	c.Insert("one", 1)
	c.Insert("two", 2)
	c.Insert("three", 3)
	c.Lookup("two")

	var keys []string
	c.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"two", "three", "one"}, keys)

	keys = keys[:0]
	c.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return false
	})
	require.Equal(t, []string{"two"}, keys)

	var empty lru.Cache[string, int]
	empty.Range(func(string, int) bool {
		t.Fatal("range over an empty cache")
		return false
	})
}
