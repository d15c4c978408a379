// Package lru provides a fixed-capacity cache with least-recently-used eviction.
//
// The cache is not safe for concurrent mutation. Callers sharing it across
// goroutines must synchronize externally.
package lru

import (
	"container/list"
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New when the capacity is not positive.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache maps keys to values and keeps at most capacity entries.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	// front is the most recently used entry
	order *list.List
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("lru.New(%d) > %w", capacity, ErrInvalidCapacity)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

// Get returns the value for key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Set stores value under key. When the cache is full the least recently used
// entry is evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

func (c *Cache[K, V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.items, oldest.Value.(*entry[K, V]).key)
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys from the most to the least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}
