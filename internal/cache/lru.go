// Package cache provides a small thread-safe LRU cache.
package cache

import (
	"sync"
)

// DefaultSize is used when New is given a non-positive size.
const DefaultSize = 64

// LRU is a fixed-size least recently used cache.
type LRU[K comparable, V any] struct {
	maxSize int
	items   map[K]*node[K, V]
	head    *node[K, V]
	tail    *node[K, V]
	mu      sync.Mutex
}

type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// New creates an LRU holding at most maxSize entries.
func New[K comparable, V any](maxSize int) *LRU[K, V] {
	if maxSize <= 0 {
		maxSize = DefaultSize
	}

	// Sentinels
	head := &node[K, V]{}
	tail := &node[K, V]{}
	head.next = tail
	tail.prev = head

	return &LRU[K, V]{
		maxSize: maxSize,
		items:   make(map[K]*node[K, V]),
		head:    head,
		tail:    tail,
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToHead(n)
	return n.value, true
}

// Set adds or replaces key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.moveToHead(n)
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.items[key] = n
	c.addToHead(n)

	if len(c.items) > c.maxSize {
		c.evict()
	}
}

// Delete removes key.
func (c *LRU[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		c.removeNode(n)
		delete(c.items, key)
	}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*node[K, V])
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Must be called with mu held.
func (c *LRU[K, V]) moveToHead(n *node[K, V]) {
	c.removeNode(n)
	c.addToHead(n)
}

func (c *LRU[K, V]) addToHead(n *node[K, V]) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

func (c *LRU[K, V]) removeNode(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (c *LRU[K, V]) evict() {
	last := c.tail.prev
	if last == c.head {
		return
	}
	c.removeNode(last)
	delete(c.items, last.key)
}
