// Package memstore implements the store interfaces against in-memory
// collections. It is the engine's default backend: all state lives for the
// process lifetime and every collection serializes its writes behind a
// per-collection lock, preserving the one-record-per-(user,word) invariant
// and keeping concurrent reads free of torn writes.
package memstore

import "sync"

// collection is a generic keyed collection with auto-assigned, monotonically
// increasing int64 identifiers. Identifiers are never reused.
//
// All mutations run under the write lock; the ID counter only advances there,
// so creation order matches ID order. Reads take the read lock and return
// clones, never references into the map.
type collection[T any] struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]T
	clone func(T) T
}

// newCollection creates an empty collection. clone deep-copies an item so
// that callers never share memory with stored state; pass nil for item types
// whose value copy is already deep (no slices, maps, or pointers).
func newCollection[T any](clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		items: make(map[int64]T),
		clone: clone,
	}
}

// create assigns the next ID, stores the item returned by build, and returns
// a clone of it.
func (c *collection[T]) create(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	item := build(c.seq)
	c.items[c.seq] = item
	return c.clone(item)
}

// get returns a clone of the item with the given ID, if present.
func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(item), true
}

// list returns clones of all items matching pred, as a snapshot consistent
// with store state at call time. A nil pred matches everything.
func (c *collection[T]) list(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred == nil || pred(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

// update applies mutate to the stored item with the given ID and returns a
// clone of the result. The mutation runs under the write lock, so no reader
// observes a partially-applied update.
func (c *collection[T]) update(id int64, mutate func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	item = mutate(item)
	c.items[id] = item
	return c.clone(item), true
}

// upsert atomically finds the first item matching match and applies mutate to
// it, or creates a new item via build when none matches. Find-or-create runs
/// entirely under the write lock: two concurrent upserts for the same match
// serialize, and the second observes the first's write.
func (c *collection[T]) upsert(match func(T) bool, build func(id int64) T, mutate func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, item := range c.items {
		if match(item) {
			item = mutate(item)
			c.items[id] = item
			return c.clone(item)
		}
	}

	c.seq++
	item := mutate(build(c.seq))
	c.items[c.seq] = item
	return c.clone(item)
}

// createUnique creates a new item unless an existing item matches conflict.
// Check-then-create runs under the write lock, so concurrent creates with the
// same unique fields cannot both succeed. Returns the conflicting item and
// false when the create is rejected.
func (c *collection[T]) createUnique(conflict func(T) bool, build func(id int64) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if conflict(item) {
			return c.clone(item), false
		}
	}

	c.seq++
	item := build(c.seq)
	c.items[c.seq] = item
	return c.clone(item), true
}

// find returns a clone of the first item matching pred.
func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if pred(item) {
			return c.clone(item), true
		}
	}
	var zero T
	return zero, false
}

// size returns the number of stored items.
func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
