package types

import "sync"

// DefaultMap is a concurrency safe map that creates missing entries on
// first access.
//
//	locks := NewDefaultMap(func(string) *sync.Mutex { return new(sync.Mutex) })
//	locks.Get("aave").Lock()
type DefaultMap[K comparable, V any] struct {
	mu       sync.Mutex
	data     map[K]V
	newValue func(key K) V
}

// NewDefaultMap creates an empty map whose missing entries are built by
// newValue.
func NewDefaultMap[K comparable, V any](newValue func(key K) V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{
		data:     make(map[K]V),
		newValue: newValue,
	}
}

// Get returns the entry for key, creating and storing it if absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.data[key]
	if !ok {
		v = d.newValue(key)
		d.data[key] = v
	}

	return v
}

// Len returns the number of entries created so far.
func (d *DefaultMap[K, V]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.data)
}
