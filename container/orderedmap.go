package container

import (
	"cmp"

	"github.com/hasbyte1/go-sigutil/maybe"
)

// OrderedMap is a [CategoryOrderedMap] container of [Entry] values traversed
// in ascending key order. Adding an entry whose key is already present
// replaces the old value.
type OrderedMap[K, V any] struct {
	*treeStore[Entry[K, V]]
	keyCompare func(a, b K) int
}

// NewOrderedMap creates an OrderedMap over an ordered key type.
func NewOrderedMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	return NewOrderedMapFunc(cmp.Compare[K], entries...)
}

// NewOrderedMapFunc creates an OrderedMap whose keys are ordered by compare.
func NewOrderedMapFunc[K, V any](compare func(a, b K) int, entries ...Entry[K, V]) *OrderedMap[K, V] {
	m := &OrderedMap[K, V]{
		treeStore: newTreeStore(CategoryOrderedMap, func(a, b Entry[K, V]) int {
			return compare(a.Key, b.Key)
		}),
		keyCompare: compare,
	}
	for _, e := range entries {
		m.Add(e)
	}
	return m
}

// Make returns an empty OrderedMap with the same key order.
func (m *OrderedMap[K, V]) Make(int) Container[Entry[K, V]] {
	return NewOrderedMapFunc[K, V](m.keyCompare)
}

// Put associates value with key.
func (m *OrderedMap[K, V]) Put(key K, value V) { m.Add(Entry[K, V]{Key: key, Value: value}) }

// Get returns the value for key, or Nothing when the key is absent.
func (m *OrderedMap[K, V]) Get(key K) maybe.Maybe[V] {
	e, ok := m.tree.Get(Entry[K, V]{Key: key})
	if !ok {
		return maybe.Nothing[V]()
	}
	return maybe.Just(e.Value)
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool { return m.tree.Has(Entry[K, V]{Key: key}) }

// Delete removes key and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	_, ok := m.tree.Delete(Entry[K, V]{Key: key})
	return ok
}

// Keys returns the keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	for e := range m.All() {
		out = append(out, e.Key)
	}
	return out
}

// Min returns the entry with the smallest key, or Nothing when empty.
func (m *OrderedMap[K, V]) Min() maybe.Maybe[Entry[K, V]] { return m.min() }

// Max returns the entry with the largest key, or Nothing when empty.
func (m *OrderedMap[K, V]) Max() maybe.Maybe[Entry[K, V]] { return m.max() }

// Concat returns a new OrderedMap holding m's entries overwritten by other's.
func (m *OrderedMap[K, V]) Concat(other *OrderedMap[K, V]) *OrderedMap[K, V] {
	out := &OrderedMap[K, V]{treeStore: m.clone(), keyCompare: m.keyCompare}
	for e := range other.All() {
		out.Add(e)
	}
	return out
}
