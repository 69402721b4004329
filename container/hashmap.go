package container

import "github.com/hasbyte1/go-sigutil/maybe"

// HashMap is an unordered [CategoryHashMap] container of [Entry] values.
// Adding an entry whose key is already present replaces the old value.
//
//	m := container.NewHashMap(container.E("a", 1), container.E("b", 2))
//	m.Put("a", 10)
//	v := m.Get("a") // Just(10)
type HashMap[K, V any] struct {
	*hashStore[Entry[K, V]]
}

// NewHashMap creates a HashMap holding entries; later duplicates win.
func NewHashMap[K, V any](entries ...Entry[K, V]) *HashMap[K, V] {
	m := newHashMap[K, V](len(entries))
	for _, e := range entries {
		m.Add(e)
	}
	return m
}

// HashMapFrom creates a HashMap from a Go map.
func HashMapFrom[K comparable, V any](src map[K]V) *HashMap[K, V] {
	m := newHashMap[K, V](len(src))
	for k, v := range src {
		m.Put(k, v)
	}
	return m
}

func newHashMap[K, V any](sizeHint int) *HashMap[K, V] {
	return &HashMap[K, V]{hashStore: newHashStore(CategoryHashMap, entryKey[K, V], sizeHint)}
}

func entryKey[K, V any](e Entry[K, V]) any { return hashKey(e.Key) }

// Make returns an empty HashMap.
func (m *HashMap[K, V]) Make(sizeHint int) Container[Entry[K, V]] {
	return newHashMap[K, V](sizeHint)
}

// Put associates value with key.
func (m *HashMap[K, V]) Put(key K, value V) { m.Add(Entry[K, V]{Key: key, Value: value}) }

// Get returns the value for key, or Nothing when the key is absent.
func (m *HashMap[K, V]) Get(key K) maybe.Maybe[V] {
	e, ok := m.items[hashKey(key)]
	if !ok {
		return maybe.Nothing[V]()
	}
	return maybe.Just(e.Value)
}

// Has reports whether key is present.
func (m *HashMap[K, V]) Has(key K) bool {
	_, ok := m.items[hashKey(key)]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *HashMap[K, V]) Delete(key K) bool {
	return m.remove(Entry[K, V]{Key: key})
}

// Keys returns the keys in unspecified order.
func (m *HashMap[K, V]) Keys() []K {
	out := make([]K, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e.Key)
	}
	return out
}

// Concat returns a new HashMap holding m's entries overwritten by other's.
func (m *HashMap[K, V]) Concat(other *HashMap[K, V]) *HashMap[K, V] {
	out := newHashMap[K, V](m.Len() + other.Len())
	m.copyInto(out.hashStore)
	other.copyInto(out.hashStore)
	return out
}
