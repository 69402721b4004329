package container

import "fmt"

// Entry is the element type of the map categories: a key and its value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// E builds an Entry.
func E[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String returns "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// mapMaker lets [New] build a typed map for an Entry element type without
// knowing K and V statically.
type mapMaker interface {
	makeMap(cat Category, sizeHint int) any
}

func (*Entry[K, V]) makeMap(cat Category, sizeHint int) any {
	if cat == CategoryOrderedMap {
		return NewOrderedMapFunc[K, V](Compare[K])
	}
	return newHashMap[K, V](sizeHint)
}
