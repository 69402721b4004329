package container

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// hashStore is the unordered, duplicate-collapsing storage shared by the hash
// categories. key maps an element to its Go map key.
type hashStore[E any] struct {
	cat   Category
	key   func(E) any
	items map[any]E
}

func newHashStore[E any](cat Category, key func(E) any, sizeHint int) *hashStore[E] {
	return &hashStore[E]{cat: cat, key: key, items: make(map[any]E, max(sizeHint, 0))}
}

func (s *hashStore[E]) Category() Category { return s.cat }

func (s *hashStore[E]) Len() int { return len(s.items) }

func (s *hashStore[E]) All() iter.Seq[E] { return maps.Values(s.items) }

// Add inserts e; an element with the same key is replaced.
func (s *hashStore[E]) Add(e E) { s.items[s.key(e)] = e }

func (s *hashStore[E]) Make(sizeHint int) Container[E] {
	return newHashStore(s.cat, s.key, sizeHint)
}

func (s *hashStore[E]) has(e E) bool {
	_, ok := s.items[s.key(e)]
	return ok
}

func (s *hashStore[E]) remove(e E) bool {
	k := s.key(e)
	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	return true
}

func (s *hashStore[E]) copyInto(dst *hashStore[E]) {
	for k, v := range s.items {
		dst.items[k] = v
	}
}

func (s *hashStore[E]) String() string {
	parts := make([]string, 0, len(s.items))
	for _, v := range s.items {
		parts = append(parts, fmt.Sprint(v))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// HashSet
// ─────────────────────────────────────────────────────────────────────────────

// HashSet is an unordered [CategoryHashSet] container. Adding an element
// equal to an existing one has no visible effect.
//
// Any element type is accepted; see the package documentation for how
// non-comparable values are keyed. Traversal order is unspecified.
type HashSet[T any] struct {
	*hashStore[T]
}

// NewHashSet creates a HashSet holding items.
func NewHashSet[T any](items ...T) *HashSet[T] {
	s := newHashSet[T](len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func newHashSet[T any](sizeHint int) *HashSet[T] {
	return &HashSet[T]{hashStore: newHashStore(CategoryHashSet, selfKey[T], sizeHint)}
}

// Make returns an empty HashSet.
func (s *HashSet[T]) Make(sizeHint int) Container[T] { return newHashSet[T](sizeHint) }

// Has reports whether item is in the set.
func (s *HashSet[T]) Has(item T) bool { return s.has(item) }

// Delete removes item and reports whether it was present.
func (s *HashSet[T]) Delete(item T) bool { return s.remove(item) }

// Concat returns a new HashSet holding the union of s and other.
func (s *HashSet[T]) Concat(other *HashSet[T]) *HashSet[T] {
	out := newHashSet[T](s.Len() + other.Len())
	s.copyInto(out.hashStore)
	other.copyInto(out.hashStore)
	return out
}
