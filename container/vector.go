package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-sigutil/maybe"
)

// Vector is a growable, slice-backed [CategorySequence] container with
// random access.
//
//	v := container.NewVector(1, 2, 3)
//	v.Add(4)
//	x := v.Get(10) // maybe.Nothing[int]()
type Vector[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewVector creates a Vector from a variadic list of items (copied).
func NewVector[T any](items ...T) *Vector[T] {
	return VectorFrom(items)
}

// VectorFrom creates a Vector from a slice (the slice is copied).
func VectorFrom[T any](items []T) *Vector[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Vector[T]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Capability descriptor
// ─────────────────────────────────────────────────────────────────────────────

// Category returns [CategorySequence].
func (v *Vector[T]) Category() Category { return CategorySequence }

// Len returns the number of items.
func (v *Vector[T]) Len() int { return len(v.items) }

// All yields the items in order.
func (v *Vector[T]) All() iter.Seq[T] { return slices.Values(v.items) }

// Backward yields the items in reverse order.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(v.items) - 1; i >= 0; i-- {
			if !yield(v.items[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every item, for in-place updates.
func (v *Vector[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range v.items {
			if !yield(&v.items[i]) {
				return
			}
		}
	}
}

// Add appends item.
func (v *Vector[T]) Add(item T) { v.items = append(v.items, item) }

// Make returns an empty Vector with room for sizeHint items.
func (v *Vector[T]) Make(sizeHint int) Container[T] {
	return &Vector[T]{items: make([]T, 0, max(sizeHint, 0))}
}

// Release hands the backing slice to the caller and leaves v empty.
func (v *Vector[T]) Release() []T {
	items := v.items
	v.items = nil
	return items
}

// Adopt returns a Vector backed by items.
func (v *Vector[T]) Adopt(items []T) Container[T] { return &Vector[T]{items: items} }

// Concat returns a new Vector holding v's items followed by other's.
func (v *Vector[T]) Concat(other *Vector[T]) *Vector[T] {
	out := make([]T, 0, len(v.items)+len(other.items))
	out = append(out, v.items...)
	out = append(out, other.items...)
	return &Vector[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the item at index, or Nothing when index is out of range.
func (v *Vector[T]) Get(index int) maybe.Maybe[T] {
	if index < 0 || index >= len(v.items) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.items[index])
}

// Set replaces the item at index and reports whether index was in range.
func (v *Vector[T]) Set(index int, item T) bool {
	if index < 0 || index >= len(v.items) {
		return false
	}
	v.items[index] = item
	return true
}

// IsEmpty reports whether the vector holds no items.
func (v *Vector[T]) IsEmpty() bool { return len(v.items) == 0 }

// ToSlice returns a copy of the items.
func (v *Vector[T]) ToSlice() []T { return slices.Clone(v.items) }

// String implements [fmt.Stringer].
func (v *Vector[T]) String() string { return fmt.Sprintf("%v", v.items) }
