package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-sigutil/maybe"
)

// Array is a [CategoryFixedSize] buffer with a capacity fixed at
// construction. Elements are filled from the front; traversal covers the
// filled prefix only.
//
//	a := container.NewArray[int](4, 1, 2)
//	a.Len()   // 2
//	a.Cap()   // 4
//	a.Get(3)  // Nothing: beyond the current length
type Array[T any] struct {
	items    []T
	capacity int
}

// NewArray creates an Array with the given capacity holding items.
// It panics when capacity is negative or smaller than len(items).
func NewArray[T any](capacity int, items ...T) *Array[T] {
	if capacity < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity))
	}
	if len(items) > capacity {
		panic(fmt.Errorf("%w: %d items for capacity %d", ErrCapacityExceeded, len(items), capacity))
	}
	a := &Array[T]{items: make([]T, len(items), capacity), capacity: capacity}
	copy(a.items, items)
	return a
}

// Category returns [CategoryFixedSize].
func (a *Array[T]) Category() Category { return CategoryFixedSize }

// Len returns the number of filled positions.
func (a *Array[T]) Len() int { return len(a.items) }

// Cap returns the fixed capacity.
func (a *Array[T]) Cap() int { return a.capacity }

// IsFull reports whether Len() == Cap().
func (a *Array[T]) IsFull() bool { return len(a.items) == a.capacity }

// All yields the filled positions in order.
func (a *Array[T]) All() iter.Seq[T] { return slices.Values(a.items) }

// Backward yields the filled positions in reverse order.
func (a *Array[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(a.items) - 1; i >= 0; i-- {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every filled position.
func (a *Array[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range a.items {
			if !yield(&a.items[i]) {
				return
			}
		}
	}
}

// Add appends item. Filling past the capacity is a precondition violation:
// Add panics with an error wrapping [ErrCapacityExceeded]. Use [Array.TryAdd]
// when the caller cannot guarantee room.
func (a *Array[T]) Add(item T) {
	if err := a.TryAdd(item); err != nil {
		panic(err)
	}
}

// TryAdd appends item, or returns [ErrCapacityExceeded] when the array is full.
func (a *Array[T]) TryAdd(item T) error {
	if len(a.items) >= a.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, a.capacity)
	}
	a.items = append(a.items, item)
	return nil
}

// Make returns an empty Array whose capacity is the larger of a's capacity
// and sizeHint.
func (a *Array[T]) Make(sizeHint int) Container[T] {
	return NewArray[T](max(a.capacity, sizeHint))
}

// Release hands the filled positions to the caller and leaves a empty.
// The capacity is unchanged.
func (a *Array[T]) Release() []T {
	items := a.items
	a.items = make([]T, 0, a.capacity)
	return items
}

// Adopt returns an Array backed by items, with the larger of a's capacity and
// len(items) as its capacity.
func (a *Array[T]) Adopt(items []T) Container[T] {
	return &Array[T]{items: items, capacity: max(a.capacity, len(items))}
}

// Concat returns a new Array with capacity a.Cap()+other.Cap() holding a's
// items followed by other's.
func (a *Array[T]) Concat(other *Array[T]) *Array[T] {
	out := NewArray[T](a.capacity + other.capacity)
	out.items = append(out.items, a.items...)
	out.items = append(out.items, other.items...)
	return out
}

// Get returns the item at index, or Nothing when index is beyond the current
// length (even if it is within the capacity).
func (a *Array[T]) Get(index int) maybe.Maybe[T] {
	if index < 0 || index >= len(a.items) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(a.items[index])
}

// Set replaces a filled position and reports whether index was in range.
func (a *Array[T]) Set(index int, item T) bool {
	if index < 0 || index >= len(a.items) {
		return false
	}
	a.items[index] = item
	return true
}

// String implements [fmt.Stringer].
func (a *Array[T]) String() string { return fmt.Sprintf("%v", a.items) }
