package hof

import (
	"github.com/hasbyte1/go-sigutil/container"
)

// RemoveDuplicates splits c into its first occurrences, in a container of
// the same concrete type, and the later repeats, in traversal order.
// Elements need not be comparable; they are matched by value.
//
//	kept, removed := hof.RemoveDuplicates(container.NewVector(1, 5, 3, 3, 0, 4, 0, 1, 3))
//	// kept    → [1 5 3 0 4]
//	// removed → [3 0 1 3]
func RemoveDuplicates[T any](c container.Source[T]) (kept, removed container.Container[T]) {
	seen := container.NewHashSet[T]()
	return Partition(func(x T) bool {
		if seen.Has(x) {
			return false
		}
		seen.Add(x)
		return true
	}, c)
}

// RemoveOne returns c without the first element equal to v, and whether
// such an element was found.
func RemoveOne[T comparable](v T, c container.Source[T]) (container.Container[T], bool) {
	return RemoveOneIf(func(x T) bool { return x == v }, c)
}

// RemoveOneIf returns c without the first element satisfying pred, and
// whether such an element was found.
func RemoveOneIf[T any](pred func(T) bool, c container.Source[T]) (container.Container[T], bool) {
	found := false
	out := Filter(func(x T) bool {
		if !found && pred(x) {
			found = true
			return false
		}
		return true
	}, c)
	return out, found
}

// RemoveAll returns c without the elements equal to v, and whether any was
// removed.
//
//	hof.RemoveAll(3, container.NewVector(1, 5, 3, 3, 0, 4, 0, 1, 3)) // → [1 5 0 4 0 1], true
func RemoveAll[T comparable](v T, c container.Source[T]) (container.Container[T], bool) {
	return RemoveAllIf(func(x T) bool { return x == v }, c)
}

// RemoveAllIf returns c without the elements satisfying pred, and whether
// any was removed.
func RemoveAllIf[T any](pred func(T) bool, c container.Source[T]) (container.Container[T], bool) {
	removed := false
	out := Filter(func(x T) bool {
		if pred(x) {
			removed = true
			return false
		}
		return true
	}, c)
	return out, removed
}
