package hof

import (
	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// Filter returns a new container of the same concrete type as c holding the
// elements for which pred returns true. A consumed Vector, Array or Text is
// compacted in its own storage.
func Filter[T any](pred func(T) bool, c container.Source[T]) container.Container[T] {
	v := access.Of(c)
	if items, ok := v.Storage(); ok {
		kept := items[:0]
		for _, x := range items {
			if pred(x) {
				kept = append(kept, x)
			}
		}
		clear(items[len(kept):])
		return rewrap(v, kept, sameType[T])
	}
	out := v.Container().Make(v.Len())
	for x := range v.Values() {
		if pred(x) {
			out.Add(x)
		}
	}
	return out
}

// FilterIndexed is [Filter] with the traversal position passed to pred.
// Positions count up from start.
//
//	hof.FilterIndexed(func(i int, _ string) bool { return i%2 == 0 }, 0,
//	    container.NewVector("a", "b", "c"))
//	// → [a c]
func FilterIndexed[T any](pred func(int, T) bool, start int, c container.Source[T]) container.Container[T] {
	v := access.Of(c)
	if items, ok := v.Storage(); ok {
		kept := items[:0]
		for i, x := range items {
			if pred(start+i, x) {
				kept = append(kept, x)
			}
		}
		clear(items[len(kept):])
		return rewrap(v, kept, sameType[T])
	}
	out := v.Container().Make(v.Len())
	i := start
	for x := range v.Values() {
		if pred(i, x) {
			out.Add(x)
		}
		i++
	}
	return out
}

// Partition splits c in one traversal into the elements for which pred is
// true and the rest. The first result equals Filter(pred, c).
func Partition[T any](pred func(T) bool, c container.Source[T]) (container.Container[T], container.Container[T]) {
	v := access.Of(c)
	n := v.Len()
	in, out := v.Container().Make(n), v.Container().Make(n)
	for x := range v.Values() {
		if pred(x) {
			in.Add(x)
		} else {
			out.Add(x)
		}
	}
	return in, out
}

// sameType builds the output of a filtering operation: an empty container of
// the viewed type.
func sameType[T any](v *access.View[T], sizeHint int) container.Container[T] {
	return v.Container().Make(sizeHint)
}
