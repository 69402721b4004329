package hof

import (
	"slices"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// Reverse returns the elements of c in reverse traversal order. Positional
// categories keep their concrete type; a set or map, whose order is
// intrinsic, yields a [container.Vector]. A consumed Vector, Array or Text
// is reversed in its own storage.
func Reverse[T any](c container.Source[T]) container.Container[T] {
	v := access.Of(c)
	if items, ok := v.Storage(); ok {
		slices.Reverse(items)
		return rewrap(v, items, orderedOutput[T])
	}
	out := orderedOutput(v, v.Len())
	for x := range v.Backward() {
		out.Add(x)
	}
	return out
}

// Take returns the first n elements of c in a container of the same
// concrete type. A negative n is treated as 0; an n past the end takes
// everything. A consumed Vector, Array or Text is truncated in its own
// storage.
func Take[T any](n int, c container.Source[T]) container.Container[T] {
	v := access.Of(c)
	n = max(n, 0)
	if items, ok := v.Storage(); ok {
		n = min(n, len(items))
		clear(items[n:])
		return rewrap(v, items[:n], sameType[T])
	}
	out := v.Container().Make(min(n, v.Len()))
	if n == 0 {
		return out
	}
	i := 0
	for x := range v.Values() {
		out.Add(x)
		if i++; i == n {
			break
		}
	}
	return out
}

// Drop returns c without its first n elements, in a container of the same
// concrete type. A negative n is treated as 0; an n past the end yields an
// empty container. A consumed Vector, Array or Text keeps the remaining
// elements in its own storage.
func Drop[T any](n int, c container.Source[T]) container.Container[T] {
	v := access.Of(c)
	n = max(n, 0)
	if items, ok := v.Storage(); ok {
		k := copy(items, items[min(n, len(items)):])
		clear(items[k:])
		return rewrap(v, items[:k], sameType[T])
	}
	out := v.Container().Make(max(v.Len()-n, 0))
	i := 0
	for x := range v.Values() {
		if i >= n {
			out.Add(x)
		}
		i++
	}
	return out
}

// Concatenator is implemented by containers with a typed, non-mutating
// Concat. Every concrete container in package container implements it.
type Concatenator[C any] interface {
	Concat(other C) C
}

// Merge returns a fresh container holding a's elements followed by b's,
// following the insertion rule of their shared type. a and b must have the
// same concrete type; mixing types does not compile:
//
//	hof.Merge(container.NewVector(1), container.NewVector(2)) // ok
//	hof.Merge(container.NewVector(1), container.NewList(2))   // compile error
func Merge[C Concatenator[C]](a, b C) C {
	return a.Concat(b)
}

// MergeInto adds the elements of a and then b to a fresh container made from
// proto, so inputs of different categories can be combined into an explicit
// output category.
func MergeInto[T any](proto container.Container[T], a, b container.Source[T]) container.Container[T] {
	va, vb := access.Of(a), access.Of(b)
	out := proto.Make(va.Len() + vb.Len())
	for x := range va.Values() {
		out.Add(x)
	}
	for x := range vb.Values() {
		out.Add(x)
	}
	return out
}

// orderedOutput returns the container an order-producing operation writes
// to: a fresh instance of the viewed type for positional categories, a
// Vector otherwise.
func orderedOutput[T any](v *access.View[T], sizeHint int) container.Container[T] {
	if v.Category().Positional() {
		return v.Container().Make(sizeHint)
	}
	return container.NewVector[T]()
}
