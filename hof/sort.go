package hof

import (
	"slices"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// Sort returns the elements of c ordered by compare. The sort is stable:
// elements comparing equal keep their original relative order.
//
// Positional categories keep their concrete type. A consumed Vector, Array
// or Text is sorted in its own storage. Sets and maps already have an
// intrinsic order, so the result is a [container.Vector] in compare order.
//
//	hof.Sort(cmp.Compare[int], container.NewList(3, 1, 2)) // → [1 2 3]
func Sort[T any](compare func(a, b T) int, c container.Source[T]) container.Container[T] {
	v := access.Of(c)
	items := collect(v)
	slices.SortStableFunc(items, compare)
	return rewrap(v, items, orderedOutput[T])
}

// SortWithIndex is [Sort] that also reports, for every output position, the
// index the element had in c.
//
//	s, idx := hof.SortWithIndex(container.NewVector(30, 50, -10, 0), cmp.Compare[int])
//	// s   → [-10 0 30 50]
//	// idx → [2 3 0 1]
func SortWithIndex[T any](c container.Source[T], compare func(a, b T) int) (container.Container[T], *container.Vector[int]) {
	v := access.Of(c)
	items := collect(v)
	perm := lo.Range(len(items))
	slices.SortStableFunc(perm, func(i, j int) int { return compare(items[i], items[j]) })

	sorted := make([]T, len(items))
	for k, i := range perm {
		sorted[k] = items[i]
	}
	return rewrap(v, sorted, orderedOutput[T]), container.VectorFrom(perm)
}

// collect returns the elements of v in a slice the caller owns: the released
// storage in Move mode, a fresh copy otherwise.
func collect[T any](v *access.View[T]) []T {
	if items, ok := v.Storage(); ok {
		return items
	}
	return slices.AppendSeq(make([]T, 0, v.Len()), v.Values())
}

// rewrap returns items, which the caller owns, as a container of the viewed
// type. Slice-backed containers adopt items without copying; any other
// container receives them one by one in a container built by out.
func rewrap[T any](
	v *access.View[T], items []T, out func(*access.View[T], int) container.Container[T],
) container.Container[T] {
	if a, ok := v.Container().(container.Adopter[T]); ok {
		return a.Adopt(items)
	}
	dst := out(v, len(items))
	for _, x := range items {
		dst.Add(x)
	}
	return dst
}
