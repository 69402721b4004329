package hof

import (
	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/maybe"
)

// Map applies f to every element of c and returns a new container of the
// same category holding the results.
//
// In an ordered or hash category, results that compare equal collapse:
//
//	hof.Map(func(n int) int { return n % 2 }, container.NewOrderedSet(1, 2, 3))
//	// → {0 1}
func Map[T, U any](f func(T) U, c container.Source[T]) container.Container[U] {
	v := access.Of(c)
	out := container.Rebind[T, U](v.Container(), v.Len())
	for x := range v.Values() {
		out.Add(f(x))
	}
	return out
}

// MapMaybe applies f to every element and keeps the present results, in a
// container of the same category as c.
func MapMaybe[T, U any](f func(T) maybe.Maybe[U], c container.Source[T]) container.Container[U] {
	v := access.Of(c)
	out := container.Rebind[T, U](v.Container(), v.Len())
	for x := range v.Values() {
		if y, ok := f(x).Get(); ok {
			out.Add(y)
		}
	}
	return out
}

// Apply calls f with a pointer to every element of c, in traversal order.
func Apply[T any](f func(*T), c container.Mutable[T]) {
	for p := range access.Mutate(c).Pointers() {
		f(p)
	}
}

// MapInPlace replaces every element x of c with f(x).
func MapInPlace[T any](f func(T) T, c container.Mutable[T]) {
	Apply(func(p *T) { *p = f(*p) }, c)
}
