package hof

import (
	"iter"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// FoldLeft reduces c from the first element to the last:
// f(...f(f(init, x0), x1)..., xn).
//
//	sum := hof.FoldLeft(func(acc, n int) int { return acc + n }, 0, container.NewVector(1, 2, 3))
func FoldLeft[T, A any](f func(A, T) A, init A, c container.Source[T]) A {
	acc := init
	for x := range access.Of(c).Values() {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight reduces c from the last element to the first:
// f(x0, f(x1, ...f(xn, init))).
func FoldRight[T, A any](f func(T, A) A, init A, c container.Source[T]) A {
	acc := init
	for x := range access.Of(c).Backward() {
		acc = f(x, acc)
	}
	return acc
}

// DotProduct combines a and b element by element with oper and folds the
// results left to right with fold, stopping at the shorter input. No
// intermediate container is built, so equal products are never collapsed
// even when the inputs are sets.
//
//	hof.DotProduct(
//	    func(acc, p int) int { return acc + p },
//	    func(x, y int) int { return x * y },
//	    0, container.NewVector(1, 2, 3), container.NewVector(4, 5, 6))
//	// → 32
func DotProduct[A, B, C, R any](
	fold func(R, C) R, oper func(A, B) C, init R,
	a container.Source[A], b container.Source[B],
) R {
	nextB, stop := iter.Pull(access.Of(b).Values())
	defer stop()
	acc := init
	for x := range access.Of(a).Values() {
		y, ok := nextB()
		if !ok {
			break
		}
		acc = fold(acc, oper(x, y))
	}
	return acc
}

// DotProductN is [DotProduct] over any number of same-typed inputs. oper
// receives one element from each input; the slice is reused between calls.
func DotProductN[T, C, R any](fold func(R, C) R, oper func([]T) C, init R, cs ...container.Source[T]) R {
	if len(cs) == 0 {
		return init
	}
	views := make([]*access.View[T], len(cs))
	for i, c := range cs {
		views[i] = access.Of(c)
	}
	acc := init
	for row := range rows(views) {
		acc = fold(acc, oper(row))
	}
	return acc
}
