package hof

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sigutil/container"
)

// Number is the element constraint of [Seqn] and the arithmetic operations.
type Number interface {
	constraints.Integer | constraints.Float
}

// Replicate returns a Vector holding n copies of v. A negative n yields an
// empty Vector.
func Replicate[T any](n int, v T) *container.Vector[T] {
	return container.VectorFrom(lo.Times(max(n, 0), func(int) T { return v }))
}

// ReplicateInto adds n copies of v to a fresh container made from proto, so
// the result has proto's concrete type. A set receives v once.
func ReplicateInto[T any](proto container.Container[T], n int, v T) container.Container[T] {
	n = max(n, 0)
	out := proto.Make(n)
	for range n {
		out.Add(v)
	}
	return out
}

// Seqn returns the arithmetic sequence start, start+step, ... of n elements.
//
//	hof.Seqn(1.0, 0.5, 4) // → [1 1.5 2 2.5]
func Seqn[T Number](start, step T, n int) *container.Vector[T] {
	out := container.NewVector[T]()
	for i := range n {
		out.Add(start + T(i)*step)
	}
	return out
}
