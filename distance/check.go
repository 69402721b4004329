package distance

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
)

// Number is the element constraint of the numeric functions.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsSameLength reports whether a and b hold the same number of elements.
func IsSameLength[A, B any](a container.Source[A], b container.Source[B]) bool {
	return container.Describe(a).Len() == container.Describe(b).Len()
}

// IsDistribution reports whether c is a discrete probability distribution:
// non-empty, every element non-negative, and a sum within the tolerance of 1.
func IsDistribution[T Number](c container.Source[T], opts ...Option) bool {
	o := resolve(opts)
	type acc struct {
		n        int
		sum      float64
		negative bool
	}
	r := hof.FoldLeft(func(a acc, x T) acc {
		f := float64(x)
		return acc{n: a.n + 1, sum: a.sum + f, negative: a.negative || f < 0}
	}, acc{}, c)
	return r.n > 0 && !r.negative && math.Abs(r.sum-1) <= o.Tolerance
}

// HasZero reports whether any element of c equals 0.
func HasZero[T Number](c container.Source[T]) bool {
	return hof.FoldLeft(func(found bool, x T) bool { return found || x == 0 }, false, c)
}

// snapshot reads c once into a Vector so it can be traversed repeatedly,
// even when c was handed over with access.Consume.
func snapshot[T any](c container.Source[T]) *container.Vector[T] {
	return container.VectorFrom(slices.Collect(access.Of(c).Values()))
}
