package distance

import (
	"math"

	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
	"github.com/hasbyte1/go-sigutil/maybe"
)

// tally accumulates a running value together with the number of elements
// seen, so that empty inputs can be told apart from a zero result.
type tally struct {
	n int
	v float64
}

func (t tally) result(f func(float64) float64) maybe.Maybe[float64] {
	if t.n == 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(f(t.v))
}

func identity(x float64) float64 { return x }

// powSum returns the fold step of Σ|x|^p.
func powSum(p float64) func(tally, float64) tally {
	return func(t tally, x float64) tally {
		return tally{n: t.n + 1, v: t.v + math.Pow(math.Abs(x), p)}
	}
}

func maxAbs(t tally, x float64) tally {
	return tally{n: t.n + 1, v: max(t.v, math.Abs(x))}
}

func root(p float64) func(float64) float64 {
	return func(s float64) float64 { return math.Pow(s, 1/p) }
}

func diff[A, B Number](x A, y B) float64 { return float64(x) - float64(y) }

// ─────────────────────────────────────────────────────────────────────────────
// Norms of a vector
// ─────────────────────────────────────────────────────────────────────────────

// Norm returns the p-norm (Σ|x|^p)^(1/p) of c. p = +Inf gives [NormMax].
// The result is Nothing when c is empty or p is not positive.
//
//	distance.Norm(3, container.NewVector(-1, 0, 1, 2, 3)) // Just(∛37)
func Norm[T Number](p float64, c container.Source[T]) maybe.Maybe[float64] {
	if math.IsInf(p, 1) {
		return NormMax(c)
	}
	if !(p > 0) {
		return maybe.Nothing[float64]()
	}
	step := powSum(p)
	return hof.FoldLeft(func(t tally, x T) tally { return step(t, float64(x)) }, tally{}, c).result(root(p))
}

// NormL1 returns Σ|x|.
func NormL1[T Number](c container.Source[T]) maybe.Maybe[float64] { return Norm(1, c) }

// NormL2 returns the Euclidean length √(Σx²).
func NormL2[T Number](c container.Source[T]) maybe.Maybe[float64] { return Norm(2, c) }

// NormMax returns max|x|, or Nothing when c is empty.
func NormMax[T Number](c container.Source[T]) maybe.Maybe[float64] {
	return hof.FoldLeft(func(t tally, x T) tally { return maxAbs(t, float64(x)) }, tally{}, c).result(identity)
}

// ─────────────────────────────────────────────────────────────────────────────
// Norms of a difference
// ─────────────────────────────────────────────────────────────────────────────

// NormBetween returns the p-norm of the elementwise difference a-b. The
// result is Nothing when the lengths differ, the inputs are empty or p is
// not positive.
func NormBetween[A, B Number](p float64, a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	if math.IsInf(p, 1) {
		return NormMaxBetween(a, b)
	}
	if !(p > 0) || !IsSameLength(a, b) {
		return maybe.Nothing[float64]()
	}
	return hof.DotProduct(powSum(p), diff[A, B], tally{}, a, b).result(root(p))
}

// NormL1Between returns Σ|a-b|.
func NormL1Between[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	return NormBetween(1, a, b)
}

// NormL2Between returns √(Σ(a-b)²).
func NormL2Between[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	return NormBetween(2, a, b)
}

// NormMaxBetween returns max|a-b|.
func NormMaxBetween[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	if !IsSameLength(a, b) {
		return maybe.Nothing[float64]()
	}
	return hof.DotProduct(maxAbs, diff[A, B], tally{}, a, b).result(identity)
}
