package distance

import (
	"math"

	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
	"github.com/hasbyte1/go-sigutil/maybe"
)

func plus(a, b float64) float64 { return a + b }

// xlog2 returns x·log2(x/y), with the convention 0·log2(0/y) = 0.
func xlog2(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * (math.Log2(x) - math.Log2(y))
}

// KLDivergence returns the Kullback-Leibler divergence Σ p·log2(p/q) of
// distribution q from p, in bits. It is not symmetric.
//
// The result is Nothing when the lengths differ, either input is not a
// distribution (see [IsDistribution]) or q contains a zero.
//
//	p := container.NewArray(5, 0.2, 0.1, 0, 0.4, 0.3)
//	q := container.NewList(0.1, 0.3, 0.1, 0.4, 0.1)
//	distance.KLDivergence(p, q) // Just(0.51699...)
func KLDivergence[A, B Number](p container.Source[A], q container.Source[B], opts ...Option) maybe.Maybe[float64] {
	if !IsSameLength(p, q) {
		return maybe.Nothing[float64]()
	}
	ps, qs := snapshot(p), snapshot(q)
	if !IsDistribution(ps, opts...) || !IsDistribution(qs, opts...) || HasZero(qs) {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(hof.DotProduct(plus, func(x A, y B) float64 {
		return xlog2(float64(x), float64(y))
	}, 0, ps, qs))
}

// JSDivergence returns the Jensen-Shannon divergence of p and q, in bits:
// the mean KL divergence of each from their midpoint. It is symmetric and
// defined for distributions containing zeros.
//
// The result is Nothing when the lengths differ or either input is not a
// distribution.
func JSDivergence[A, B Number](p container.Source[A], q container.Source[B], opts ...Option) maybe.Maybe[float64] {
	if !IsSameLength(p, q) {
		return maybe.Nothing[float64]()
	}
	ps, qs := snapshot(p), snapshot(q)
	if !IsDistribution(ps, opts...) || !IsDistribution(qs, opts...) {
		return maybe.Nothing[float64]()
	}
	sum := hof.DotProduct(plus, func(x A, y B) float64 {
		fx, fy := float64(x), float64(y)
		m := (fx + fy) / 2
		return xlog2(fx, m) + xlog2(fy, m)
	}, 0, ps, qs)
	return maybe.Just(sum / 2)
}
