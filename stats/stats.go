package stats

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
	"github.com/hasbyte1/go-sigutil/maybe"
)

// Number is the element constraint of the aggregate functions.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of c in its own element type; the empty sum is 0.
// Use [SumAs] when the element type may overflow.
func Sum[T Number](c container.Source[T]) T {
	return hof.FoldLeft(func(acc, x T) T { return acc + x }, 0, c)
}

// SumAs returns the sum of c accumulated in R.
//
//	stats.SumAs[int64](container.NewVector[int8](100, 100)) // 200
func SumAs[R, T Number](c container.Source[T]) R {
	return hof.FoldLeft(func(acc R, x T) R { return acc + R(x) }, 0, c)
}

// Product returns the product of c; the empty product is 1.
func Product[T Number](c container.Source[T]) T {
	return hof.FoldLeft(func(acc, x T) T { return acc * x }, 1, c)
}

type moments struct {
	n        int
	mean, m2 float64
}

// welford folds x into running moments.
func welford[T Number](m moments, x T) moments {
	f := float64(x)
	m.n++
	d := f - m.mean
	m.mean += d / float64(m.n)
	m.m2 += d * (f - m.mean)
	return m
}

func describe[T Number](c container.Source[T]) moments {
	return hof.FoldLeft(welford[T], moments{}, c)
}

// Average returns the arithmetic mean of c, or Nothing when c is empty.
func Average[T Number](c container.Source[T]) maybe.Maybe[float64] {
	m := describe(c)
	return maybe.FromPair(m.mean, m.n > 0)
}

// Variance returns the population variance of c, or Nothing when c is empty.
func Variance[T Number](c container.Source[T]) maybe.Maybe[float64] {
	m := describe(c)
	if m.n == 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(m.m2 / float64(m.n))
}

// StdDev returns the population standard deviation of c, or Nothing when c
// is empty.
func StdDev[T Number](c container.Source[T]) maybe.Maybe[float64] {
	return maybe.Fmap(Variance(c), math.Sqrt)
}
