package stats

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
	"github.com/hasbyte1/go-sigutil/maybe"
)

// scaling is an affine map x ↦ (x - shift) / scale.
type scaling struct {
	shift, scale float64
}

func (s scaling) apply(x float64) float64 { return (x - s.shift) / s.scale }

type bounds struct {
	n        int
	min, max float64
}

func minMax[T Number](c container.Source[T]) bounds {
	return hof.FoldLeft(func(b bounds, x T) bounds {
		f := float64(x)
		if b.n == 0 {
			return bounds{n: 1, min: f, max: f}
		}
		return bounds{n: b.n + 1, min: math.Min(b.min, f), max: math.Max(b.max, f)}
	}, bounds{}, c)
}

// Each fit function derives the scaling for one kind of normalization. It
// reports false when the input is empty or degenerate.

func fitRange[T Number](c container.Source[T]) (scaling, bool) {
	b := minMax(c)
	if b.n == 0 || b.max == b.min {
		return scaling{}, false
	}
	return scaling{shift: b.min, scale: b.max - b.min}, true
}

func fitDist[T Number](c container.Source[T]) (scaling, bool) {
	s := SumAs[float64](c)
	if s == 0 {
		return scaling{}, false
	}
	return scaling{scale: s}, true
}

func fitStandard[T Number](c container.Source[T]) (scaling, bool) {
	m := describe(c)
	if m.n == 0 || m.m2 == 0 {
		return scaling{}, false
	}
	return scaling{shift: m.mean, scale: math.Sqrt(m.m2 / float64(m.n))}, true
}

func rescale[T Number](fit func(container.Source[T]) (scaling, bool), c container.Source[T]) maybe.Maybe[container.Container[float64]] {
	// a consumed input can only be read once; keep its elements in a fresh
	// container of the same type for the second pass
	if v := access.Of(c); v.Mode() == access.Move {
		kept := v.Container().Make(v.Len())
		for x := range v.Values() {
			kept.Add(x)
		}
		c = kept
	}
	s, ok := fit(c)
	if !ok {
		return maybe.Nothing[container.Container[float64]]()
	}
	return maybe.Just(hof.Map(func(x T) float64 { return s.apply(float64(x)) }, c))
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying forms
// ─────────────────────────────────────────────────────────────────────────────

// Normalize rescales c to the range [0, 1] (min ↦ 0, max ↦ 1) into a new
// float64 container of the same category. The result is Nothing when c is
// empty or all its elements are equal.
func Normalize[T Number](c container.Source[T]) maybe.Maybe[container.Container[float64]] {
	return rescale(fitRange[T], c)
}

// NormalizeDist divides every element by the sum of c so that the result
// sums to 1. The result is Nothing when the sum is 0.
func NormalizeDist[T Number](c container.Source[T]) maybe.Maybe[container.Container[float64]] {
	return rescale(fitDist[T], c)
}

// Standardize maps c to z-scores (x - mean) / stddev. The result is Nothing
// when c is empty or has zero variance.
func Standardize[T Number](c container.Source[T]) maybe.Maybe[container.Container[float64]] {
	return rescale(fitStandard[T], c)
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place forms
// ─────────────────────────────────────────────────────────────────────────────

func rescaleInPlace[T constraints.Float](fit func(container.Source[T]) (scaling, bool), c container.Mutable[T]) bool {
	s, ok := fit(c)
	if !ok {
		return false
	}
	hof.MapInPlace(func(x T) T { return T(s.apply(float64(x))) }, c)
	return true
}

// NormalizeInPlace is [Normalize] writing into c. It reports false, leaving
// c untouched, when the input is empty or constant.
func NormalizeInPlace[T constraints.Float](c container.Mutable[T]) bool {
	return rescaleInPlace(fitRange[T], c)
}

// NormalizeDistInPlace is [NormalizeDist] writing into c.
func NormalizeDistInPlace[T constraints.Float](c container.Mutable[T]) bool {
	return rescaleInPlace(fitDist[T], c)
}

// StandardizeInPlace is [Standardize] writing into c.
func StandardizeInPlace[T constraints.Float](c container.Mutable[T]) bool {
	return rescaleInPlace(fitStandard[T], c)
}
