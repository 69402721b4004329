package distance

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
	"github.com/hasbyte1/go-sigutil/maybe"
)

// Minkowski returns the Minkowski distance of order p, (Σ|a-b|^p)^(1/p).
func Minkowski[A, B Number](p float64, a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	return NormBetween(p, a, b)
}

// Manhattan returns the Minkowski distance of order 1.
func Manhattan[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	return NormL1Between(a, b)
}

// Euclidean returns the Minkowski distance of order 2.
func Euclidean[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	return NormL2Between(a, b)
}

// Canberra returns Σ |a-b| / (|a|+|b|). A term whose operands are both 0
// contributes 0.
//
//	distance.Canberra(
//	    container.NewArray(5, -1, 0, 1, 2, 3),
//	    container.NewList(1, 1.5, 2, 2.5, 3)) // Just(22/9)
func Canberra[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	if !IsSameLength(a, b) {
		return maybe.Nothing[float64]()
	}
	term := func(x A, y B) float64 {
		fx, fy := float64(x), float64(y)
		den := math.Abs(fx) + math.Abs(fy)
		if den == 0 {
			return 0
		}
		return math.Abs(fx-fy) / den
	}
	sum := func(t tally, x float64) tally { return tally{n: t.n + 1, v: t.v + x} }
	return hof.DotProduct(sum, term, tally{}, a, b).result(identity)
}

// CosineSimilarity returns a·b / (‖a‖‖b‖). The result is Nothing when the
// lengths differ or either vector has zero length.
func CosineSimilarity[A, B Number](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	if !IsSameLength(a, b) {
		return maybe.Nothing[float64]()
	}
	type acc struct{ dot, aa, bb float64 }
	r := hof.DotProduct(
		func(s acc, p [2]float64) acc {
			return acc{dot: s.dot + p[0]*p[1], aa: s.aa + p[0]*p[0], bb: s.bb + p[1]*p[1]}
		},
		func(x A, y B) [2]float64 { return [2]float64{float64(x), float64(y)} },
		acc{}, a, b,
	)
	if r.aa == 0 || r.bb == 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(r.dot / (math.Sqrt(r.aa) * math.Sqrt(r.bb)))
}

// Bit is the element constraint of [Binary]: integers and booleans. An
// element is set when it equals 1 (or true).
type Bit interface {
	constraints.Integer | ~bool
}

// Binary returns the share of positions set in exactly one input among the
// positions set in either. The result is Nothing when the lengths differ or
// no position is set.
//
//	distance.Binary(container.NewVector(1, 1, 0, 0),
//	    container.NewList(true, false, true, true)) // Just(0.75)
func Binary[A, B Bit](a container.Source[A], b container.Source[B]) maybe.Maybe[float64] {
	if !IsSameLength(a, b) {
		return maybe.Nothing[float64]()
	}
	type acc struct{ either, both int }
	r := hof.DotProduct(
		func(s acc, p [2]bool) acc {
			switch {
			case p[0] && p[1]:
				s.both++
			case p[0] || p[1]:
				s.either++
			}
			return s
		},
		func(x A, y B) [2]bool { return [2]bool{isSet(x), isSet(y)} },
		acc{}, a, b,
	)
	if r.either+r.both == 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(float64(r.either) / float64(r.either+r.both))
}

func isSet[T Bit](x T) bool {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 1
	default:
		return v.Uint() == 1
	}
}
