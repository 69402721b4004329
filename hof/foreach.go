package hof

import (
	"iter"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// ForEach2 walks dst and src in lock step and calls f with a pointer to the
// dst element and the matching src element, stopping at the shorter input.
//
//	data := container.NewList(1.1, -3.3, 5.5)
//	hof.ForEach2(func(d *float64, s int) { *d -= float64(s) }, data, container.NewArray(4, 1, 2, 3, 4))
//	// data → [0.1 -5.3 2.5]
func ForEach2[T, U any](f func(*T, U), dst container.Mutable[T], src container.Source[U]) {
	ForEachIndexed2(func(_ int, d *T, s U) { f(d, s) }, 0, dst, src)
}

// ForEach3 is [ForEach2] over two read-only inputs.
func ForEach3[T, U, V any](f func(*T, U, V), dst container.Mutable[T], b container.Source[U], c container.Source[V]) {
	ForEachIndexed3(func(_ int, d *T, x U, y V) { f(d, x, y) }, 0, dst, b, c)
}

// ForEachIndexed2 is [ForEach2] with a counter passed to f. The counter
// starts at start and grows by one per step.
func ForEachIndexed2[T, U any](f func(int, *T, U), start int, dst container.Mutable[T], src container.Source[U]) {
	nextU, stop := iter.Pull(access.Of(src).Values())
	defer stop()
	i := start
	for p := range access.Mutate(dst).Pointers() {
		u, ok := nextU()
		if !ok {
			return
		}
		f(i, p, u)
		i++
	}
}

// ForEachIndexed3 is [ForEachIndexed2] over two read-only inputs.
func ForEachIndexed3[T, U, V any](
	f func(int, *T, U, V), start int,
	dst container.Mutable[T], b container.Source[U], c container.Source[V],
) {
	nextU, stopU := iter.Pull(access.Of(b).Values())
	defer stopU()
	nextV, stopV := iter.Pull(access.Of(c).Values())
	defer stopV()
	i := start
	for p := range access.Mutate(dst).Pointers() {
		u, okU := nextU()
		v, okV := nextV()
		if !okU || !okV {
			return
		}
		f(i, p, u, v)
		i++
	}
}

// CompoundAssign updates every element of dst with op and the matching
// element of src, stopping at the shorter input.
//
//	hof.CompoundAssign(hof.AddAssign[int], acc, container.NewVector(1, 2, 3))
func CompoundAssign[T, U any](op func(*T, U), dst container.Mutable[T], src container.Source[U]) {
	ForEach2(op, dst, src)
}

// CompoundAssignScalar updates every element of dst with op and s.
//
//	words := container.NewVector("ein", "zwei", "drei")
//	hof.CompoundAssignScalar(hof.AddAssign[string], words, "-hander")
//	// words → [ein-hander zwei-hander drei-hander]
func CompoundAssignScalar[T, S any](op func(*T, S), dst container.Mutable[T], s S) {
	Apply(func(p *T) { op(p, s) }, dst)
}

// Addable is the element constraint of [AddAssign].
type Addable interface {
	Number | ~string
}

// AddAssign performs *p += v.
func AddAssign[T Addable](p *T, v T) { *p += v }

// SubAssign performs *p -= v.
func SubAssign[T Number](p *T, v T) { *p -= v }

// MulAssign performs *p *= v.
func MulAssign[T Number](p *T, v T) { *p *= v }

// DivAssign performs *p /= v.
func DivAssign[T Number](p *T, v T) { *p /= v }
