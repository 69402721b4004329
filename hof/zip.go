package hof

import (
	"iter"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// ZipWith combines a and b element by element with f. The result has the
// category of a and the length of the shorter input.
//
//	hof.ZipWith(func(x, y int) int { return x + y },
//	    container.NewVector(1, 2, 3), container.NewVector(10, 20))
//	// → [11 22]
func ZipWith[A, B, C any](f func(A, B) C, a container.Source[A], b container.Source[B]) container.Container[C] {
	va, vb := access.Of(a), access.Of(b)
	out := container.Rebind[A, C](va.Container(), min(va.Len(), vb.Len()))
	nextB, stop := iter.Pull(vb.Values())
	defer stop()
	for x := range va.Values() {
		y, ok := nextB()
		if !ok {
			break
		}
		out.Add(f(x, y))
	}
	return out
}

// ZipWith3 is [ZipWith] over three inputs.
func ZipWith3[A, B, C, D any](
	f func(A, B, C) D,
	a container.Source[A], b container.Source[B], c container.Source[C],
) container.Container[D] {
	va, vb, vc := access.Of(a), access.Of(b), access.Of(c)
	out := container.Rebind[A, D](va.Container(), min(va.Len(), vb.Len(), vc.Len()))
	nextB, stopB := iter.Pull(vb.Values())
	defer stopB()
	nextC, stopC := iter.Pull(vc.Values())
	defer stopC()
	for x := range va.Values() {
		y, okB := nextB()
		z, okC := nextC()
		if !okB || !okC {
			break
		}
		out.Add(f(x, y, z))
	}
	return out
}

// ZipWith4 is [ZipWith] over four inputs.
func ZipWith4[A, B, C, D, E any](
	f func(A, B, C, D) E,
	a container.Source[A], b container.Source[B], c container.Source[C], d container.Source[D],
) container.Container[E] {
	va, vb, vc, vd := access.Of(a), access.Of(b), access.Of(c), access.Of(d)
	out := container.Rebind[A, E](va.Container(), min(va.Len(), vb.Len(), vc.Len(), vd.Len()))
	nextB, stopB := iter.Pull(vb.Values())
	defer stopB()
	nextC, stopC := iter.Pull(vc.Values())
	defer stopC()
	nextD, stopD := iter.Pull(vd.Values())
	defer stopD()
	for x := range va.Values() {
		y, okB := nextB()
		z, okC := nextC()
		w, okD := nextD()
		if !okB || !okC || !okD {
			break
		}
		out.Add(f(x, y, z, w))
	}
	return out
}

// ZipWithN combines any number of same-typed inputs. f receives one element
// from each input, in argument order; the slice is reused between calls.
// With no inputs the result is an empty [container.Vector].
func ZipWithN[T, U any](f func([]T) U, cs ...container.Source[T]) container.Container[U] {
	if len(cs) == 0 {
		return container.NewVector[U]()
	}
	views := make([]*access.View[T], len(cs))
	lens := make([]int, len(cs))
	for i, c := range cs {
		views[i] = access.Of(c)
		lens[i] = views[i].Len()
	}
	out := container.Rebind[T, U](views[0].Container(), lo.Min(lens))
	for row := range rows(views) {
		out.Add(f(row))
	}
	return out
}

// rows yields one element from every view per step, stopping at the first
// exhausted view.
func rows[T any](views []*access.View[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		nexts := make([]func() (T, bool), len(views))
		for i, v := range views {
			next, stop := iter.Pull(v.Values())
			defer stop()
			nexts[i] = next
		}
		row := make([]T, len(views))
		for {
			for i, next := range nexts {
				x, ok := next()
				if !ok {
					return
				}
				row[i] = x
			}
			if !yield(row) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Tuples
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs a and b element by element. The result has the category of a.
//
//	pairs := hof.Zip(container.NewVector("a", "b", "c"), container.NewVector(1, 2))
//	// → [(a, 1) (b, 2)]
func Zip[A, B any](a container.Source[A], b container.Source[B]) container.Container[Pair[A, B]] {
	return ZipWith(MakePair[A, B], a, b)
}

// Zip3 groups three inputs into Triples.
func Zip3[A, B, C any](a container.Source[A], b container.Source[B], c container.Source[C]) container.Container[Triple[A, B, C]] {
	return ZipWith3(MakeTriple[A, B, C], a, b, c)
}

// Zip4 groups four inputs into Quads.
func Zip4[A, B, C, D any](
	a container.Source[A], b container.Source[B], c container.Source[C], d container.Source[D],
) container.Container[Quad[A, B, C, D]] {
	return ZipWith4(MakeQuad[A, B, C, D], a, b, c, d)
}

// Unzip splits a container of Pairs into two Vectors.
func Unzip[A, B any](c container.Source[Pair[A, B]]) (*container.Vector[A], *container.Vector[B]) {
	as, bs := container.NewVector[A](), container.NewVector[B]()
	for p := range access.Of(c).Values() {
		as.Add(p.First)
		bs.Add(p.Second)
	}
	return as, bs
}

// Unzip3 splits a container of Triples into three Vectors.
func Unzip3[A, B, C any](c container.Source[Triple[A, B, C]]) (*container.Vector[A], *container.Vector[B], *container.Vector[C]) {
	as, bs, cs := container.NewVector[A](), container.NewVector[B](), container.NewVector[C]()
	for t := range access.Of(c).Values() {
		as.Add(t.First)
		bs.Add(t.Second)
		cs.Add(t.Third)
	}
	return as, bs, cs
}

// Unzip4 splits a container of Quads into four Vectors.
func Unzip4[A, B, C, D any](c container.Source[Quad[A, B, C, D]]) (
	*container.Vector[A], *container.Vector[B], *container.Vector[C], *container.Vector[D],
) {
	as, bs, cs, ds := container.NewVector[A](), container.NewVector[B](), container.NewVector[C](), container.NewVector[D]()
	for q := range access.Of(c).Values() {
		as.Add(q.First)
		bs.Add(q.Second)
		cs.Add(q.Third)
		ds.Add(q.Fourth)
	}
	return as, bs, cs, ds
}
