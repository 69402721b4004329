// Package hof implements map, zip, fold, filter, sort, take, drop and merge
// once, for every collection category in package container.
//
// # Overview
//
// Every operation accepts [container.Source] arguments, classifies them with
// [container.Describe] and reads them through an [access.View]. Results are
// always fresh containers; inputs are never aliased:
//
//	v := container.NewVector(1, 2, 3, 4)
//	evens := hof.Filter(func(n int) bool { return n%2 == 0 }, v) // *Vector: [2 4]
//	sum := hof.FoldLeft(func(acc, n int) int { return acc + n }, 0, v)
//
// The output of a shape-preserving operation has the category of its (first)
// input, rebound to the new element type where needed. A Map over an
// OrderedSet is an OrderedSet; results that compare equal collapse. Order
// producing operations ([Sort], [SortWithIndex], [Reverse]) return a
// [container.Vector] when the input is a set or map, whose order is
// intrinsic.
//
// # Arity
//
// Elementwise operations come in fixed arities 2 to 4 with independent
// element types ([ZipWith], [ZipWith3], [ZipWith4], [Zip], [Zip3], [Zip4])
// and an open arity over a single element type ([ZipWithN], [DotProductN]).
// All of them stop at the shortest input.
//
// # Ownership
//
// Inputs are borrowed unless wrapped with [access.Consume], in which case
// releasable containers hand over their storage. [Sort], [Filter], [Take],
// [Drop] and [Reverse] rearrange a consumed Vector, Array or Text in place
// and return it under a new header without copying the elements.
// [Apply], [MapInPlace] and the ForEach family mutate through
// [access.Mutate].
package hof
