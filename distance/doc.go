// Package distance computes norms, distances, similarities and divergences
// over any numeric container from package container.
//
// # Overview
//
// Every function is written as a fold or an elementwise fold from package
// hof, so the inputs may be of different categories and element types:
//
//	a := container.NewArray(5, -1, 0, 1, 2, 3)
//	b := container.NewList(1, 1.5, 2, 2.5, 3)
//	d := distance.Euclidean(a, b) // Just(√7.5)
//
// # Failure
//
// Results are [maybe.Maybe] values. Inputs of different lengths, empty
// inputs and degenerate cases (a zero vector for [CosineSimilarity], a
// non-distribution for [KLDivergence]) yield Nothing instead of NaN or a
// panic.
//
// # Configuration
//
// The divergences accept functional options; [WithTolerance] sets how far a
// distribution's sum may stray from 1:
//
//	distance.KLDivergence(p, q, distance.WithTolerance(1e-3))
package distance
