// Package stats provides descriptive statistics and rescaling over numeric
// containers.
//
// Aggregates are folds; mean and variance come from a single Welford pass.
// The rescaling functions return a new float64 container of the input's
// category, or rescale a mutable container in place:
//
//	v := container.NewVector(2.0, 4.0, 6.0)
//	n := stats.Normalize(v)      // Just([0 0.5 1])
//	stats.StandardizeInPlace(v)  // v is now [-1.2247… 0 1.2247…]
package stats
