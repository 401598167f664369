// Package testutil provides testing utilities for kmeansgo.
//
// This package is intended for use in tests, benchmarks and demos only.
// It provides a seeded generator for synthetic datasets within given
// per-dimension ranges.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.RangedPoints(ranges, 1000)               // uniform within ranges
//	pts := rng.ClusteredPoints(ranges, 1000, 4, 0.05)   // 4 clumps, tight spread
package testutil
