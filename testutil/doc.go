// Package testutil provides testing utilities for pkmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and generators for
// clustered point sets, plus brute-force reference computations.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 8)              // uniform [0, 1)
//	vecs, truth := rng.ClusteredVectors(1000, 8, 4, 0.05) // gaussian blobs
//
// # Reference Computations
//
//	c := testutil.Mean(vecs)
//	id := testutil.ExactNearest(vec, centroids)
package testutil
