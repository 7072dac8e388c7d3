// Package testutil provides testing utilities for growvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator that fabricates Records and Handles
// with varied field values, so tests exercise more than the benchmark's
// fixed constructor defaults.
//
//	rng := testutil.NewRNG(seed)
//	rec := rng.Record(42)     // random floats and label, ID 42
//	recs := rng.Records(100)  // sequentially identified
package testutil
