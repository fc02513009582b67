// Package testutil provides testing utilities for nonzero.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG that draws random values of any integer kind, so
// properties can be checked on more than the boundary values.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	xs := testutil.NonZeroValues[int32](rng, 1000) // never 0
//	u := rng.Uint128()                            // full 128-bit range
package testutil
