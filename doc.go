// Package nonzero provides integers that are statically known not to be zero.
//
// NonZero[T] wraps one of the twelve integer kinds: int8, int16, int32,
// int64, wide.Int128 and int, plus their unsigned counterparts. The only way
// to build one is Must, which rejects zero:
//
//	two := nonzero.Must(uint16(2))     // nonzero.Uint16
//	three := nonzero.Must[uint64](3)   // kind given explicitly
//	fmt.Println(two.Get(), three)      // 2 3
//
// # Rejecting zero early
//
// Must panics with a *ZeroError when handed zero. The habits below move that
// failure as close to compile time as Go allows.
//
// Run the nzcheck analyzer (cmd/nzcheck, or go vet -vettool). It folds the
// argument of every Must call and fails the build on a constant zero.
//
// Declare constructed values at package level. A zero there panics during
// package initialization, before main runs:
//
//	var stride = nonzero.Must[uint32](4)
//
// Guard named constants at compile time. Division by a constant zero does
// not compile:
//
//	const Lanes = 8
//	const _ = 1 / Lanes
//
// # Kinds
//
// The set of kinds is closed. Each kind has a Kind value and a refinement
// type alias (Int8, Uint128, ...). Named integer types such as
// `type Port uint16` are not kinds; convert to the underlying type first.
//
// # Encoding
//
// NonZero values marshal to text, JSON and YAML as plain integers. There
// are deliberately no decoders: a NonZero is built from a constant, never
// parsed from input.
package nonzero
