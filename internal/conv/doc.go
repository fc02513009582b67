// Package conv provides checked narrowing conversions for 128-bit integers.
//
// The 128-bit kinds are stored as two 64-bit halves. These functions narrow
// such a pair into a native 64-bit integer, reporting an overflow error when
// the value does not fit instead of silently truncating the high half.
//
// Use cases:
//   - Handing a wide.Int128 or wide.Uint128 to APIs that take int64/uint64
//   - Comparing 128-bit values against native test expectations
package conv
