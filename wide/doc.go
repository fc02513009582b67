// Package wide provides the 128-bit integer kinds, Int128 and Uint128.
//
// Go has no native 128-bit integers. Both types are small comparable value
// types made of two 64-bit halves, so they can be used as map keys, compared
// with ==, and wrapped by nonzero.NonZero like any native integer.
//
//	u := wide.U128(1, 0)          // 2^64
//	i := wide.Int128From64(-4)    // sign-extended
//	fmt.Println(u, i)             // 18446744073709551616 -4
//
// Only construction, comparison, narrowing and formatting are provided.
// Arithmetic is out of scope.
package wide
