package wide

import (
	"math"
	"math/big"
	"strconv"

	"github.com/hupe1980/nonzero/internal/conv"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	hi uint64
	lo uint64
}

// MaxUint128 is the largest Uint128.
var MaxUint128 = Uint128{hi: math.MaxUint64, lo: math.MaxUint64}

// U128 returns the Uint128 hi*2^64 + lo.
func U128(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// Hi returns the upper 64 bits.
func (u Uint128) Hi() uint64 { return u.hi }

// Lo returns the lower 64 bits.
func (u Uint128) Lo() uint64 { return u.lo }

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.hi == 0 && u.lo == 0
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

// Uint64 narrows u, failing if it does not fit in a uint64.
func (u Uint128) Uint64() (uint64, error) {
	return conv.Uint128ToUint64(u.hi, u.lo)
}

// Big returns u as a newly allocated big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(u.lo))
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
