package wide

import (
	"math"
	"math/big"
	"strconv"

	"github.com/hupe1980/nonzero/internal/conv"
)

// Int128 is a signed 128-bit integer in two's complement form.
type Int128 struct {
	hi int64
	lo uint64
}

var (
	// MaxInt128 is the largest Int128.
	MaxInt128 = Int128{hi: math.MaxInt64, lo: math.MaxUint64}
	// MinInt128 is the smallest Int128.
	MinInt128 = Int128{hi: math.MinInt64}
)

// I128 returns the Int128 hi*2^64 + lo.
func I128(hi int64, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// Hi returns the upper 64 bits, including the sign.
func (i Int128) Hi() int64 { return i.hi }

// Lo returns the lower 64 bits.
func (i Int128) Lo() uint64 { return i.lo }

// IsZero reports whether i == 0.
func (i Int128) IsZero() bool {
	return i.hi == 0 && i.lo == 0
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i Int128) Sign() int {
	switch {
	case i.hi < 0:
		return -1
	case i.IsZero():
		return 0
	}
	return 1
}

// Cmp compares i and j and returns -1, 0 or +1.
func (i Int128) Cmp(j Int128) int {
	switch {
	case i.hi < j.hi:
		return -1
	case i.hi > j.hi:
		return 1
	case i.lo < j.lo:
		return -1
	case i.lo > j.lo:
		return 1
	}
	return 0
}

// Int64 narrows i, failing if it does not fit in an int64.
func (i Int128) Int64() (int64, error) {
	return conv.Int128ToInt64(i.hi, i.lo)
}

// Big returns i as a newly allocated big.Int.
func (i Int128) Big() *big.Int {
	b := new(big.Int).SetInt64(i.hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.lo))
}

// String returns the decimal representation of i.
func (i Int128) String() string {
	if v, err := i.Int64(); err == nil {
		return strconv.FormatInt(v, 10)
	}
	return i.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
