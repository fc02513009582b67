package nonzero

import (
	"strconv"

	"github.com/hupe1980/nonzero/wide"
)

// Integer is the closed set of integer kinds NonZero can wrap.
//
// The union is exact: named types with one of these as underlying type do
// not satisfy it.
type Integer interface {
	Signed | Unsigned
}

// Signed is the signed half of Integer.
type Signed interface {
	int8 | int16 | int32 | int64 | wide.Int128 | int
}

// Unsigned is the unsigned half of Integer.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | wide.Uint128 | uint
}

// native is every kind that supports == 0 directly.
type native interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint
}

// Kind identifies one of the twelve integer kinds.
type Kind uint8

const (
	// KindInvalid is the zero Kind. The registry never reports it.
	KindInvalid Kind = iota
	// KindInt8 is int8.
	KindInt8
	// KindInt16 is int16.
	KindInt16
	// KindInt32 is int32.
	KindInt32
	// KindInt64 is int64.
	KindInt64
	// KindInt128 is wide.Int128.
	KindInt128
	// KindInt is the pointer-sized int.
	KindInt
	// KindUint8 is uint8.
	KindUint8
	// KindUint16 is uint16.
	KindUint16
	// KindUint32 is uint32.
	KindUint32
	// KindUint64 is uint64.
	KindUint64
	// KindUint128 is wide.Uint128.
	KindUint128
	// KindUint is the pointer-sized uint.
	KindUint

	kindCount
)

type kindInfo struct {
	name   string
	bits   int
	signed bool
}

var kinds = [kindCount]kindInfo{
	KindInvalid: {name: "invalid"},
	KindInt8:    {name: "int8", bits: 8, signed: true},
	KindInt16:   {name: "int16", bits: 16, signed: true},
	KindInt32:   {name: "int32", bits: 32, signed: true},
	KindInt64:   {name: "int64", bits: 64, signed: true},
	KindInt128:  {name: "int128", bits: 128, signed: true},
	KindInt:     {name: "int", bits: strconv.IntSize, signed: true},
	KindUint8:   {name: "uint8", bits: 8},
	KindUint16:  {name: "uint16", bits: 16},
	KindUint32:  {name: "uint32", bits: 32},
	KindUint64:  {name: "uint64", bits: 64},
	KindUint128: {name: "uint128", bits: 128},
	KindUint:    {name: "uint", bits: strconv.IntSize},
}

// Kinds returns the twelve valid kinds, signed first.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInt8; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the twelve kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// String returns the Go spelling of the kind ("int128" for wide.Int128).
func (k Kind) String() string {
	if k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// Bits returns the width of the kind in bits.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}
	return kinds[k].bits
}

// Signed reports whether the kind is signed.
func (k Kind) Signed() bool {
	return k.Valid() && kinds[k].signed
}
