package a

import (
	"github.com/hupe1980/nonzero"
	"github.com/hupe1980/nonzero/wide"
)

type u128 = wide.Uint128

const (
	lanes = 0
	four  = 4
)

var (
	_ = nonzero.Must[uint32](lanes)            // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must(uint8(0))                 // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must[uint16](four - 4)         // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must[int64]((0))               // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must(wide.Int128{})            // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must(wide.U128(0, 0))          // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must(wide.Int128From64(lanes)) // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must(u128{})                   // want "nonzero.Must: passed in a `0` argument"
	_ = nonzero.Must(four)
	_ = nonzero.Must[int8](-128)
	_ = nonzero.Must(wide.U128(1, 0))
	_ = nonzero.Must(wide.I128(0, 1))
	_ = nonzero.Must(wide.MaxUint128)
)

func fromArgument(v uint8, w wide.Uint128) {
	_ = nonzero.Must(v)
	_ = nonzero.Must(w)
	_ = nonzero.Must(wide.Uint128From64(uint64(v)))
}

func unrelated() int {
	return must(0)
}

func must(v int) int { return v }
