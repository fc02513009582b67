package b

import "github.com/hupe1980/nonzero"

func MustStride(v uint32) uint32 {
	if v == 0 {
		panic("zero stride")
	}
	return v
}

var (
	_ = MustStride(0) // want "b.MustStride: passed in a `0` argument"
	_ = MustStride(8)
	_ = nonzero.Must(int(0)) // want "nonzero.Must: passed in a `0` argument"
)
