package wide

type Uint128 struct{ hi, lo uint64 }

type Int128 struct {
	hi int64
	lo uint64
}

var MaxUint128 = Uint128{hi: ^uint64(0), lo: ^uint64(0)}

func U128(hi, lo uint64) Uint128 { return Uint128{hi: hi, lo: lo} }

func I128(hi int64, lo uint64) Int128 { return Int128{hi: hi, lo: lo} }

func Uint128From64(v uint64) Uint128 { return Uint128{lo: v} }

func Int128From64(v int64) Int128 { return Int128{hi: v >> 63, lo: uint64(v)} }
