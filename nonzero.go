package nonzero

import (
	"github.com/hupe1980/nonzero/typeeq"
	"github.com/hupe1980/nonzero/wide"
)

// NonZero is a T that is never zero.
//
// Values are built with Must. The zero NonZero is uninitialized: reading it
// with Get panics with ErrUninitialized.
type NonZero[T Integer] struct {
	v T
}

// Refinement types for each kind.
type (
	Int8    = NonZero[int8]
	Int16   = NonZero[int16]
	Int32   = NonZero[int32]
	Int64   = NonZero[int64]
	Int128  = NonZero[wide.Int128]
	Int     = NonZero[int]
	Uint8   = NonZero[uint8]
	Uint16  = NonZero[uint16]
	Uint32  = NonZero[uint32]
	Uint64  = NonZero[uint64]
	Uint128 = NonZero[wide.Uint128]
	Uint    = NonZero[uint]
)

// Must returns v as a NonZero[T].
//
// It panics with a *ZeroError if v is zero. Signed minimum values are
// ordinary non-zero values and are accepted. Use it with a constant
// argument; the nzcheck analyzer then rejects a zero at build time.
func Must[T Integer](v T) NonZero[T] {
	n, err := construct(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T {
	if !n.initialized() {
		panic(ErrUninitialized)
	}
	return n.v
}

func (n NonZero[T]) initialized() bool {
	var zero T
	return n.v != zero
}

// Kind returns the kind of T.
func (n NonZero[T]) Kind() Kind {
	return KindOf[T]()
}

// construct dispatches on the registry tag of T and runs the zero check of
// the concrete kind it names.
func construct[T Integer](v T) (NonZero[T], error) {
	switch t := tagOf[T]().(type) {
	case arm[T, int8]:
		return through(t, v, newNative[int8])
	case arm[T, int16]:
		return through(t, v, newNative[int16])
	case arm[T, int32]:
		return through(t, v, newNative[int32])
	case arm[T, int64]:
		return through(t, v, newNative[int64])
	case arm[T, wide.Int128]:
		return through(t, v, newInt128)
	case arm[T, int]:
		return through(t, v, newNative[int])
	case arm[T, uint8]:
		return through(t, v, newNative[uint8])
	case arm[T, uint16]:
		return through(t, v, newNative[uint16])
	case arm[T, uint32]:
		return through(t, v, newNative[uint32])
	case arm[T, uint64]:
		return through(t, v, newNative[uint64])
	case arm[T, wide.Uint128]:
		return through(t, v, newUint128)
	case arm[T, uint]:
		return through(t, v, newNative[uint])
	}
	panic("nonzero: unreachable kind")
}

// through moves v into C, builds the concrete NonZero and moves it back.
func through[T, C Integer](a arm[T, C], v T, build func(C) (NonZero[C], bool)) (NonZero[T], error) {
	nz, ok := build(a.eq.ToRight(v))
	if !ok {
		return NonZero[T]{}, &ZeroError{Kind: a.kind()}
	}
	return typeeq.Lift[NonZero[T], NonZero[C]](a.eq).ToLeft(nz), nil
}

func newNative[C native](v C) (NonZero[C], bool) {
	if v == 0 {
		return NonZero[C]{}, false
	}
	return NonZero[C]{v: v}, true
}

func newInt128(v wide.Int128) (NonZero[wide.Int128], bool) {
	if v.IsZero() {
		return NonZero[wide.Int128]{}, false
	}
	return NonZero[wide.Int128]{v: v}, true
}

func newUint128(v wide.Uint128) (NonZero[wide.Uint128], bool) {
	if v.IsZero() {
		return NonZero[wide.Uint128]{}, false
	}
	return NonZero[wide.Uint128]{v: v}, true
}
