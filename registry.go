package nonzero

import (
	"github.com/hupe1980/nonzero/typeeq"
	"github.com/hupe1980/nonzero/wide"
)

// tag recovers the concrete kind behind a type parameter T.
//
// Its only implementations are the twelve arm[T, C] instantiations, and for
// a given T exactly one of them is ever built: the one whose C is T.
type tag[T Integer] interface {
	kind() Kind
}

// arm is the tag variant for the concrete kind C. eq proves T == C.
//
// arm must stay pointer-shaped (a single pointer field) so converting it to
// tag[T] does not allocate.
type arm[T, C Integer] struct {
	eq typeeq.TypeEq[T, C]
}

func (a arm[T, C]) kind() Kind { return kindOfType[C]() }

// tagOf looks up T in the registry.
func tagOf[T Integer]() tag[T] {
	var zero T
	switch any(zero).(type) {
	case int8:
		return armOf[T, int8]()
	case int16:
		return armOf[T, int16]()
	case int32:
		return armOf[T, int32]()
	case int64:
		return armOf[T, int64]()
	case wide.Int128:
		return armOf[T, wide.Int128]()
	case int:
		return armOf[T, int]()
	case uint8:
		return armOf[T, uint8]()
	case uint16:
		return armOf[T, uint16]()
	case uint32:
		return armOf[T, uint32]()
	case uint64:
		return armOf[T, uint64]()
	case wide.Uint128:
		return armOf[T, wide.Uint128]()
	case uint:
		return armOf[T, uint]()
	}
	// Integer is an exact union of the cases above.
	panic("nonzero: unreachable kind")
}

func armOf[T, C Integer]() arm[T, C] {
	eq, ok := typeeq.Prove[T, C]()
	if !ok {
		panic("nonzero: registry row " + kindOfType[C]().String() + " does not match its type")
	}
	return arm[T, C]{eq: eq}
}

// kindOfType is the registry row of the concrete kind C.
func kindOfType[C Integer]() Kind {
	var zero C
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case wide.Int128:
		return KindInt128
	case int:
		return KindInt
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case wide.Uint128:
		return KindUint128
	case uint:
		return KindUint
	}
	return KindInvalid
}

// KindOf returns the registry kind of T.
func KindOf[T Integer]() Kind {
	return tagOf[T]().kind()
}
