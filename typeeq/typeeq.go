package typeeq

import (
	"errors"
	"unsafe"
)

var (
	// ErrUnproven is the panic value when the zero TypeEq is used.
	ErrUnproven = errors.New("typeeq: use of unproven type equality")

	// ErrNotLifted is the panic value when Lift is asked to relate two
	// types that are not identical.
	ErrNotLifted = errors.New("typeeq: lifted types are not identical")
)

// TypeEq is a proof that L and R are the same type.
//
// The zero value is not a proof. Its methods panic with ErrUnproven.
type TypeEq[L, R any] struct {
	// Typed on both parameters so TypeEq[A, B] and TypeEq[A, C] do not share
	// an underlying type and cannot be converted into one another.
	p *token[L, R]
}

type token[L, R any] struct{}

// Refl returns the proof that T equals itself.
func Refl[T any]() TypeEq[T, T] {
	return TypeEq[T, T]{p: new(token[T, T])}
}

// Prove returns a proof that L equals R, or false if they differ.
func Prove[L, R any]() (TypeEq[L, R], bool) {
	// *R is never an interface type, so the assertion holds exactly when
	// *L and *R (and therefore L and R) are identical.
	if _, ok := any((*L)(nil)).(*R); !ok {
		return TypeEq[L, R]{}, false
	}
	return TypeEq[L, R]{p: new(token[L, R])}, true
}

// Valid reports whether te is a real proof.
func (te TypeEq[L, R]) Valid() bool {
	return te.p != nil
}

// ToRight returns v as an R.
func (te TypeEq[L, R]) ToRight(v L) R {
	te.mustBeValid()
	return *(*R)(unsafe.Pointer(&v))
}

// ToLeft returns v as an L.
func (te TypeEq[L, R]) ToLeft(v R) L {
	te.mustBeValid()
	return *(*L)(unsafe.Pointer(&v))
}

// Flip returns the proof that R equals L.
func (te TypeEq[L, R]) Flip() TypeEq[R, L] {
	te.mustBeValid()
	return TypeEq[R, L]{p: new(token[R, L])}
}

// Lift derives F[L] == F[R] from L == R, where FL is F[L] and FR is F[R].
//
// Go cannot abstract over type constructors, so the caller names both
// images and Lift cannot check that they are the same constructor applied
// to L and R. The result depends on te only through te being a valid proof;
// the returned proof itself comes from checking FL == FR, and Lift panics
// with ErrNotLifted if they are not identical.
//
//	typeeq.Lift[[]T, []int](eq) // eq: TypeEq[T, int]
func Lift[FL, FR, L, R any](te TypeEq[L, R]) TypeEq[FL, FR] {
	te.mustBeValid()
	lifted, ok := Prove[FL, FR]()
	if !ok {
		panic(ErrNotLifted)
	}
	return lifted
}

func (te TypeEq[L, R]) mustBeValid() {
	if te.p == nil {
		panic(ErrUnproven)
	}
}
