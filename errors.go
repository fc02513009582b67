package nonzero

import "errors"

var (
	// ErrZero is the cause of every ZeroError.
	ErrZero = errors.New("passed in a `0` argument")

	// ErrUninitialized is reported when the zero NonZero is read (Get panics
	// with it) or marshaled (the marshalers return it).
	ErrUninitialized = errors.New("nonzero: use of uninitialized NonZero")
)

// ZeroError is the panic value of Must when the argument is zero.
//
// It unwraps to ErrZero.
type ZeroError struct {
	Kind Kind
}

func (e *ZeroError) Error() string { return ErrZero.Error() }

func (e *ZeroError) Unwrap() error { return ErrZero }
