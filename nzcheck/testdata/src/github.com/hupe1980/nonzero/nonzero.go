// Package nonzero is a minimal stand-in for the real package, exposing only
// the signatures nzcheck inspects.
package nonzero

type NonZero[T any] struct{ v T }

func Must[T any](v T) NonZero[T] { return NonZero[T]{v: v} }

func (n NonZero[T]) Get() T { return n.v }
