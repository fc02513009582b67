package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/nonzero"
	"github.com/hupe1980/nonzero/wide"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint128 returns a pseudo-random wide.Uint128.
// Locks only once per call so both halves come from one draw sequence.
func (r *RNG) Uint128() wide.Uint128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return wide.U128(r.rand.Uint64(), r.rand.Uint64())
}

// Int128 returns a pseudo-random wide.Int128.
func (r *RNG) Int128() wide.Int128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return wide.I128(int64(r.rand.Uint64()), r.rand.Uint64())
}

// Value returns a pseudo-random T covering the whole range of the kind.
func Value[T nonzero.Integer](r *RNG) T {
	var out any
	switch nonzero.KindOf[T]() {
	case nonzero.KindInt8:
		out = int8(r.Uint64())
	case nonzero.KindInt16:
		out = int16(r.Uint64())
	case nonzero.KindInt32:
		out = int32(r.Uint64())
	case nonzero.KindInt64:
		out = int64(r.Uint64())
	case nonzero.KindInt128:
		out = r.Int128()
	case nonzero.KindInt:
		out = int(r.Uint64())
	case nonzero.KindUint8:
		out = uint8(r.Uint64())
	case nonzero.KindUint16:
		out = uint16(r.Uint64())
	case nonzero.KindUint32:
		out = uint32(r.Uint64())
	case nonzero.KindUint64:
		out = r.Uint64()
	case nonzero.KindUint128:
		out = r.Uint128()
	case nonzero.KindUint:
		out = uint(r.Uint64())
	}
	return out.(T)
}

// NonZeroValues returns n pseudo-random values of kind T, none of them zero.
func NonZeroValues[T nonzero.Integer](r *RNG, n int) []T {
	var zero T
	values := make([]T, 0, n)
	for len(values) < n {
		if v := Value[T](r); v != zero {
			values = append(values, v)
		}
	}
	return values
}
