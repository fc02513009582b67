package nonzero_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nonzero"
	"github.com/hupe1980/nonzero/testutil"
	"github.com/hupe1980/nonzero/wide"
)

func TestMust(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"int8", kindProperties[int8](nonzero.KindInt8, math.MinInt8, math.MaxInt8)},
		{"int16", kindProperties[int16](nonzero.KindInt16, math.MinInt16, math.MaxInt16)},
		{"int32", kindProperties[int32](nonzero.KindInt32, math.MinInt32, math.MaxInt32)},
		{"int64", kindProperties[int64](nonzero.KindInt64, math.MinInt64, math.MaxInt64)},
		{"int128", kindProperties(nonzero.KindInt128, wide.MinInt128, wide.MaxInt128)},
		{"int", kindProperties[int](nonzero.KindInt, math.MinInt, math.MaxInt)},
		{"uint8", kindProperties[uint8](nonzero.KindUint8, 1, math.MaxUint8)},
		{"uint16", kindProperties[uint16](nonzero.KindUint16, 1, math.MaxUint16)},
		{"uint32", kindProperties[uint32](nonzero.KindUint32, 1, math.MaxUint32)},
		{"uint64", kindProperties[uint64](nonzero.KindUint64, 1, math.MaxUint64)},
		{"uint128", kindProperties(nonzero.KindUint128, wide.Uint128From64(1), wide.MaxUint128)},
		{"uint", kindProperties[uint](nonzero.KindUint, 1, math.MaxUint)},
	}

	require.Len(t, tests, len(nonzero.Kinds()))

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

// kindProperties checks every construction property of one kind. lo and hi
// are the smallest and largest non-zero values of the kind.
func kindProperties[T nonzero.Integer](kind nonzero.Kind, lo, hi T) func(t *testing.T) {
	return func(t *testing.T) {
		t.Run("zero rejected", func(t *testing.T) {
			var zero T

			err := recoverError(func() { _ = nonzero.Must(zero) })

			var ze *nonzero.ZeroError
			require.ErrorAs(t, err, &ze)
			assert.Equal(t, kind, ze.Kind)
			assert.ErrorIs(t, err, nonzero.ErrZero)
			assert.EqualError(t, err, "passed in a `0` argument")
		})

		t.Run("boundaries round-trip", func(t *testing.T) {
			assert.Equal(t, lo, nonzero.Must(lo).Get())
			assert.Equal(t, hi, nonzero.Must(hi).Get())
		})

		t.Run("random values round-trip", func(t *testing.T) {
			rng := testutil.NewRNG(4711)
			for _, v := range testutil.NonZeroValues[T](rng, 1000) {
				require.Equal(t, v, nonzero.Must(v).Get())
			}
		})

		t.Run("kind fidelity", func(t *testing.T) {
			n := nonzero.Must(hi)

			assert.IsType(t, nonzero.NonZero[T]{}, n)
			assert.Equal(t, kind, n.Kind())
			assert.Equal(t, kind, nonzero.KindOf[T]())
		})

		t.Run("deterministic", func(t *testing.T) {
			assert.Equal(t, nonzero.Must(lo), nonzero.Must(lo))
			assert.Equal(t, nonzero.Must(hi), nonzero.Must(hi))
		})
	}
}

func TestMustExhaustiveSmallKinds(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		for v := math.MinInt8; v <= math.MaxInt8; v++ {
			if v != 0 {
				require.Equal(t, int8(v), nonzero.Must(int8(v)).Get())
			}
		}
	})

	t.Run("uint8", func(t *testing.T) {
		for v := 1; v <= math.MaxUint8; v++ {
			require.Equal(t, uint8(v), nonzero.Must(uint8(v)).Get())
		}
	})

	t.Run("int16", func(t *testing.T) {
		for v := math.MinInt16; v <= math.MaxInt16; v++ {
			if v != 0 {
				require.Equal(t, int16(v), nonzero.Must(int16(v)).Get())
			}
		}
	})

	t.Run("uint16", func(t *testing.T) {
		for v := 1; v <= math.MaxUint16; v++ {
			require.Equal(t, uint16(v), nonzero.Must(uint16(v)).Get())
		}
	})
}

func TestMustScenarios(t *testing.T) {
	t.Run("unsigned 16 two", func(t *testing.T) {
		two := nonzero.Must(uint16(2))
		assert.Equal(t, uint16(2), two.Get())
		assert.Equal(t, nonzero.KindUint16, two.Kind())
	})

	t.Run("signed 8 minus four", func(t *testing.T) {
		const four int8 = -4
		assert.Equal(t, int8(-4), nonzero.Must(four).Get())
	})

	t.Run("unsigned 8 zero", func(t *testing.T) {
		require.PanicsWithError(t, "passed in a `0` argument", func() {
			_ = nonzero.Must[uint8](0)
		})
	})

	t.Run("unsigned 8 max", func(t *testing.T) {
		assert.Equal(t, uint8(255), nonzero.Must[uint8](255).Get())
	})

	t.Run("signed 8 min", func(t *testing.T) {
		assert.Equal(t, int8(-128), nonzero.Must[int8](-128).Get())
	})

	t.Run("explicit kind", func(t *testing.T) {
		var three nonzero.Uint64 = nonzero.Must[uint64](3)
		assert.Equal(t, uint64(3), three.Get())
	})

	t.Run("wide above 64 bits", func(t *testing.T) {
		n := nonzero.Must(wide.U128(1, 0))
		assert.Equal(t, wide.U128(1, 0), n.Get())
		assert.Equal(t, nonzero.KindUint128, n.Kind())
	})
}

func TestMustDoesNotAllocate(t *testing.T) {
	x := uint32(7)
	assert.Zero(t, testing.AllocsPerRun(1000, func() {
		x = nonzero.Must(x).Get()
	}))

	w := wide.U128(1, 0)
	assert.Zero(t, testing.AllocsPerRun(1000, func() {
		w = nonzero.Must(w).Get()
	}))

	var k nonzero.Kind
	assert.Zero(t, testing.AllocsPerRun(1000, func() {
		k = nonzero.KindOf[int8]()
	}))
	assert.Equal(t, nonzero.KindInt8, k)

	n := nonzero.Must[int64](-9)
	assert.Zero(t, testing.AllocsPerRun(1000, func() {
		k = n.Kind()
	}))
	assert.Equal(t, nonzero.KindInt64, k)
}

func TestUninitialized(t *testing.T) {
	var n nonzero.Uint8

	assert.PanicsWithValue(t, nonzero.ErrUninitialized, func() { _ = n.Get() })
	assert.Equal(t, nonzero.KindUint8, n.Kind())
	assert.Equal(t, "0", n.String())
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
