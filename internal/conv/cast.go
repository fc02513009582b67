package conv

import (
	"fmt"
	"math"
)

// Uint128ToUint64 converts the 128-bit unsigned value hi:lo to uint64 safely.
func Uint128ToUint64(hi, lo uint64) (uint64, error) {
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %#x:%#x cannot be converted to uint64 (too large)", hi, lo)
	}
	return lo, nil
}

// Int128ToInt64 converts the 128-bit two's complement value hi:lo to int64 safely.
func Int128ToInt64(hi int64, lo uint64) (int64, error) {
	switch {
	case hi == 0 && lo <= math.MaxInt64:
		return int64(lo), nil
	case hi == -1 && lo > math.MaxInt64:
		// Sign extension of a negative int64 sets every bit of hi.
		return int64(lo), nil
	case hi < 0:
		return 0, fmt.Errorf("integer overflow: %#x:%#x cannot be converted to int64 (too small)", uint64(hi), lo)
	default:
		return 0, fmt.Errorf("integer overflow: %#x:%#x cannot be converted to int64 (too large)", uint64(hi), lo)
	}
}
