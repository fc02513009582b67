package nonzero

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/nonzero/wide"
)

var _ yaml.Marshaler = NonZero[int]{}

// String returns the decimal representation of the wrapped value. The
// uninitialized NonZero formats as "0".
func (n NonZero[T]) String() string {
	return format(n.v)
}

func format[T Integer](v T) string {
	switch v := any(v).(type) {
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case fmt.Stringer:
		// wide.Int128 and wide.Uint128.
		return v.String()
	}
	panic("nonzero: unreachable kind")
}

// MarshalText implements encoding.TextMarshaler.
func (n NonZero[T]) MarshalText() ([]byte, error) {
	if !n.initialized() {
		return nil, ErrUninitialized
	}
	return []byte(n.String()), nil
}

// MarshalJSON implements json.Marshaler. The value is written as a JSON
// number, including the 128-bit kinds.
func (n NonZero[T]) MarshalJSON() ([]byte, error) {
	return n.MarshalText()
}

// MarshalYAML implements yaml.Marshaler. The value is written as an !!int
// scalar, so 128-bit values are not quoted as strings.
func (n NonZero[T]) MarshalYAML() (any, error) {
	if !n.initialized() {
		return nil, ErrUninitialized
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: n.String(),
	}, nil
}

var (
	_ fmt.Stringer = wide.Int128{}
	_ fmt.Stringer = wide.Uint128{}
)
