package codec

import (
	"encoding/binary"
	"fmt"
)

// WidthVariable marks a codec whose byte width is derived from context:
// from the value itself on encode, from the field descriptor on decode.
const WidthVariable = -1

// Codec is a pure value <-> bytes transform. Implementations hold no
// state between calls and are safe for concurrent use. All multi-byte
// integers are little-endian.
type Codec interface {
	// Width returns the fixed encoded byte width, or WidthVariable.
	Width() int
	Encode(v any) ([]byte, error)
	Decode(b []byte) (any, error)
}

// Uint8 is a one-byte unsigned integer codec.
type Uint8 struct{}

func (Uint8) Width() int { return 1 }

func (Uint8) Encode(v any) ([]byte, error) {
	n, ok := v.(uint8)
	if !ok {
		return nil, fmt.Errorf("codec: uint8 value required, got %T", v)
	}
	return []byte{n}, nil
}

func (Uint8) Decode(b []byte) (any, error) {
	if len(b) != 1 {
		return nil, &SizeMismatchError{Want: 1, Got: len(b)}
	}
	return b[0], nil
}

// Uint16 is a two-byte little-endian unsigned integer codec.
type Uint16 struct{}

func (Uint16) Width() int { return 2 }

func (Uint16) Encode(v any) ([]byte, error) {
	n, ok := v.(uint16)
	if !ok {
		return nil, fmt.Errorf("codec: uint16 value required, got %T", v)
	}
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, n)
	return buf, nil
}

func (Uint16) Decode(b []byte) (any, error) {
	if len(b) != 2 {
		return nil, &SizeMismatchError{Want: 2, Got: len(b)}
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 is a four-byte little-endian unsigned integer codec.
type Uint32 struct{}

func (Uint32) Width() int { return 4 }

func (Uint32) Encode(v any) ([]byte, error) {
	n, ok := v.(uint32)
	if !ok {
		return nil, fmt.Errorf("codec: uint32 value required, got %T", v)
	}
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, n)
	return buf, nil
}

func (Uint32) Decode(b []byte) (any, error) {
	if len(b) != 4 {
		return nil, &SizeMismatchError{Want: 4, Got: len(b)}
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 is an eight-byte little-endian unsigned integer codec.
type Uint64 struct{}

func (Uint64) Width() int { return 8 }

func (Uint64) Encode(v any) ([]byte, error) {
	n, ok := v.(uint64)
	if !ok {
		return nil, fmt.Errorf("codec: uint64 value required, got %T", v)
	}
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, n)
	return buf, nil
}

func (Uint64) Decode(b []byte) (any, error) {
	if len(b) != 8 {
		return nil, &SizeMismatchError{Want: 8, Got: len(b)}
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Bool is a one-byte boolean codec. Decode maps any nonzero byte to
// true; encode writes exactly 0 or 1. This is the canonical minimal
// scalar codec shape the other codecs follow.
type Bool struct{}

func (Bool) Width() int { return 1 }

func (Bool) Encode(v any) ([]byte, error) {
	t, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("codec: bool value required, got %T", v)
	}
	if t {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (Bool) Decode(b []byte) (any, error) {
	if len(b) != 1 {
		return nil, &SizeMismatchError{Want: 1, Got: len(b)}
	}
	return b[0] != 0, nil
}

// Bytes is a fixed-width raw byte codec. Encode rejects slices whose
// length differs from the declared width; it never pads or truncates.
type Bytes struct {
	N int
}

func (c Bytes) Width() int { return c.N }

func (c Bytes) Encode(v any) ([]byte, error) {
	raw, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("codec: []byte value required, got %T", v)
	}
	if len(raw) != c.N {
		return nil, &SizeMismatchError{Want: c.N, Got: len(raw)}
	}
	out := make([]byte, c.N)
	copy(out, raw)
	return out, nil
}

func (c Bytes) Decode(b []byte) (any, error) {
	if len(b) != c.N {
		return nil, &SizeMismatchError{Want: c.N, Got: len(b)}
	}
	out := make([]byte, c.N)
	copy(out, b)
	return out, nil
}
