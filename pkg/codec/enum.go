package codec

import (
	"encoding/binary"
	"fmt"
)

// Enum is a strict enumeration codec: a fixed-width unsigned integer
// whose values are limited to a registered code set. Decoding an
// unregistered code fails with an UnknownEnumValueError, as does
// encoding one.
type Enum struct {
	name  string
	width int
	codes map[uint16]struct{}
}

// NewEnum builds a strict enum codec. width must be 1 or 2 bytes.
func NewEnum(name string, width int, codes ...uint16) Enum {
	if width != 1 && width != 2 {
		panic(fmt.Sprintf("codec: enum %s width must be 1 or 2, got %d", name, width))
	}
	set := make(map[uint16]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return Enum{name: name, width: width, codes: set}
}

func (e Enum) Width() int { return e.width }

func (e Enum) Encode(v any) ([]byte, error) {
	n, ok := v.(uint16)
	if !ok {
		return nil, fmt.Errorf("codec: uint16 enum value required, got %T", v)
	}
	if _, ok := e.codes[n]; !ok {
		return nil, &UnknownEnumValueError{Enum: e.name, Value: n}
	}
	if e.width == 1 {
		return []byte{uint8(n)}, nil
	}
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, n)
	return buf, nil
}

func (e Enum) Decode(b []byte) (any, error) {
	if len(b) != e.width {
		return nil, &SizeMismatchError{Want: e.width, Got: len(b)}
	}
	var n uint16
	if e.width == 1 {
		n = uint16(b[0])
	} else {
		n = binary.LittleEndian.Uint16(b)
	}
	if _, ok := e.codes[n]; !ok {
		return nil, &UnknownEnumValueError{Enum: e.name, Value: n}
	}
	return n, nil
}

// Flags is a permissive 16-bit little-endian bitmask codec. Every bit
// of the stored integer survives a decode verbatim; named flags are a
// derived view the caller layers on top of the raw mask. Unknown bits
// are neither dropped nor rejected, so masks written by newer firmware
// round-trip unchanged.
type Flags struct{}

func (Flags) Width() int { return 2 }

func (Flags) Encode(v any) ([]byte, error) {
	m, ok := v.(uint16)
	if !ok {
		return nil, fmt.Errorf("codec: uint16 mask required, got %T", v)
	}
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, m)
	return buf, nil
}

func (Flags) Decode(b []byte) (any, error) {
	if len(b) != 2 {
		return nil, &SizeMismatchError{Want: 2, Got: len(b)}
	}
	return binary.LittleEndian.Uint16(b), nil
}
