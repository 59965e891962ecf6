package codec

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// UTF16Len returns the UTF-16 code-unit length of s, the unit the wire
// format counts text in.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func utf16Bytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	return buf
}

func utf16String(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units))
}

// UTF16 is a variable-width UTF-16LE string codec with a declared
// code-unit capacity. Its decode width comes from a preceding
// length-prefix field; see TextWidth. Encode fails with a
// FieldTooLargeError when the content exceeds the capacity.
type UTF16 struct {
	Capacity int
}

func (UTF16) Width() int { return WidthVariable }

func (c UTF16) Encode(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("codec: string value required, got %T", v)
	}
	if n := UTF16Len(s); n > c.Capacity {
		return nil, &FieldTooLargeError{Limit: c.Capacity, Got: n}
	}
	return utf16Bytes(s), nil
}

func (c UTF16) Decode(b []byte) (any, error) {
	if len(b)%2 != 0 {
		return nil, &SizeMismatchError{Want: len(b) + 1, Got: len(b)}
	}
	return utf16String(b), nil
}

// UTF16Padded is a fixed-width UTF-16LE string codec: Units code units,
// zero-padded on encode, trimmed at the first zero unit on decode.
// Profile text fields use this shape; they carry no length prefix.
type UTF16Padded struct {
	Units int
}

func (c UTF16Padded) Width() int { return 2 * c.Units }

func (c UTF16Padded) Encode(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("codec: string value required, got %T", v)
	}
	if n := UTF16Len(s); n > c.Units {
		return nil, &FieldTooLargeError{Limit: c.Units, Got: n}
	}
	buf := make([]byte, 2*c.Units)
	copy(buf, utf16Bytes(s))
	return buf, nil
}

func (c UTF16Padded) Decode(b []byte) (any, error) {
	if len(b) != 2*c.Units {
		return nil, &SizeMismatchError{Want: 2 * c.Units, Got: len(b)}
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	return utf16String(b), nil
}
