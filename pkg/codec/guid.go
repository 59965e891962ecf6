package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// deviceByteOrder converts between the canonical big-endian GUID byte
// layout and the device's mixed-endian one: the leading 32-bit, 16-bit,
// and 16-bit components are byte-reversed, the trailing 8 bytes stay in
// natural order. The swap is its own inverse.
func deviceByteOrder(b [16]byte) [16]byte {
	return [16]byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}

// GUID encodes an identifier in the device's native 16-byte
// mixed-endian layout.
type GUID struct{}

func (GUID) Width() int { return 16 }

func (GUID) Encode(v any) ([]byte, error) {
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("codec: uuid.UUID value required, got %T", v)
	}
	out := deviceByteOrder(id)
	return out[:], nil
}

func (GUID) Decode(b []byte) (any, error) {
	if len(b) != 16 {
		return nil, &SizeMismatchError{Want: 16, Got: len(b)}
	}
	var raw [16]byte
	copy(raw[:], b)
	return uuid.UUID(deviceByteOrder(raw)), nil
}

// GUIDHex encodes an identifier as its 32-character lowercase hex form
// with no separators, for textual fields. Unlike GUID this is the
// canonical byte order, not the device one.
type GUIDHex struct{}

func (GUIDHex) Width() int { return 32 }

func (GUIDHex) Encode(v any) ([]byte, error) {
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil, fmt.Errorf("codec: uuid.UUID value required, got %T", v)
	}
	out := make([]byte, 32)
	hex.Encode(out, id[:])
	return out, nil
}

func (GUIDHex) Decode(b []byte) (any, error) {
	if len(b) != 32 {
		return nil, &SizeMismatchError{Want: 32, Got: len(b)}
	}
	id, err := uuid.Parse(string(b))
	if err != nil {
		return nil, &RangeError{Msg: fmt.Sprintf("invalid hex identifier %q", b)}
	}
	return id, nil
}
