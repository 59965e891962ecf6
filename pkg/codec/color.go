package codec

import "fmt"

// RGB is a 24-bit color value.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// ARGB is a 32-bit color value with an alpha channel.
type ARGB struct {
	Alpha uint8
	Red   uint8
	Green uint8
	Blue  uint8
}

func (c ARGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Alpha, c.Red, c.Green, c.Blue)
}

// RGBColor encodes an RGB value as three bytes in red, green, blue
// order.
type RGBColor struct{}

func (RGBColor) Width() int { return 3 }

func (RGBColor) Encode(v any) ([]byte, error) {
	c, ok := v.(RGB)
	if !ok {
		return nil, fmt.Errorf("codec: RGB value required, got %T", v)
	}
	return []byte{c.Red, c.Green, c.Blue}, nil
}

func (RGBColor) Decode(b []byte) (any, error) {
	if len(b) != 3 {
		return nil, &SizeMismatchError{Want: 3, Got: len(b)}
	}
	return RGB{Red: b[0], Green: b[1], Blue: b[2]}, nil
}

// ARGBColor encodes an ARGB value as four bytes in alpha, red, green,
// blue order.
type ARGBColor struct{}

func (ARGBColor) Width() int { return 4 }

func (ARGBColor) Encode(v any) ([]byte, error) {
	c, ok := v.(ARGB)
	if !ok {
		return nil, fmt.Errorf("codec: ARGB value required, got %T", v)
	}
	return []byte{c.Alpha, c.Red, c.Green, c.Blue}, nil
}

func (ARGBColor) Decode(b []byte) (any, error) {
	if len(b) != 4 {
		return nil, &SizeMismatchError{Want: 4, Got: len(b)}
	}
	return ARGB{Alpha: b[0], Red: b[1], Green: b[2], Blue: b[3]}, nil
}
