package codec

import (
	"encoding/binary"
	"fmt"
)

// Raster is a row-major 24-bit RGB image: three bytes per pixel, no row
// padding.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a zeroed raster.
func NewRaster(width, height int) *Raster {
	return &Raster{Width: width, Height: height, Pix: make([]uint8, 3*width*height)}
}

// At returns the pixel at (x, y). No bounds check beyond the slice's own.
func (r *Raster) At(x, y int) RGB {
	i := 3 * (y*r.Width + x)
	return RGB{Red: r.Pix[i], Green: r.Pix[i+1], Blue: r.Pix[i+2]}
}

// Set writes the pixel at (x, y).
func (r *Raster) Set(x, y int, c RGB) {
	i := 3 * (y*r.Width + x)
	r.Pix[i], r.Pix[i+1], r.Pix[i+2] = c.Red, c.Green, c.Blue
}

// PixelCodec converts a raster of declared dimensions to and from the
// device's packed 16-bit pixel format. Each pixel keeps the top 5 bits
// of red, top 6 of green, and top 5 of blue, assembled with red in the
// most significant bits and stored as a little-endian 16-bit value,
// row-major, no row padding.
//
// Packing discards the low-order color bits, so Pack followed by Unpack
// is lossy. It is idempotent after one canonicalizing pass: unpacked
// output packs back to the identical bytes.
type PixelCodec struct {
	Width  int
	Height int
}

func (c PixelCodec) pixels() int { return c.Width * c.Height }

// PackPixel packs one RGB pixel into the 16-bit device value.
func PackPixel(p RGB) uint16 {
	return uint16(p.Red>>3)<<11 | uint16(p.Green>>2)<<5 | uint16(p.Blue>>3)
}

// UnpackPixel expands a 16-bit device value back into 8-bit channels.
// The low-order bits lost in packing come back as zeros.
func UnpackPixel(v uint16) RGB {
	return RGB{
		Red:   uint8(v>>11) << 3,
		Green: uint8(v>>5&0x3F) << 2,
		Blue:  uint8(v&0x1F) << 3,
	}
}

// Pack converts a raster to packed device bytes. The raster's declared
// dimensions must match the codec's; the codec does not resize.
func (c PixelCodec) Pack(r *Raster) ([]byte, error) {
	if r.Width != c.Width || r.Height != c.Height {
		return nil, &SizeMismatchError{Want: c.pixels(), Got: r.Width * r.Height}
	}
	if len(r.Pix) != 3*c.pixels() {
		return nil, &SizeMismatchError{Want: 3 * c.pixels(), Got: len(r.Pix)}
	}
	out := make([]byte, 2*c.pixels())
	for i := 0; i < c.pixels(); i++ {
		p := RGB{Red: r.Pix[3*i], Green: r.Pix[3*i+1], Blue: r.Pix[3*i+2]}
		binary.LittleEndian.PutUint16(out[2*i:], PackPixel(p))
	}
	return out, nil
}

// Unpack converts packed device bytes back to a raster.
func (c PixelCodec) Unpack(data []byte) (*Raster, error) {
	if len(data) != 2*c.pixels() {
		return nil, &SizeMismatchError{Want: 2 * c.pixels(), Got: len(data)}
	}
	r := NewRaster(c.Width, c.Height)
	for i := 0; i < c.pixels(); i++ {
		p := UnpackPixel(binary.LittleEndian.Uint16(data[2*i:]))
		r.Pix[3*i], r.Pix[3*i+1], r.Pix[3*i+2] = p.Red, p.Green, p.Blue
	}
	return r, nil
}

func (c PixelCodec) String() string {
	return fmt.Sprintf("%dx%d packed 16-bit", c.Width, c.Height)
}
