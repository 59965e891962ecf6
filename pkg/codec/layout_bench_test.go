package codec

import "testing"

func benchLayout() (*Descriptor, Values) {
	d := &Descriptor{
		Name: "BenchRecord",
		Size: 64,
		Fields: []Field{
			{Name: "Version", Codec: Uint16{}},
			{Name: "Stamp", Codec: Uint64{}},
			{Name: "Mask", Codec: Flags{}},
			{Name: "NameLength", Codec: Uint16{}, Derive: TextLen("Name")},
			{Name: "Name", Codec: UTF16{Capacity: 16}, DecodeWidth: TextWidth("NameLength", 16)},
		},
		Trailing: "ReservedData",
	}
	rec := Values{
		"Version": uint16(2),
		"Stamp":   uint64(0x1122334455667788),
		"Mask":    uint16(0x0003),
		"Name":    "Benchmark",
	}
	return d, rec
}

func BenchmarkDescriptor_Encode(b *testing.B) {
	d, rec := benchLayout()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Encode(rec); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDescriptor_Decode(b *testing.B) {
	d, rec := benchLayout()
	buf, err := d.Encode(rec)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPixelCodec_Pack(b *testing.B) {
	c := PixelCodec{Width: 310, Height: 102}
	img := NewRaster(310, 102)
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Pack(img); err != nil {
			b.Fatal(err)
		}
	}
}
