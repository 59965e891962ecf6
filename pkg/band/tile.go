package band

import (
	"github.com/google/uuid"

	"github.com/openband/bandwire/pkg/codec"
)

const (
	// TileSize is the declared wire size of a Tile record. The value
	// comes from the legacy layout notes; like ProfileSize it has not
	// been re-verified against device captures.
	TileSize = 88

	// TileNameCapacity bounds the tile name in UTF-16 code units.
	TileNameCapacity = 30
)

// Tile is one start-screen tile: its identifier, ordering, theme color,
// option mask, display name, and owning application.
type Tile struct {
	TileGUID   uuid.UUID
	Order      uint32
	ThemeColor codec.ARGB
	Settings   TileSettings
	Name       string
	OwnerGUID  uuid.UUID

	// Reserved carries the trailing bytes after the owner identifier,
	// normally zero padding. Unknown content survives a round trip.
	Reserved []byte
}

// The name slot is variable width: the length prefix counts the code
// units actually present, and the owner identifier follows immediately.
var tileLayout = &codec.Descriptor{
	Name: "Tile",
	Size: TileSize,
	Fields: []codec.Field{
		{Name: "TileGUID", Codec: codec.GUID{}},
		{Name: "Order", Codec: codec.Uint32{}},
		{Name: "ThemeColor", Codec: codec.ARGBColor{}, Default: codec.ARGB{Alpha: 255}},
		{Name: "NameLength", Codec: codec.Uint16{}, Derive: codec.TextLen("TileName")},
		{Name: "SettingsMask", Codec: codec.Flags{}, Default: uint16(0)},
		{Name: "TileName", Codec: codec.UTF16{Capacity: TileNameCapacity}, DecodeWidth: codec.TextWidth("NameLength", TileNameCapacity)},
		{Name: "OwnerGUID", Codec: codec.GUID{}},
	},
	Trailing: "ReservedData",
}

// MarshalBinary encodes the tile into its declared wire size.
func (t *Tile) MarshalBinary() ([]byte, error) {
	return tileLayout.Encode(codec.Values{
		"TileGUID":     t.TileGUID,
		"Order":        t.Order,
		"ThemeColor":   t.ThemeColor,
		"SettingsMask": uint16(t.Settings),
		"TileName":     t.Name,
		"OwnerGUID":    t.OwnerGUID,
		"ReservedData": t.Reserved,
	})
}

// UnmarshalBinary decodes a buffer of exactly TileSize bytes.
func (t *Tile) UnmarshalBinary(data []byte) error {
	rec, err := tileLayout.Decode(data)
	if err != nil {
		return err
	}
	*t = Tile{
		TileGUID:   rec["TileGUID"].(uuid.UUID),
		Order:      rec["Order"].(uint32),
		ThemeColor: rec["ThemeColor"].(codec.ARGB),
		Settings:   TileSettings(rec["SettingsMask"].(uint16)),
		Name:       rec["TileName"].(string),
		OwnerGUID:  rec["OwnerGUID"].(uuid.UUID),
	}
	if raw, ok := rec["ReservedData"].([]byte); ok {
		t.Reserved = raw
	}
	return nil
}
