package band

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openband/bandwire/pkg/codec"
)

func testTile(t *testing.T) *Tile {
	t.Helper()
	return &Tile{
		TileGUID:   uuid.MustParse("d8895bfd-0461-400d-bd52-dbe2a3c33021"),
		Order:      3,
		ThemeColor: codec.ARGB{Alpha: 255, Red: 0x33, Green: 0x66, Blue: 0x99},
		Settings:   EnableNotification | EnableBadging,
		Name:       "Messages",
		OwnerGUID:  BandAppIOSGUID,
	}
}

func TestTileRoundTrip(t *testing.T) {
	tile := testTile(t)
	data, err := tile.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, TileSize)

	var got Tile
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, *tile, got)
}

func TestTileNameLengthDerived(t *testing.T) {
	tile := testTile(t)
	tile.Name = "Run"
	data, err := tile.MarshalBinary()
	require.NoError(t, err)

	// GUID 16 + Order 4 + color 4 puts the length prefix at offset 24.
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data[24:26]))
}

func TestTileRejectsWrongSize(t *testing.T) {
	var tile Tile
	err := tile.UnmarshalBinary(make([]byte, TileSize-1))
	var sizeErr *codec.SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, "Tile", sizeErr.Record)
	assert.Equal(t, TileSize, sizeErr.Want)
}

func TestTileNameTooLong(t *testing.T) {
	tile := testTile(t)
	tile.Name = strings.Repeat("x", TileNameCapacity+5)
	_, err := tile.MarshalBinary()
	var tooLarge *codec.FieldTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "TileName", tooLarge.Field)
	assert.Equal(t, TileNameCapacity, tooLarge.Limit)
}

func TestTileNameOverflowsDeclaredSize(t *testing.T) {
	// 23 code units pass the field capacity but leave no room for the
	// owner identifier inside the declared record size.
	tile := testTile(t)
	tile.Name = strings.Repeat("x", 23)
	_, err := tile.MarshalBinary()
	assert.ErrorAs(t, err, new(*codec.FieldTooLargeError))

	tile.Name = strings.Repeat("x", 22)
	data, err := tile.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, TileSize)
}

func TestTileUnknownSettingsBitsSurvive(t *testing.T) {
	tile := testTile(t)
	tile.Settings = EnableAutoUpdate | TileSettings(0x4000)
	data, err := tile.MarshalBinary()
	require.NoError(t, err)

	var got Tile
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, tile.Settings, got.Settings)
	assert.Equal(t, uint16(0x4000), got.Settings.Unknown())
}

func TestTileReservedBytesSurvive(t *testing.T) {
	tile := testTile(t)
	data, err := tile.MarshalBinary()
	require.NoError(t, err)

	// Scribble on the padding past the owner identifier.
	data[TileSize-2] = 0xAB
	var got Tile
	require.NoError(t, got.UnmarshalBinary(data))
	require.NotEmpty(t, got.Reserved)

	reencoded, err := got.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, reencoded)
}

func TestTileFreshRecordHasNoReserved(t *testing.T) {
	tile := testTile(t)
	data, err := tile.MarshalBinary()
	require.NoError(t, err)

	var got Tile
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Nil(t, got.Reserved)
}
