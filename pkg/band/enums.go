package band

import (
	"fmt"
	"strings"

	"github.com/openband/bandwire/pkg/codec"
)

// Gender is the profile's gender code.
type Gender uint8

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

var genderCodec = codec.NewEnum("Gender", 1, uint16(GenderMale), uint16(GenderFemale))

// FirmwareApp identifies which firmware application the device is
// running.
type FirmwareApp uint8

const (
	FirmwareAppOneBL   FirmwareApp = 1
	FirmwareAppTwoUp   FirmwareApp = 2
	FirmwareAppApp     FirmwareApp = 3
	FirmwareAppUpApp   FirmwareApp = 4
	FirmwareAppInvalid FirmwareApp = 0xFF
)

// FirmwareAppCodec decodes the firmware application byte strictly.
var FirmwareAppCodec = codec.NewEnum("FirmwareApp", 1,
	uint16(FirmwareAppOneBL), uint16(FirmwareAppTwoUp), uint16(FirmwareAppApp),
	uint16(FirmwareAppUpApp), uint16(FirmwareAppInvalid))

// FirmwareSdkCheckPlatform identifies the host platform in firmware SDK
// checks.
type FirmwareSdkCheckPlatform uint8

const (
	PlatformWindowsPhone FirmwareSdkCheckPlatform = 1
	PlatformWindows      FirmwareSdkCheckPlatform = 2
	PlatformDesktop      FirmwareSdkCheckPlatform = 3
)

// FirmwareSdkCheckPlatformCodec decodes the platform byte strictly.
var FirmwareSdkCheckPlatformCodec = codec.NewEnum("FirmwareSdkCheckPlatform", 1,
	uint16(PlatformWindowsPhone), uint16(PlatformWindows), uint16(PlatformDesktop))

// SensorType identifies a sensor subscription stream.
type SensorType uint8

const (
	SensorHRDebug      SensorType = 0x18
	SensorBatteryGauge SensorType = 0x26
	SensorAccelGyro    SensorType = 0x5E
	SensorLogEntry     SensorType = 0x7C
)

// SensorTypeCodec decodes the sensor type byte strictly.
var SensorTypeCodec = codec.NewEnum("SensorType", 1,
	uint16(SensorHRDebug), uint16(SensorBatteryGauge),
	uint16(SensorAccelGyro), uint16(SensorLogEntry))

// Locale and display-format codes on the profile are open sets; the
// lookup tables that give them names live outside this layer.
type (
	LocaleID   uint16
	LanguageID uint16
	TimeFormat uint8
	DateFormat uint8
	UnitType   uint8
)

// TileSettings is the tile's option bitmask. Decoding preserves every
// stored bit verbatim; the named constants are a view over the bits
// this revision recognizes. Unknown bits round-trip unchanged so masks
// written by newer firmware survive.
type TileSettings uint16

const (
	TileSettingsNull       TileSettings = 0
	EnableNotification     TileSettings = 1
	EnableBadging          TileSettings = 2
	UseCustomColorForTile  TileSettings = 4
	EnableAutoUpdate       TileSettings = 8
	ScreenTimeout30Seconds TileSettings = 16
	ScreenTimeoutDisabled  TileSettings = 32
)

var tileSettingNames = []struct {
	bit  TileSettings
	name string
}{
	{EnableNotification, "EnableNotification"},
	{EnableBadging, "EnableBadging"},
	{UseCustomColorForTile, "UseCustomColorForTile"},
	{EnableAutoUpdate, "EnableAutoUpdate"},
	{ScreenTimeout30Seconds, "ScreenTimeout30Seconds"},
	{ScreenTimeoutDisabled, "ScreenTimeoutDisabled"},
}

const tileSettingsKnown TileSettings = EnableNotification | EnableBadging |
	UseCustomColorForTile | EnableAutoUpdate | ScreenTimeout30Seconds | ScreenTimeoutDisabled

// Has reports whether every bit of f is set.
func (s TileSettings) Has(f TileSettings) bool { return s&f == f }

// Known returns the recognized bits of the mask.
func (s TileSettings) Known() TileSettings { return s & tileSettingsKnown }

// Unknown returns the bits this revision has no name for. They are
// carried through encode unmodified.
func (s TileSettings) Unknown() uint16 { return uint16(s &^ tileSettingsKnown) }

func (s TileSettings) String() string {
	if s == TileSettingsNull {
		return "Null"
	}
	var parts []string
	for _, e := range tileSettingNames {
		if s.Has(e.bit) {
			parts = append(parts, e.name)
		}
	}
	if u := s.Unknown(); u != 0 {
		parts = append(parts, fmt.Sprintf("%#04x", u))
	}
	return strings.Join(parts, "|")
}
