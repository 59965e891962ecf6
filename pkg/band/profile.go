package band

import (
	"time"

	"github.com/google/uuid"

	"github.com/openband/bandwire/pkg/codec"
)

// DefaultProfileSize is the declared wire size of a Profile record.
// The legacy layout notes flag this total as unverified against real
// device captures, so the size is declared per codec rather than baked
// into the layout; see NewProfileCodec and the captures package.
const DefaultProfileSize = 397

// ProfileVersionChangeLog is the profile version that introduced the
// change-tracking fields.
const ProfileVersionChangeLog = 2

// Profile is the device-side user profile. The change-tracking fields
// are present on the wire only when Version >= ProfileVersionChangeLog;
// they are nil on decoded records that omit them.
type Profile struct {
	Version     uint16
	LastSync    time.Time
	UserGUID    uuid.UUID
	Birthday    time.Time
	WeightGrams uint32
	HeightMM    uint16
	Gender      Gender

	DeviceName string // up to 16 code units
	LocaleName string // up to 6 code units
	LocaleID   LocaleID
	Language   LanguageID

	DateSeparator    string // single code unit
	NumberSeparator  string
	DecimalSeparator string

	TimeFormat         TimeFormat
	DateFormat         DateFormat
	DistanceShortUnits UnitType
	DistanceLongUnits  UnitType
	MassUnits          UnitType
	VolumeUnits        UnitType
	EnergyUnits        UnitType
	TemperatureUnits   UnitType
	RunDisplayUnits    UnitType

	Telemetry bool

	// Version >= 2 fields.
	HwagChangeTime            *time.Time
	HwagChangeAgent           *uint8
	DeviceNameChangeTime      *time.Time
	DeviceNameChangeAgent     *uint8
	LocaleSettingsChangeTime  *time.Time
	LocaleSettingsChangeAgent *uint8
	LanguageChangeTime        *time.Time
	LanguageChangeAgent       *uint8
	MaxHeartRate              *uint8

	// Reserved carries trailing bytes up to the declared size.
	Reserved []byte
}

func profileLayout(size int) *codec.Descriptor {
	v2 := codec.MinVersion("Version", ProfileVersionChangeLog)
	return &codec.Descriptor{
		Name: "Profile",
		Size: size,
		Fields: []codec.Field{
			{Name: "Version", Codec: codec.Uint16{}},
			{Name: "LastSync", Codec: codec.Time{}, Default: codec.Epoch},
			{Name: "UserGUID", Codec: codec.GUID{}, Default: uuid.UUID{}},
			{Name: "Birthday", Codec: codec.Time{}, Default: codec.Epoch},
			{Name: "Weight_g", Codec: codec.Uint32{}, Default: uint32(0)},
			{Name: "Height_mm", Codec: codec.Uint16{}, Default: uint16(0)},
			{Name: "Gender", Codec: genderCodec, Default: uint16(GenderMale)},
			{Name: "DeviceName", Codec: codec.UTF16Padded{Units: 16}, Default: ""},
			{Name: "LocaleName", Codec: codec.UTF16Padded{Units: 6}, Default: ""},
			{Name: "LocaleId", Codec: codec.Uint16{}, Default: uint16(0)},
			{Name: "Language", Codec: codec.Uint16{}, Default: uint16(0)},
			{Name: "DateSeparator", Codec: codec.UTF16Padded{Units: 1}, Default: ""},
			{Name: "NumberSeparator", Codec: codec.UTF16Padded{Units: 1}, Default: ""},
			{Name: "DecimalSeparator", Codec: codec.UTF16Padded{Units: 1}, Default: ""},
			{Name: "TimeFormat", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "DateFormat", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "DistanceShortUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "DistanceLongUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "MassUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "VolumeUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "EnergyUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "TemperatureUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "RunDisplayUnits", Codec: codec.Uint8{}, Default: uint8(0)},
			{Name: "Telemetry", Codec: codec.Bool{}, Default: false},
			{Name: "HwagChangeTime", Codec: codec.Time{}, If: v2, Default: codec.Epoch},
			{Name: "HwagChangeAgent", Codec: codec.Uint8{}, If: v2, Default: uint8(0)},
			{Name: "DeviceNameChangeTime", Codec: codec.Time{}, If: v2, Default: codec.Epoch},
			{Name: "DeviceNameChangeAgent", Codec: codec.Uint8{}, If: v2, Default: uint8(0)},
			{Name: "LocaleSettingsChangeTime", Codec: codec.Time{}, If: v2, Default: codec.Epoch},
			{Name: "LocaleSettingsChangeAgent", Codec: codec.Uint8{}, If: v2, Default: uint8(0)},
			{Name: "LanguageChangeTime", Codec: codec.Time{}, If: v2, Default: codec.Epoch},
			{Name: "LanguageChangeAgent", Codec: codec.Uint8{}, If: v2, Default: uint8(0)},
			{Name: "MaxHR", Codec: codec.Uint8{}, If: v2, Default: uint8(0)},
		},
		Trailing: "ReservedData",
	}
}

// ProfileCodec encodes and decodes Profile records against one declared
// total size. The zero value is not usable; construct with
// NewProfileCodec.
type ProfileCodec struct {
	layout *codec.Descriptor
}

// NewProfileCodec builds a profile codec with a custom declared size,
// for re-verification against device captures.
func NewProfileCodec(size int) ProfileCodec {
	return ProfileCodec{layout: profileLayout(size)}
}

var defaultProfileCodec = NewProfileCodec(DefaultProfileSize)

// Size returns the codec's declared total size.
func (c ProfileCodec) Size() int { return c.layout.Size }

// Encode produces the profile's wire form at the codec's declared size.
func (c ProfileCodec) Encode(p *Profile) ([]byte, error) {
	rec := codec.Values{
		"Version":            p.Version,
		"UserGUID":           p.UserGUID,
		"Weight_g":           p.WeightGrams,
		"Height_mm":          p.HeightMM,
		"Gender":             uint16(p.Gender),
		"DeviceName":         p.DeviceName,
		"LocaleName":         p.LocaleName,
		"LocaleId":           uint16(p.LocaleID),
		"Language":           uint16(p.Language),
		"DateSeparator":      p.DateSeparator,
		"NumberSeparator":    p.NumberSeparator,
		"DecimalSeparator":   p.DecimalSeparator,
		"TimeFormat":         uint8(p.TimeFormat),
		"DateFormat":         uint8(p.DateFormat),
		"DistanceShortUnits": uint8(p.DistanceShortUnits),
		"DistanceLongUnits":  uint8(p.DistanceLongUnits),
		"MassUnits":          uint8(p.MassUnits),
		"VolumeUnits":        uint8(p.VolumeUnits),
		"EnergyUnits":        uint8(p.EnergyUnits),
		"TemperatureUnits":   uint8(p.TemperatureUnits),
		"RunDisplayUnits":    uint8(p.RunDisplayUnits),
		"Telemetry":          p.Telemetry,
		"ReservedData":       p.Reserved,
	}
	// Unset times encode as the tick epoch instead of failing the
	// range check on Go's zero time.
	if !p.LastSync.IsZero() {
		rec["LastSync"] = p.LastSync
	}
	if !p.Birthday.IsZero() {
		rec["Birthday"] = p.Birthday
	}
	putTime(rec, "HwagChangeTime", p.HwagChangeTime)
	putByte(rec, "HwagChangeAgent", p.HwagChangeAgent)
	putTime(rec, "DeviceNameChangeTime", p.DeviceNameChangeTime)
	putByte(rec, "DeviceNameChangeAgent", p.DeviceNameChangeAgent)
	putTime(rec, "LocaleSettingsChangeTime", p.LocaleSettingsChangeTime)
	putByte(rec, "LocaleSettingsChangeAgent", p.LocaleSettingsChangeAgent)
	putTime(rec, "LanguageChangeTime", p.LanguageChangeTime)
	putByte(rec, "LanguageChangeAgent", p.LanguageChangeAgent)
	putByte(rec, "MaxHR", p.MaxHeartRate)
	return c.layout.Encode(rec)
}

// Decode parses a buffer of exactly the codec's declared size.
func (c ProfileCodec) Decode(data []byte) (*Profile, error) {
	rec, err := c.layout.Decode(data)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		Version:            rec["Version"].(uint16),
		LastSync:           rec["LastSync"].(time.Time),
		UserGUID:           rec["UserGUID"].(uuid.UUID),
		Birthday:           rec["Birthday"].(time.Time),
		WeightGrams:        rec["Weight_g"].(uint32),
		HeightMM:           rec["Height_mm"].(uint16),
		Gender:             Gender(rec["Gender"].(uint16)),
		DeviceName:         rec["DeviceName"].(string),
		LocaleName:         rec["LocaleName"].(string),
		LocaleID:           LocaleID(rec["LocaleId"].(uint16)),
		Language:           LanguageID(rec["Language"].(uint16)),
		DateSeparator:      rec["DateSeparator"].(string),
		NumberSeparator:    rec["NumberSeparator"].(string),
		DecimalSeparator:   rec["DecimalSeparator"].(string),
		TimeFormat:         TimeFormat(rec["TimeFormat"].(uint8)),
		DateFormat:         DateFormat(rec["DateFormat"].(uint8)),
		DistanceShortUnits: UnitType(rec["DistanceShortUnits"].(uint8)),
		DistanceLongUnits:  UnitType(rec["DistanceLongUnits"].(uint8)),
		MassUnits:          UnitType(rec["MassUnits"].(uint8)),
		VolumeUnits:        UnitType(rec["VolumeUnits"].(uint8)),
		EnergyUnits:        UnitType(rec["EnergyUnits"].(uint8)),
		TemperatureUnits:   UnitType(rec["TemperatureUnits"].(uint8)),
		RunDisplayUnits:    UnitType(rec["RunDisplayUnits"].(uint8)),
		Telemetry:          rec["Telemetry"].(bool),
	}
	p.HwagChangeTime = takeTime(rec, "HwagChangeTime")
	p.HwagChangeAgent = takeByte(rec, "HwagChangeAgent")
	p.DeviceNameChangeTime = takeTime(rec, "DeviceNameChangeTime")
	p.DeviceNameChangeAgent = takeByte(rec, "DeviceNameChangeAgent")
	p.LocaleSettingsChangeTime = takeTime(rec, "LocaleSettingsChangeTime")
	p.LocaleSettingsChangeAgent = takeByte(rec, "LocaleSettingsChangeAgent")
	p.LanguageChangeTime = takeTime(rec, "LanguageChangeTime")
	p.LanguageChangeAgent = takeByte(rec, "LanguageChangeAgent")
	p.MaxHeartRate = takeByte(rec, "MaxHR")
	if raw, ok := rec["ReservedData"].([]byte); ok {
		p.Reserved = raw
	}
	return p, nil
}

// MarshalBinary encodes at DefaultProfileSize.
func (p *Profile) MarshalBinary() ([]byte, error) {
	return defaultProfileCodec.Encode(p)
}

// UnmarshalBinary decodes a DefaultProfileSize buffer.
func (p *Profile) UnmarshalBinary(data []byte) error {
	decoded, err := defaultProfileCodec.Decode(data)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

func putTime(rec codec.Values, name string, v *time.Time) {
	if v != nil {
		rec[name] = *v
	}
}

func putByte(rec codec.Values, name string, v *uint8) {
	if v != nil {
		rec[name] = *v
	}
}

func takeTime(rec codec.Values, name string) *time.Time {
	if v, ok := rec[name].(time.Time); ok {
		return &v
	}
	return nil
}

func takeByte(rec codec.Values, name string) *uint8 {
	if v, ok := rec[name].(uint8); ok {
		return &v
	}
	return nil
}
